// Package message routes failure and info notifications from the dispatch
// core to the host. The core only selects a Key and fills a Context; how the
// message is worded and delivered is entirely up to the registered handler.
package message

// Key identifies a message the core may emit during dispatch.
type Key string

const (
	// SenderMismatch is sent when the sender fails the sub-command's
	// sender validation.
	SenderMismatch Key = "sender.mismatch"

	// UnmetRequirement is the default key for a failed requirement that
	// did not bind its own key.
	UnmetRequirement Key = "requirement.unmet"

	// UnknownSubCommand is sent when no sub-command matches the first token
	// and no default sub-command can take the input.
	UnknownSubCommand Key = "command.unknown"

	NotEnoughArguments Key = "arguments.not-enough"
	TooManyArguments   Key = "arguments.too-many"
	InvalidArgument    Key = "arguments.invalid"

	UnknownFlag         Key = "flags.unknown"
	MissingRequiredFlag Key = "flags.missing-required"
	InvalidFlagArgument Key = "flags.invalid-argument"
)

// Context carries everything a handler needs to word a message. Command and
// Syntax are always set; the remaining fields are filled per key.
type Context struct {
	Command string
	Syntax  string

	// Argument detail, set for InvalidArgument and NotEnoughArguments.
	Argument string
	// Typed is the offending raw text, set for InvalidArgument and
	// InvalidFlagArgument.
	Typed string
	// Expected names the type the text failed to resolve into.
	Expected string

	// Flag name, set for the flag keys (without dashes).
	Flag string

	// Suggestions holds similar sub-command names, set for UnknownSubCommand.
	Suggestions []string
}

// Handler formats and delivers one message to the sender.
type Handler func(sender any, ctx Context)

// Registry maps keys to handlers. Registration happens during host setup;
// after that the registry is read-only and safe for concurrent Send calls.
type Registry struct {
	handlers  map[Key]Handler
	observers []func(Key, any, Context)
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Key]Handler)}
}

// Register binds a handler to a key, replacing any previous binding.
func (r *Registry) Register(key Key, handler Handler) {
	r.handlers[key] = handler
}

// Observe adds a hook called for every Send, before the handler and
// regardless of whether one is registered. Hosts use it for rejection
// accounting and audit logging.
func (r *Registry) Observe(fn func(key Key, sender any, ctx Context)) {
	r.observers = append(r.observers, fn)
}

// Send delivers the message for key. Keys without a handler are dropped;
// observers still run.
func (r *Registry) Send(key Key, sender any, ctx Context) {
	for _, observe := range r.observers {
		observe(key, sender, ctx)
	}
	handler, ok := r.handlers[key]
	if !ok {
		return
	}
	handler(sender, ctx)
}
