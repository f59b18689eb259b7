package command

import (
	"github.com/rs/zerolog"

	"github.com/dispatch-tools/chatcmd/flags"
	"github.com/dispatch-tools/chatcmd/message"
	"github.com/dispatch-tools/chatcmd/requirement"
	"github.com/dispatch-tools/chatcmd/resolver"
)

// Handler is the bound function of a sub-command. args holds the resolved
// values in declaration order; optional slots with no input are nil, a
// flag-set slot is a *flags.Flags.
type Handler func(sender any, args []any) error

// SenderValidator is the structural sender check run before anything else.
// Returning ok=false stops the invocation; a zero key falls back to
// message.SenderMismatch.
type SenderValidator func(sender any) (ok bool, key message.Key)

// ArgSpec declares one positional argument slot.
type ArgSpec struct {
	Name     string
	Kind     ArgKind
	Optional bool

	// Type names the resolver for KindPlain slots.
	Type string
	// Enum lists the declared constants for KindEnum slots.
	Enum []string
	// Delimiter joins the remaining tokens for KindJoined slots;
	// empty means a single space.
	Delimiter string
}

// RequirementRef declares a requirement by registry key, optionally binding
// the message sent when it rejects.
type RequirementRef struct {
	Key        string
	MessageKey message.Key
}

// SubCommandSpec declares one sub-command. The declaration is validated and
// frozen into a SubCommand at registration time.
type SubCommandSpec struct {
	Name    string
	Aliases []string
	// Default marks the sub-command invoked when no name token matches.
	Default bool
	// Syntax overrides the generated syntax string.
	Syntax string

	Args         []ArgSpec
	Flags        *flags.Group
	Requirements []RequirementRef
	Sender       SenderValidator
	Run          Handler
}

// CommandSpec declares a parent command.
type CommandSpec struct {
	Name string
	// Syntax overrides the generated "<name>" syntax prefix.
	Syntax string
}

// Registries bundles the externally constructed registries consulted at
// registration and dispatch time. No ambient singletons: hosts build these
// during setup and pass them in.
type Registries struct {
	Resolvers    *resolver.Registry
	Requirements *requirement.Registry
	Messages     *message.Registry

	// Logger receives debug lines for rejected invocations; nil disables.
	Logger *zerolog.Logger
}
