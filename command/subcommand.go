package command

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/dispatch-tools/chatcmd/flags"
	"github.com/dispatch-tools/chatcmd/message"
	"github.com/dispatch-tools/chatcmd/requirement"
)

// SubCommand is a frozen sub-command definition: validated at registration,
// immutable afterwards, safe to share across concurrent invocations.
type SubCommand struct {
	name      string
	aliases   []string
	isDefault bool
	syntax    string

	descriptors  []*descriptor
	hasLimitless bool
	group        *flags.Group
	requirements []requirement.Requirement

	sender   SenderValidator
	run      Handler
	messages *message.Registry
	log      zerolog.Logger
}

// NewSubCommand validates a declaration against the registries and freezes it
// into a dispatchable definition. parentSyntax is the prefix for the
// generated syntax string, usually the parent command's syntax.
func NewSubCommand(parentSyntax string, spec SubCommandSpec, regs Registries) (*SubCommand, error) {
	name := strings.ToLower(spec.Name)
	if name == "" && !spec.Default {
		return nil, &RegistrationError{
			Kind:    UnsupportedArgumentType,
			Command: parentSyntax,
			Detail:  "sub-command name must not be empty",
		}
	}

	descriptors, err := buildDescriptors(name, spec, regs.Resolvers)
	if err != nil {
		return nil, err
	}

	requirements := make([]requirement.Requirement, 0, len(spec.Requirements))
	for _, ref := range spec.Requirements {
		predicate, ok := regs.Requirements.Lookup(ref.Key)
		if !ok {
			return nil, &RegistrationError{
				Kind:     UnknownRequirement,
				Command:  name,
				Argument: ref.Key,
			}
		}
		requirements = append(requirements, requirement.New(ref.Key, predicate, ref.MessageKey))
	}

	aliases := make([]string, 0, len(spec.Aliases))
	for _, alias := range spec.Aliases {
		aliases = append(aliases, strings.ToLower(alias))
	}

	log := zerolog.Nop()
	if regs.Logger != nil {
		log = *regs.Logger
	}

	sub := &SubCommand{
		name:         name,
		aliases:      aliases,
		isDefault:    spec.Default,
		descriptors:  descriptors,
		group:        spec.Flags,
		requirements: requirements,
		sender:       spec.Sender,
		run:          spec.Run,
		messages:     regs.Messages,
		log:          log,
	}

	for _, d := range descriptors {
		if d.kind.limitless() {
			sub.hasLimitless = true
		}
	}

	sub.syntax = spec.Syntax
	if sub.syntax == "" {
		sub.syntax = createSyntax(parentSyntax, sub)
	}
	return sub, nil
}

// Execute runs one invocation: sender validation, requirements, argument
// resolution, arity check, then the handler. Every rejection emits exactly
// one message through the registry and returns nil; only a handler failure
// produces an error, wrapped in an ExecutionError.
func (s *SubCommand) Execute(sender any, tokens *Tokens, extra map[string]any) error {
	if s.sender != nil {
		if ok, key := s.sender(sender); !ok {
			if key == "" {
				key = message.SenderMismatch
			}
			s.log.Debug().Str("command", s.name).Str("message", string(key)).Msg("sender rejected")
			s.messages.Send(key, sender, s.messageContext())
			return nil
		}
	}

	for _, req := range s.requirements {
		if !req.Met(sender, extra) {
			key := req.MessageKey()
			if key == "" {
				key = message.UnmetRequirement
			}
			s.log.Debug().Str("command", s.name).Str("requirement", req.Key()).Msg("requirement unmet")
			s.messages.Send(key, sender, s.messageContext())
			return nil
		}
	}

	values, fail := s.collectArguments(sender, tokens)
	if fail != nil {
		s.log.Debug().Str("command", s.name).Str("message", string(fail.key)).Msg("resolution failed")
		s.messages.Send(fail.key, sender, fail.context(s))
		return nil
	}

	// A limitless slot intentionally swallows overflow, so the check only
	// applies without one.
	if !s.hasLimitless && tokens.hasNonEmpty() {
		s.log.Debug().Str("command", s.name).Int("leftover", tokens.Len()).Msg("trailing input")
		s.messages.Send(message.TooManyArguments, sender, s.messageContext())
		return nil
	}

	if err := s.run(sender, values); err != nil {
		return &ExecutionError{Command: s.name, Err: err}
	}
	return nil
}

// Name returns the lower-cased sub-command name.
func (s *SubCommand) Name() string {
	return s.name
}

// Aliases returns the lower-cased alias set.
func (s *SubCommand) Aliases() []string {
	return s.aliases
}

// Syntax returns the usage string shown in failure messages.
func (s *SubCommand) Syntax() string {
	return s.syntax
}

// IsDefault reports whether the sub-command runs when no name token matches.
func (s *SubCommand) IsDefault() bool {
	return s.isDefault
}

// HasArguments reports whether any argument slot is declared.
func (s *SubCommand) HasArguments() bool {
	return len(s.descriptors) > 0
}

func (s *SubCommand) messageContext() message.Context {
	return message.Context{Command: s.name, Syntax: s.syntax}
}

func createSyntax(parentSyntax string, sub *SubCommand) string {
	var builder strings.Builder
	builder.WriteString(parentSyntax)

	if !sub.isDefault && sub.name != "" {
		builder.WriteString(" ")
		builder.WriteString(sub.name)
	}

	for _, d := range sub.descriptors {
		if d.optional {
			builder.WriteString(" [" + d.name + "]")
			continue
		}
		builder.WriteString(" <" + d.name + ">")
	}
	return builder.String()
}
