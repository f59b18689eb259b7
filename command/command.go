// Package command is the core of the framework: descriptor validation at
// registration time, and the per-invocation pipeline that turns a token
// queue into typed handler arguments.
//
// Definitions are built once during host setup and never mutated; every
// invocation owns its token queue, so the dispatch path needs no locking.
package command

import (
	"sort"
	"strings"

	"github.com/dispatch-tools/chatcmd/message"
	"github.com/dispatch-tools/chatcmd/suggest"
)

const suggestionCount = 3

// Command groups sub-commands under one name and routes the first token of
// an invocation to the matching definition, falling back to the default
// sub-command when one is declared.
type Command struct {
	name   string
	syntax string

	subCommands map[string]*SubCommand
	aliases     map[string]*SubCommand
	defaultSub  *SubCommand

	regs Registries
}

// New builds an empty parent command. Sub-commands are added through Add.
func New(spec CommandSpec, regs Registries) (*Command, error) {
	name := strings.ToLower(spec.Name)
	if name == "" {
		return nil, &RegistrationError{
			Kind:   UnsupportedArgumentType,
			Detail: "command name must not be empty",
		}
	}

	syntax := spec.Syntax
	if syntax == "" {
		syntax = name
	}

	return &Command{
		name:        name,
		syntax:      syntax,
		subCommands: make(map[string]*SubCommand),
		aliases:     make(map[string]*SubCommand),
		regs:        regs,
	}, nil
}

// Add validates and registers one sub-command. Name and alias collisions, and
// a second default sub-command, fail registration.
func (c *Command) Add(spec SubCommandSpec) (*SubCommand, error) {
	sub, err := NewSubCommand(c.syntax, spec, c.regs)
	if err != nil {
		return nil, err
	}

	if sub.isDefault && c.defaultSub != nil {
		return nil, &RegistrationError{
			Kind:     DuplicateSubCommand,
			Command:  c.name,
			Argument: sub.name,
			Detail:   "a default sub-command is already registered",
		}
	}

	if sub.name != "" {
		if c.taken(sub.name) {
			return nil, &RegistrationError{
				Kind:     DuplicateSubCommand,
				Command:  c.name,
				Argument: sub.name,
			}
		}
		c.subCommands[sub.name] = sub
	}
	for _, alias := range sub.aliases {
		if c.taken(alias) {
			return nil, &RegistrationError{
				Kind:     DuplicateSubCommand,
				Command:  c.name,
				Argument: alias,
			}
		}
		c.aliases[alias] = sub
	}
	if sub.isDefault {
		c.defaultSub = sub
	}
	return sub, nil
}

func (c *Command) taken(key string) bool {
	if _, ok := c.subCommands[key]; ok {
		return true
	}
	_, ok := c.aliases[key]
	return ok
}

// Execute routes one invocation. The first token selects a sub-command by
// name or alias; otherwise the default sub-command takes the whole queue. A
// default that declares no arguments does not swallow unknown tokens.
func (c *Command) Execute(sender any, tokens *Tokens, extra map[string]any) error {
	head, _ := tokens.Peek()
	key := strings.ToLower(head)

	sub := c.defaultSub
	matched := false
	if key != "" {
		if found, ok := c.SubCommand(key); ok {
			sub = found
			matched = true
			tokens.Pop()
		}
	}

	if sub == nil || (!matched && tokens.hasNonEmpty() && !sub.HasArguments()) {
		c.regs.Messages.Send(message.UnknownSubCommand, sender, message.Context{
			Command:     c.name,
			Syntax:      c.syntax,
			Typed:       head,
			Suggestions: suggest.Similar(head, c.Names(), suggestionCount),
		})
		return nil
	}

	return sub.Execute(sender, tokens, extra)
}

// SubCommand returns the definition registered under a name or alias.
func (c *Command) SubCommand(key string) (*SubCommand, bool) {
	if sub, ok := c.subCommands[key]; ok {
		return sub, true
	}
	sub, ok := c.aliases[key]
	return sub, ok
}

// Default returns the default sub-command, if declared.
func (c *Command) Default() (*SubCommand, bool) {
	return c.defaultSub, c.defaultSub != nil
}

// Names returns every registered sub-command name and alias, sorted. Used by
// help generation and suggestion building.
func (c *Command) Names() []string {
	names := make([]string, 0, len(c.subCommands)+len(c.aliases))
	for name := range c.subCommands {
		names = append(names, name)
	}
	for alias := range c.aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Name returns the command's lower-cased name.
func (c *Command) Name() string {
	return c.name
}

// Syntax returns the command's syntax prefix.
func (c *Command) Syntax() string {
	return c.syntax
}
