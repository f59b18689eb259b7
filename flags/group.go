// Package flags implements the trailing flag-set argument: a declared group
// of -s / --long options parsed out of the remaining tokens of an invocation.
package flags

import (
	"fmt"
	"strings"

	"github.com/dispatch-tools/chatcmd/resolver"
)

// Spec declares one flag of a group. At least one of Short and Long must be
// set. Type names the resolver for the flag's value; an empty Type declares a
// boolean presence flag.
type Spec struct {
	Short       string // single name used as -name, without the dash
	Long        string // name used as --name, without the dashes
	Type        string // resolver type name for the value, empty for boolean
	OptionalArg bool   // the value may be omitted
	Required    bool   // the flag itself must be present
}

type flag struct {
	short       string
	long        string
	typeName    string
	optionalArg bool
	required    bool
	resolve     resolver.Func
}

// key returns the canonical identity of the flag, preferring the long name.
func (f *flag) key() string {
	if f.long != "" {
		return f.long
	}
	return f.short
}

func (f *flag) takesValue() bool {
	return f.typeName != ""
}

// Group is an immutable set of declared flags, built once at registration and
// consulted during flag-set resolution.
type Group struct {
	flags  []*flag
	byName map[string]*flag
}

// NewGroup validates the specs and builds a group. Validation failures are
// programming errors in the host's declarations and fail registration.
func NewGroup(registry *resolver.Registry, specs ...Spec) (*Group, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("flags: group must declare at least one flag")
	}

	group := &Group{byName: make(map[string]*flag)}
	for _, spec := range specs {
		f, err := newFlag(registry, spec)
		if err != nil {
			return nil, err
		}
		for _, name := range []string{f.short, f.long} {
			if name == "" {
				continue
			}
			if _, dup := group.byName[name]; dup {
				return nil, fmt.Errorf("flags: duplicate flag name %q", name)
			}
			group.byName[name] = f
		}
		group.flags = append(group.flags, f)
	}
	return group, nil
}

func newFlag(registry *resolver.Registry, spec Spec) (*flag, error) {
	if spec.Short == "" && spec.Long == "" {
		return nil, fmt.Errorf("flags: flag must declare a short or long name")
	}
	for _, name := range []string{spec.Short, spec.Long} {
		if strings.ContainsAny(name, " =") || strings.HasPrefix(name, "-") {
			return nil, fmt.Errorf("flags: invalid flag name %q", name)
		}
	}
	if len(spec.Short) > 1 {
		return nil, fmt.Errorf("flags: short flag %q must be a single character", spec.Short)
	}

	f := &flag{
		short:       spec.Short,
		long:        spec.Long,
		typeName:    spec.Type,
		optionalArg: spec.OptionalArg,
		required:    spec.Required,
	}
	if spec.Type != "" {
		resolve, ok := registry.Lookup(spec.Type)
		if !ok {
			return nil, fmt.Errorf("flags: no resolver registered for flag type %q", spec.Type)
		}
		f.resolve = resolve
	}
	return f, nil
}

// lookup strips dashes and an =value suffix from token and returns the
// declared flag it names, if any.
func (g *Group) lookup(token string) (*flag, bool) {
	name := strings.TrimLeft(token, "-")
	if idx := strings.Index(name, "="); idx != -1 {
		name = name[:idx]
	}
	f, ok := g.byName[name]
	return f, ok
}

// isFlagToken reports whether token is shaped like a flag rather than a
// positional value.
func isFlagToken(token string) bool {
	return len(token) > 1 && token[0] == '-'
}
