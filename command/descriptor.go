package command

import (
	"strings"

	"github.com/dispatch-tools/chatcmd/flags"
	"github.com/dispatch-tools/chatcmd/resolver"
)

// descriptor is the frozen form of an ArgSpec: classified, validated and
// bound to its resolver or constant set. Built once at registration, owned by
// the sub-command, immutable afterwards.
type descriptor struct {
	name      string
	kind      ArgKind
	typeName  string
	optional  bool
	delimiter string
	enum      map[string]string // lower-cased constant -> declared constant
	resolve   resolver.Func
	group     *flags.Group
}

func buildDescriptors(command string, spec SubCommandSpec, resolvers *resolver.Registry) ([]*descriptor, error) {
	descriptors := make([]*descriptor, 0, len(spec.Args))
	for _, arg := range spec.Args {
		d, err := buildDescriptor(command, arg, spec.Flags, resolvers)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	if err := validateOrder(command, descriptors); err != nil {
		return nil, err
	}
	return descriptors, nil
}

func buildDescriptor(command string, arg ArgSpec, group *flags.Group, resolvers *resolver.Registry) (*descriptor, error) {
	d := &descriptor{
		name:      arg.Name,
		kind:      arg.Kind,
		typeName:  arg.Type,
		optional:  arg.Optional,
		delimiter: arg.Delimiter,
	}

	switch arg.Kind {
	case KindEnum:
		if len(arg.Enum) == 0 {
			return nil, &RegistrationError{
				Kind:     UnsupportedArgumentType,
				Command:  command,
				Argument: arg.Name,
				Detail:   "enum argument declares no constants",
			}
		}
		d.typeName = "enum"
		d.enum = make(map[string]string, len(arg.Enum))
		for _, constant := range arg.Enum {
			d.enum[strings.ToLower(constant)] = constant
		}

	case KindArray, KindCollection:
		// Only string elements are supported for collections.
		if arg.Type != "" && arg.Type != "string" {
			return nil, &RegistrationError{
				Kind:     UnsupportedArgumentType,
				Command:  command,
				Argument: arg.Name,
				Detail:   "only string collections are allowed",
			}
		}

	case KindJoined:
		if d.delimiter == "" {
			d.delimiter = " "
		}

	case KindFlags:
		if group == nil {
			return nil, &RegistrationError{
				Kind:     UnsupportedArgumentType,
				Command:  command,
				Argument: arg.Name,
				Detail:   "flag-set argument declared but no flag group present",
			}
		}
		d.group = group

	case KindPlain:
		typeName := arg.Type
		if typeName == "" {
			typeName = "string"
		}
		resolve, ok := resolvers.Lookup(typeName)
		if !ok {
			return nil, &RegistrationError{
				Kind:     UnregisteredArgumentType,
				Command:  command,
				Argument: arg.Name,
				Detail:   "no resolver registered for type " + typeName,
			}
		}
		d.typeName = typeName
		d.resolve = resolve

	default:
		return nil, &RegistrationError{
			Kind:     UnsupportedArgumentType,
			Command:  command,
			Argument: arg.Name,
			Detail:   "unknown argument kind",
		}
	}

	return d, nil
}

// validateOrder runs the registration-time shape rules so the dispatch loop
// never re-validates:
//   - an optional descriptor only in the final position
//   - at most one limitless descriptor
//   - at most one flag-set descriptor, and it must be last
//   - a limitless descriptor must be last, or immediately before the flag-set
func validateOrder(command string, descriptors []*descriptor) error {
	size := len(descriptors)
	limitlessAt := -1
	flagsAt := -1

	for i, d := range descriptors {
		if d.optional && i != size-1 {
			return orderError(command, d, "optional argument is only allowed in the last position")
		}

		if d.kind == KindFlags {
			if flagsAt != -1 {
				return orderError(command, d, "more than one flag-set argument declared")
			}
			flagsAt = i
			continue
		}

		if d.kind.limitless() {
			if limitlessAt != -1 {
				return orderError(command, d, "more than one limitless argument declared")
			}
			limitlessAt = i
		}
	}

	if flagsAt != -1 {
		if flagsAt != size-1 {
			return orderError(command, descriptors[flagsAt], "flag-set argument must be the last argument")
		}
		if limitlessAt != -1 && limitlessAt != size-2 {
			return orderError(command, descriptors[limitlessAt], "limitless argument must immediately precede the flag-set argument")
		}
		return nil
	}

	if limitlessAt != -1 && limitlessAt != size-1 {
		return orderError(command, descriptors[limitlessAt], "limitless argument must be the last argument")
	}
	return nil
}

func orderError(command string, d *descriptor, detail string) error {
	return &RegistrationError{
		Kind:     InvalidArgumentOrder,
		Command:  command,
		Argument: d.name,
		Detail:   detail,
	}
}
