package command

import "fmt"

// RegistrationErrorKind tags the fatal startup error taxonomy. These indicate
// a programming error in the host's command declarations and must never
// surface at dispatch time.
type RegistrationErrorKind int

const (
	// InvalidArgumentOrder marks a descriptor list violating the ordering
	// rules: optional not last, more than one limitless, flag-set not last,
	// or a limitless not immediately preceding the flag-set.
	InvalidArgumentOrder RegistrationErrorKind = iota
	// UnregisteredArgumentType marks a plain descriptor whose type has no
	// resolver in the registry.
	UnregisteredArgumentType
	// UnsupportedArgumentType marks a descriptor whose declaration cannot be
	// classified, such as an enum kind with no constants.
	UnsupportedArgumentType
	// UnknownRequirement marks a requirement key absent from the registry.
	UnknownRequirement
	// DuplicateSubCommand marks a name or alias already taken within the
	// parent command.
	DuplicateSubCommand
)

func (k RegistrationErrorKind) String() string {
	switch k {
	case InvalidArgumentOrder:
		return "invalid argument order"
	case UnregisteredArgumentType:
		return "unregistered argument type"
	case UnsupportedArgumentType:
		return "unsupported argument type"
	case UnknownRequirement:
		return "unknown requirement"
	case DuplicateSubCommand:
		return "duplicate sub-command"
	default:
		return "registration error"
	}
}

// RegistrationError is returned when a command declaration fails validation.
type RegistrationError struct {
	Kind     RegistrationErrorKind
	Command  string
	Argument string // offending descriptor or requirement key, when known
	Detail   string
}

func (e *RegistrationError) Error() string {
	msg := fmt.Sprintf("command %q: %s", e.Command, e.Kind)
	if e.Argument != "" {
		msg += fmt.Sprintf(": argument %q", e.Argument)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// ExecutionError wraps an error returned by an invoked handler, naming the
// command it came from. Handler failures are propagated, never swallowed.
type ExecutionError struct {
	Command string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execute command %q: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
