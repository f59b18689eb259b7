// Package console is the host-side glue for the interactive shell: the
// sender type, the line tokenizer, and the message renderer that implements
// the message-registry contract.
package console

// Sender is the console actor issuing commands. The zero value is a
// non-admin anonymous user.
type Sender struct {
	User  string
	Admin bool
}

// Key returns the identifier used by cooldown and rate-limit requirements.
func (s Sender) Key() string {
	return s.User
}

// SenderKey adapts Sender for requirement.KeyFunc.
func SenderKey(sender any) string {
	if s, ok := sender.(Sender); ok {
		return s.Key()
	}
	return ""
}

// IsAdmin is the predicate behind the admin requirement.
func IsAdmin(sender any, _ map[string]any) bool {
	s, ok := sender.(Sender)
	return ok && s.Admin
}

// IsConsoleSender validates that the dispatch target is a console Sender.
func IsConsoleSender(sender any) bool {
	_, ok := sender.(Sender)
	return ok
}
