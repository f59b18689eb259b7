// Package requirement holds the precondition predicates that gate command
// execution, and the registry hosts populate during setup.
package requirement

import (
	"github.com/dispatch-tools/chatcmd/message"
)

// Predicate decides whether the sender may run the command right now. The
// extra map is the host-supplied invocation context; predicates must be
// independent of each other.
type Predicate func(sender any, extra map[string]any) bool

// Registry maps requirement keys to predicates. Populated during host setup,
// read-only afterwards.
type Registry struct {
	byKey map[string]Predicate
}

func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Predicate)}
}

// Register binds a predicate to a key, replacing any previous binding.
func (r *Registry) Register(key string, predicate Predicate) {
	r.byKey[key] = predicate
}

// Lookup returns the predicate bound to a key.
func (r *Registry) Lookup(key string) (Predicate, bool) {
	predicate, ok := r.byKey[key]
	return predicate, ok
}

// Requirement is one resolved precondition owned by a sub-command definition:
// the registry key it came from, its predicate, and an optional message key
// sent when the predicate rejects.
type Requirement struct {
	key        string
	predicate  Predicate
	messageKey message.Key
}

// New builds a requirement from an already-resolved predicate. A zero
// messageKey falls back to message.UnmetRequirement at dispatch time.
func New(key string, predicate Predicate, messageKey message.Key) Requirement {
	return Requirement{key: key, predicate: predicate, messageKey: messageKey}
}

// Key returns the registry key the requirement was declared with.
func (r Requirement) Key() string {
	return r.key
}

// Met evaluates the predicate for this invocation.
func (r Requirement) Met(sender any, extra map[string]any) bool {
	return r.predicate(sender, extra)
}

// MessageKey returns the bound failure message key, or the zero Key when the
// default should be used.
func (r Requirement) MessageKey() message.Key {
	return r.messageKey
}
