// Package resolver holds the type resolver registry: the mapping from a type
// name to the function that turns one raw token into a typed value. Absence of
// a resolver is a registration-time error in the command package, so the
// dispatch path never checks for missing resolvers.
package resolver

import (
	"strconv"
	"time"
)

// Func resolves one raw token into a typed value for the given sender.
// A non-nil error marks the token as invalid for this type.
type Func func(sender any, text string) (any, error)

// Registry maps type names to resolvers. Populate it during host setup;
// lookups after that are read-only.
type Registry struct {
	byType map[string]Func
}

// NewRegistry returns a registry pre-loaded with the built-in scalar
// resolvers: string, int, int64, float64, bool and duration.
func NewRegistry() *Registry {
	r := &Registry{byType: make(map[string]Func)}
	r.Register("string", func(_ any, text string) (any, error) {
		return text, nil
	})
	r.Register("int", func(_ any, text string) (any, error) {
		return strconv.Atoi(text)
	})
	r.Register("int64", func(_ any, text string) (any, error) {
		return strconv.ParseInt(text, 10, 64)
	})
	r.Register("float64", func(_ any, text string) (any, error) {
		return strconv.ParseFloat(text, 64)
	})
	r.Register("bool", func(_ any, text string) (any, error) {
		return strconv.ParseBool(text)
	})
	r.Register("duration", func(_ any, text string) (any, error) {
		return time.ParseDuration(text)
	})
	return r
}

// Register binds a resolver to a type name, replacing any previous binding.
func (r *Registry) Register(typeName string, fn Func) {
	r.byType[typeName] = fn
}

// Lookup returns the resolver for a type name.
func (r *Registry) Lookup(typeName string) (Func, bool) {
	fn, ok := r.byType[typeName]
	return fn, ok
}
