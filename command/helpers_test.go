package command

import (
	"github.com/dispatch-tools/chatcmd/message"
	"github.com/dispatch-tools/chatcmd/requirement"
	"github.com/dispatch-tools/chatcmd/resolver"
)

// sent captures one message emitted through the registry during a test.
type sent struct {
	key message.Key
	ctx message.Context
}

// capturingRegistry returns a registry whose every emission is appended to
// the returned slice.
func capturingRegistry() (*message.Registry, *[]sent) {
	captured := &[]sent{}
	registry := message.NewRegistry()
	registry.Observe(func(key message.Key, _ any, ctx message.Context) {
		*captured = append(*captured, sent{key: key, ctx: ctx})
	})
	return registry, captured
}

// testRegistries builds the standard fixture: default resolvers, a
// requirement registry with "always" and "never", and a capturing message
// registry.
func testRegistries() (Registries, *[]sent) {
	requirements := requirement.NewRegistry()
	requirements.Register("always", func(any, map[string]any) bool { return true })
	requirements.Register("never", func(any, map[string]any) bool { return false })

	messages, captured := capturingRegistry()

	return Registries{
		Resolvers:    resolver.NewRegistry(),
		Requirements: requirements,
		Messages:     messages,
	}, captured
}

// discard is a handler that accepts any invocation.
func discard(_ any, _ []any) error { return nil }

// captureArgs returns a handler that records the resolved values it was
// invoked with.
func captureArgs(into *[]any) Handler {
	return func(_ any, args []any) error {
		*into = args
		return nil
	}
}
