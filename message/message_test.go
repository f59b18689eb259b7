package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Send(t *testing.T) {
	registry := NewRegistry()

	var gotSender any
	var gotCtx Context
	registry.Register(InvalidArgument, func(sender any, ctx Context) {
		gotSender = sender
		gotCtx = ctx
	})

	registry.Send(InvalidArgument, "console", Context{Command: "ban", Typed: "x"})
	require.Equal(t, "console", gotSender)
	require.Equal(t, "ban", gotCtx.Command)
	require.Equal(t, "x", gotCtx.Typed)
}

func TestRegistry_UnregisteredKeyIsDropped(t *testing.T) {
	registry := NewRegistry()

	require.NotPanics(t, func() {
		registry.Send(TooManyArguments, nil, Context{})
	})
}

func TestRegistry_ObserversRunWithoutHandler(t *testing.T) {
	registry := NewRegistry()

	var seen []Key
	registry.Observe(func(key Key, _ any, _ Context) {
		seen = append(seen, key)
	})

	registry.Send(UnknownFlag, nil, Context{Flag: "bogus"})

	registry.Register(UnknownFlag, func(any, Context) {})
	registry.Send(UnknownFlag, nil, Context{Flag: "bogus"})

	require.Equal(t, []Key{UnknownFlag, UnknownFlag}, seen)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := NewRegistry()

	calls := ""
	registry.Register(TooManyArguments, func(any, Context) { calls += "a" })
	registry.Register(TooManyArguments, func(any, Context) { calls += "b" })

	registry.Send(TooManyArguments, nil, Context{})
	require.Equal(t, "b", calls)
}
