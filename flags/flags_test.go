package flags

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispatch-tools/chatcmd/message"
	"github.com/dispatch-tools/chatcmd/resolver"
)

func testGroup(t *testing.T, specs ...Spec) *Group {
	t.Helper()

	group, err := NewGroup(resolver.NewRegistry(), specs...)
	require.NoError(t, err)
	return group
}

func TestNewGroup_Validation(t *testing.T) {
	registry := resolver.NewRegistry()

	tests := []struct {
		name  string
		specs []Spec
	}{
		{name: "empty group", specs: nil},
		{name: "nameless flag", specs: []Spec{{Type: "int"}}},
		{name: "multi-character short", specs: []Spec{{Short: "ab"}}},
		{name: "name with space", specs: []Spec{{Long: "dry run"}}},
		{name: "name with dashes", specs: []Spec{{Long: "--force"}}},
		{name: "duplicate name", specs: []Spec{{Long: "force"}, {Long: "force"}}},
		{name: "unregistered value type", specs: []Spec{{Long: "level", Type: "severity"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGroup(registry, tt.specs...)
			require.Error(t, err)
		})
	}
}

func TestParse_TypedValue(t *testing.T) {
	group := testGroup(t, Spec{Long: "count", Type: "int"})

	tests := []struct {
		name   string
		tokens []string
	}{
		{name: "separate token", tokens: []string{"--count", "3"}},
		{name: "inline value", tokens: []string{"--count=3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, fail := group.Parse(nil, tt.tokens)
			require.Nil(t, fail)
			require.True(t, parsed.Has("count"))
			require.Equal(t, 3, parsed.Int("count", 0))
		})
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	group := testGroup(t, Spec{Long: "count", Type: "int"})

	_, fail := group.Parse(nil, []string{"--bogus"})
	require.NotNil(t, fail)
	require.Equal(t, message.UnknownFlag, fail.Key)
	require.Equal(t, "bogus", fail.Flag)
}

func TestParse_MissingRequiredFlag(t *testing.T) {
	group := testGroup(t,
		Spec{Long: "reason", Type: "string", Required: true},
		Spec{Short: "s"},
	)

	_, fail := group.Parse(nil, []string{"-s"})
	require.NotNil(t, fail)
	require.Equal(t, message.MissingRequiredFlag, fail.Key)
	require.Equal(t, "reason", fail.Flag)

	parsed, fail := group.Parse(nil, []string{"--reason", "spam"})
	require.Nil(t, fail)
	require.Equal(t, "spam", parsed.String("reason", ""))
}

func TestParse_InvalidFlagArgument(t *testing.T) {
	group := testGroup(t, Spec{Long: "count", Type: "int"})

	_, fail := group.Parse(nil, []string{"--count", "many"})
	require.NotNil(t, fail)
	require.Equal(t, message.InvalidFlagArgument, fail.Key)
	require.Equal(t, "count", fail.Flag)
	require.Equal(t, "many", fail.Typed)
	require.Equal(t, "int", fail.Expected)
}

func TestParse_MissingValue(t *testing.T) {
	group := testGroup(t, Spec{Long: "count", Type: "int"})

	_, fail := group.Parse(nil, []string{"--count"})
	require.NotNil(t, fail)
	require.Equal(t, message.InvalidFlagArgument, fail.Key)
	require.Equal(t, "count", fail.Flag)

	optionalArg := testGroup(t, Spec{Long: "count", Type: "int", OptionalArg: true})
	parsed, fail := optionalArg.Parse(nil, []string{"--count"})
	require.Nil(t, fail)
	require.True(t, parsed.Has("count"))

	value, present := parsed.Value("count")
	require.True(t, present)
	require.Nil(t, value)
}

func TestParse_BooleanWithInlineValue(t *testing.T) {
	group := testGroup(t, Spec{Long: "silent"})

	_, fail := group.Parse(nil, []string{"--silent=yes"})
	require.NotNil(t, fail)
	require.Equal(t, message.InvalidFlagArgument, fail.Key)
}

func TestParse_ShortAndLongShareValue(t *testing.T) {
	group := testGroup(t, Spec{Short: "d", Long: "days", Type: "int"})

	parsed, fail := group.Parse(nil, []string{"-d", "7"})
	require.Nil(t, fail)
	require.Equal(t, 7, parsed.Int("days", 0))
	require.Equal(t, 7, parsed.Int("d", 0))
}

func TestSplit(t *testing.T) {
	group := testGroup(t,
		Spec{Short: "s", Long: "silent"},
		Spec{Long: "days", Type: "int"},
	)

	tests := []struct {
		name       string
		tokens     []string
		positional []string
		flagTokens []string
		unknown    string
	}{
		{
			name:       "no flags",
			tokens:     []string{"a", "b"},
			positional: []string{"a", "b"},
		},
		{
			name:       "flags after positionals",
			tokens:     []string{"a", "b", "--days", "7", "-s"},
			positional: []string{"a", "b"},
			flagTokens: []string{"--days", "7", "-s"},
		},
		{
			name:       "positionals after flags stay positional",
			tokens:     []string{"--days=7", "a"},
			positional: []string{"a"},
			flagTokens: []string{"--days=7"},
		},
		{
			name:    "unknown flag",
			tokens:  []string{"a", "--bogus"},
			unknown: "bogus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positional, flagTokens, fail := group.Split(tt.tokens)
			if tt.unknown != "" {
				require.NotNil(t, fail)
				require.Equal(t, message.UnknownFlag, fail.Key)
				require.Equal(t, tt.unknown, fail.Flag)
				return
			}
			require.Nil(t, fail)
			require.Equal(t, tt.positional, positional)
			require.Equal(t, tt.flagTokens, flagTokens)
		})
	}
}
