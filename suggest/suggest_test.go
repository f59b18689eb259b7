package suggest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"ping", "ping", 0},
		{"ping", "pong", 1},
		{"Ping", "ping", 0},
		{"ban", "bank", 1},
		{"roll", "troll", 1},
		{"echo", "chat", 4},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, levenshtein(tt.a, tt.b), "levenshtein(%q, %q)", tt.a, tt.b)
	}
}

func TestSimilar(t *testing.T) {
	candidates := []string{"ping", "ban", "roll", "echo", "usage"}

	t.Run("close match first", func(t *testing.T) {
		got := Similar("pong", candidates, 3)
		require.NotEmpty(t, got)
		require.Equal(t, "ping", got[0])
	})

	t.Run("exact match is not suggested", func(t *testing.T) {
		got := Similar("ping", candidates, 3)
		require.NotContains(t, got, "ping")
	})

	t.Run("distance cutoff", func(t *testing.T) {
		got := Similar("xxxxxxxxxx", candidates, 3)
		require.Empty(t, got)
	})

	t.Run("result limit", func(t *testing.T) {
		got := Similar("bal", []string{"bat", "bad", "bag", "ban"}, 2)
		require.Len(t, got, 2)
	})

	t.Run("ties break alphabetically", func(t *testing.T) {
		got := Similar("bal", []string{"bat", "bad"}, 2)
		require.Equal(t, []string{"bad", "bat"}, got)
	})
}
