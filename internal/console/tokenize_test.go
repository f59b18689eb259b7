package console

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "plain words", line: "ban alice spamming", want: []string{"ban", "alice", "spamming"}},
		{name: "quoted phrase is one token", line: `ban alice "spamming the channel"`, want: []string{"ban", "alice", "spamming the channel"}},
		{name: "single quotes", line: "echo 'hello there'", want: []string{"echo", "hello there"}},
		{name: "escaped space", line: `echo hello\ there`, want: []string{"echo", "hello there"}},
		{name: "empty line", line: "", want: nil},
		{name: "collapsed whitespace", line: "  ping   ", want: []string{"ping"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			require.NoError(t, err)
			if tt.want == nil {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_UnbalancedQuote(t *testing.T) {
	_, err := Tokenize(`ban "alice`)
	require.Error(t, err)
}
