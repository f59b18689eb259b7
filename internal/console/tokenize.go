package console

import (
	shellwords "github.com/mattn/go-shellwords"
)

// Tokenize splits one input line into invocation tokens, honoring quoting
// and escapes so a quoted phrase stays a single token.
func Tokenize(line string) ([]string, error) {
	return shellwords.Parse(line)
}
