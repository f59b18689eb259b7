package command

// Tokens is the invocation token queue: the remaining unconsumed words of one
// command line, consumed destructively left to right. Each invocation owns
// its queue; after a failed resolution the queue is in an unspecified
// consumed state and must not be reused.
type Tokens struct {
	items []string
}

// NewTokens builds a queue over the given tokens. The slice is owned by the
// queue from this point on.
func NewTokens(items []string) *Tokens {
	return &Tokens{items: items}
}

// Peek returns the next token without consuming it. The second return is
// false when the queue is exhausted.
func (t *Tokens) Peek() (string, bool) {
	if len(t.items) == 0 {
		return "", false
	}
	return t.items[0], true
}

// Pop consumes and returns the next token.
func (t *Tokens) Pop() (string, bool) {
	if len(t.items) == 0 {
		return "", false
	}
	head := t.items[0]
	t.items = t.items[1:]
	return head, true
}

// Drain consumes and returns everything left in the queue.
func (t *Tokens) Drain() []string {
	rest := t.items
	t.items = nil
	return rest
}

// Len returns the number of unconsumed tokens.
func (t *Tokens) Len() int {
	return len(t.items)
}

// hasNonEmpty reports whether any unconsumed token carries text. Empty
// placeholder tokens from upstream tokenizers are treated as absent.
func (t *Tokens) hasNonEmpty() bool {
	for _, item := range t.items {
		if item != "" {
			return true
		}
	}
	return false
}
