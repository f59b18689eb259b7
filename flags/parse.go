package flags

import (
	"strings"

	"github.com/dispatch-tools/chatcmd/message"
)

// Failure reports a flag-set parse failure with enough context for the
// message registry: the flag name, the offending text and the expected type.
type Failure struct {
	Key      message.Key
	Flag     string
	Typed    string
	Expected string
}

// Split partitions the remaining invocation tokens into positional leftovers
// and flag tokens. Declared flags take their value token with them; a token
// shaped like a flag that matches nothing in the group is an UnknownFlag
// failure. Positional order is preserved.
func (g *Group) Split(tokens []string) (positional, flagTokens []string, fail *Failure) {
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if !isFlagToken(token) {
			positional = append(positional, token)
			continue
		}

		f, ok := g.lookup(token)
		if !ok {
			return nil, nil, &Failure{
				Key:  message.UnknownFlag,
				Flag: strings.TrimLeft(token, "-"),
			}
		}

		flagTokens = append(flagTokens, token)
		if f.takesValue() && !strings.Contains(token, "=") {
			if i+1 < len(tokens) && !isFlagToken(tokens[i+1]) {
				flagTokens = append(flagTokens, tokens[i+1])
				i++
			}
		}
	}
	return positional, flagTokens, nil
}

// Parse resolves flag tokens (as returned by Split) against the group.
// Required flags missing from the input and values that fail their resolver
// each produce a distinct failure.
func (g *Group) Parse(sender any, tokens []string) (*Flags, *Failure) {
	parsed := &Flags{
		present: make(map[string]bool),
		values:  make(map[string]any),
	}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		f, ok := g.lookup(token)
		if !ok {
			return nil, &Failure{
				Key:  message.UnknownFlag,
				Flag: strings.TrimLeft(token, "-"),
			}
		}

		text, hasInline := inlineValue(token)
		if !hasInline && f.takesValue() {
			if i+1 < len(tokens) && !isFlagToken(tokens[i+1]) {
				text = tokens[i+1]
				i++
				hasInline = true
			}
		}

		switch {
		case !f.takesValue():
			// Boolean flag; an explicit =value is a typo worth reporting.
			if hasInline {
				return nil, &Failure{
					Key:   message.InvalidFlagArgument,
					Flag:  f.key(),
					Typed: text,
				}
			}
			parsed.set(f, true)
		case !hasInline:
			if !f.optionalArg {
				return nil, &Failure{
					Key:      message.InvalidFlagArgument,
					Flag:     f.key(),
					Expected: f.typeName,
				}
			}
			parsed.set(f, nil)
		default:
			value, err := f.resolve(sender, text)
			if err != nil {
				return nil, &Failure{
					Key:      message.InvalidFlagArgument,
					Flag:     f.key(),
					Typed:    text,
					Expected: f.typeName,
				}
			}
			parsed.set(f, value)
		}
	}

	for _, f := range g.flags {
		if f.required && !parsed.Has(f.key()) {
			return nil, &Failure{
				Key:  message.MissingRequiredFlag,
				Flag: f.key(),
			}
		}
	}
	return parsed, nil
}

// inlineValue extracts a =value suffix from a flag token.
func inlineValue(token string) (string, bool) {
	idx := strings.Index(token, "=")
	if idx == -1 {
		return "", false
	}
	return token[idx+1:], true
}

func (p *Flags) set(f *flag, value any) {
	for _, name := range []string{f.short, f.long} {
		if name == "" {
			continue
		}
		p.present[name] = true
		p.values[name] = value
	}
}
