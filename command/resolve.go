package command

import (
	"strings"

	"github.com/dispatch-tools/chatcmd/flags"
	"github.com/dispatch-tools/chatcmd/message"
)

// resolveFailure is the tagged failure outcome of resolving one descriptor:
// the message key plus whatever context the key's handler needs.
type resolveFailure struct {
	key      message.Key
	argument string
	typed    string
	expected string
	flag     string
}

func (f *resolveFailure) context(s *SubCommand) message.Context {
	ctx := s.messageContext()
	ctx.Argument = f.argument
	ctx.Typed = f.typed
	ctx.Expected = f.expected
	ctx.Flag = f.flag
	return ctx
}

func flagFailure(fail *flags.Failure) *resolveFailure {
	return &resolveFailure{
		key:      fail.Key,
		flag:     fail.Flag,
		typed:    fail.Typed,
		expected: fail.Expected,
	}
}

// collectArguments walks the descriptors against the token queue and returns
// the resolved values in declaration order. It stops at the first failure; the
// queue is left in a consumed state either way. When a flag-set descriptor is
// present but no limitless one, unconsumed positional tokens are pushed back
// for the caller's arity check.
func (s *SubCommand) collectArguments(sender any, queue *Tokens) ([]any, *resolveFailure) {
	values := make([]any, 0, len(s.descriptors))

	for i := 0; i < len(s.descriptors); i++ {
		d := s.descriptors[i]

		switch {
		case d.kind == KindFlags:
			positional, flagTokens, fail := d.group.Split(queue.Drain())
			if fail != nil {
				return nil, flagFailure(fail)
			}
			parsed, fail := d.group.Parse(sender, flagTokens)
			if fail != nil {
				return nil, flagFailure(fail)
			}
			queue.items = positional
			values = append(values, parsed)

		case d.kind.limitless():
			// With a trailing flag-set the flag tokens are carved out
			// before the limitless slot drains the rest.
			if i+1 < len(s.descriptors) && s.descriptors[i+1].kind == KindFlags {
				group := s.descriptors[i+1].group
				positional, flagTokens, fail := group.Split(queue.Drain())
				if fail != nil {
					return nil, flagFailure(fail)
				}
				values = append(values, resolveLimitless(d, positional))

				parsed, fail := group.Parse(sender, flagTokens)
				if fail != nil {
					return nil, flagFailure(fail)
				}
				values = append(values, parsed)
				i++
				continue
			}
			values = append(values, resolveLimitless(d, queue.Drain()))

		default:
			head, ok := queue.Peek()
			// Empty tokens are treated identically to absent ones so
			// upstream tokenizers may pass empty placeholders.
			if !ok || head == "" {
				if d.optional {
					values = append(values, nil)
					continue
				}
				return nil, &resolveFailure{
					key:      message.NotEnoughArguments,
					argument: d.name,
				}
			}
			queue.Pop()

			value, fail := s.resolveSingle(sender, d, head)
			if fail != nil {
				return nil, fail
			}
			values = append(values, value)
		}
	}

	return values, nil
}

func (s *SubCommand) resolveSingle(sender any, d *descriptor, token string) (any, *resolveFailure) {
	if d.kind == KindEnum {
		constant, ok := d.enum[strings.ToLower(token)]
		if !ok {
			return nil, &resolveFailure{
				key:      message.InvalidArgument,
				argument: d.name,
				typed:    token,
				expected: d.typeName,
			}
		}
		return constant, nil
	}

	value, err := d.resolve(sender, token)
	if err != nil {
		return nil, &resolveFailure{
			key:      message.InvalidArgument,
			argument: d.name,
			typed:    token,
			expected: d.typeName,
		}
	}
	return value, nil
}

// resolveLimitless fills an array, collection or joined-string slot from
// whatever remains. An optional slot with no input yields nil; a required one
// yields the empty value.
func resolveLimitless(d *descriptor, rest []string) any {
	if len(rest) == 0 && d.optional {
		return nil
	}
	if d.kind == KindJoined {
		return strings.Join(rest, d.delimiter)
	}
	collected := make([]string, len(rest))
	copy(collected, rest)
	return collected
}
