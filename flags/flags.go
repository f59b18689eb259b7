package flags

import "time"

// Flags provides typed access to one invocation's parsed flag values.
// Either declared name of a flag reaches the same value.
type Flags struct {
	present map[string]bool
	values  map[string]any
}

// Has reports whether the flag was present in the input.
func (p *Flags) Has(name string) bool {
	return p.present[name]
}

// Value returns the resolved value of a flag and whether it was present.
// Boolean flags yield true; a present flag with an omitted optional value
// yields nil.
func (p *Flags) Value(name string) (any, bool) {
	value, ok := p.values[name]
	return value, ok
}

// String returns the flag's value as a string, or defaultVal if the flag is
// absent or holds a different type.
func (p *Flags) String(name, defaultVal string) string {
	if s, ok := p.values[name].(string); ok {
		return s
	}
	return defaultVal
}

// Int returns the flag's value as an int, or defaultVal.
func (p *Flags) Int(name string, defaultVal int) int {
	if n, ok := p.values[name].(int); ok {
		return n
	}
	return defaultVal
}

// Bool reports whether a boolean flag was set.
func (p *Flags) Bool(name string) bool {
	b, ok := p.values[name].(bool)
	return ok && b
}

// Duration returns the flag's value as a time.Duration, or defaultVal.
func (p *Flags) Duration(name string, defaultVal time.Duration) time.Duration {
	if d, ok := p.values[name].(time.Duration); ok {
		return d
	}
	return defaultVal
}
