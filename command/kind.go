package command

// ArgKind classifies a positional argument slot. The set is closed: the
// resolution engine switches over it and never type-tests values.
type ArgKind int

const (
	// KindPlain resolves one token through a registered type resolver.
	KindPlain ArgKind = iota
	// KindEnum resolves one token against a declared constant set,
	// case-insensitively.
	KindEnum
	// KindArray collects all remaining tokens into a []string.
	KindArray
	// KindCollection collects all remaining tokens into a []string declared
	// as a collection; only string elements are supported.
	KindCollection
	// KindJoined concatenates all remaining tokens with a delimiter.
	KindJoined
	// KindFlags parses the remaining tokens as a declared flag group.
	KindFlags
)

func (k ArgKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindCollection:
		return "collection"
	case KindJoined:
		return "joined-string"
	case KindFlags:
		return "flag-set"
	default:
		return "unknown"
	}
}

// limitless reports whether the kind greedily drains the token queue.
func (k ArgKind) limitless() bool {
	return k == KindArray || k == KindCollection || k == KindJoined
}
