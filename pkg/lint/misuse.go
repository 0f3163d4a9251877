package lint

import (
	"strings"

	"github.com/matzehuels/designlint/pkg/document"
)

// Messages reported by the fill misuse rules.
const (
	MsgTextColorUse       = "Incorrect text color use"
	MsgBackgroundColorUse = "Incorrect background color use"
)

// StyleSet is a set of style keys.
type StyleSet map[string]struct{}

// NewStyleSet returns a set holding keys. Keys are stored as given; callers
// supplying raw style IDs should strip them first.
func NewStyleSet(keys ...string) StyleSet {
	s := make(StyleSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Contains reports whether key is in the set. A nil set contains nothing.
func (s StyleSet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the keys in no particular order.
func (s StyleSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// StripStyleKey returns the first style key referenced by a style ID: a
// leading "S:" marker is dropped and everything from the first comma on is
// discarded. "S:abc123,S:def456" yields "abc123".
func StripStyleKey(id string) string {
	id = strings.TrimPrefix(id, "S:")
	key, _, _ := strings.Cut(id, ",")
	return key
}

// CheckFillMisuse reports a node whose fill style is in forbidden, using
// message. Nodes with any other fill style fall through to CheckFills.
func CheckFillMisuse(node *document.Node, forbidden StyleSet, message string) *Violation {
	if key := StripStyleKey(node.FillStyleID); key != "" && forbidden.Contains(key) {
		return NewViolation(node, TypeFill, message, summarize(node.Fills))
	}
	return CheckFills(node)
}

// CheckBackgroundsForTextFills guards non-text layers against styles meant
// for text.
func CheckBackgroundsForTextFills(node *document.Node, textFills StyleSet) *Violation {
	return CheckFillMisuse(node, textFills, MsgTextColorUse)
}

// CheckTextForBackgroundFills guards text layers against styles meant for
// backgrounds.
func CheckTextForBackgroundFills(node *document.Node, backgroundFills StyleSet) *Violation {
	return CheckFillMisuse(node, backgroundFills, MsgBackgroundColorUse)
}
