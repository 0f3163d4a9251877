package lint

import (
	"encoding/json"

	"github.com/matzehuels/designlint/pkg/document"
)

// Violation types.
const (
	TypeRadius  = "radius"
	TypeEffects = "effects"
	TypeFill    = "fill"
	TypeStroke  = "stroke"
	TypeText    = "text"
)

// Types lists every violation type in report order.
var Types = []string{TypeRadius, TypeEffects, TypeFill, TypeStroke, TypeText}

// Violation is one rule failure on one node.
type Violation struct {
	Node    *document.Node
	Type    string
	Message string
	// Value is the offending raw value as shown to the user, or "".
	Value string
}

// NewViolation builds a violation record. Value defaults to "" when omitted;
// only the first value is used.
func NewViolation(node *document.Node, typ, message string, value ...string) *Violation {
	v := &Violation{Node: node, Type: typ, Message: message}
	if len(value) > 0 {
		v.Value = value[0]
	}
	return v
}

type nodeRef struct {
	ID   string            `json:"id"`
	Name string            `json:"name"`
	Type document.NodeType `json:"type"`
}

// MarshalJSON writes the node as a reference instead of the whole subtree.
func (v Violation) MarshalJSON() ([]byte, error) {
	var ref *nodeRef
	if v.Node != nil {
		ref = &nodeRef{ID: v.Node.ID, Name: v.Node.Name, Type: v.Node.Type}
	}
	return json.Marshal(struct {
		Node    *nodeRef `json:"node"`
		Type    string   `json:"type"`
		Message string   `json:"message"`
		Value   string   `json:"value"`
	}{ref, v.Type, v.Message, v.Value})
}

// Violations accumulates checker results for a scan.
type Violations []Violation

// Add appends v if it is non-nil and reports whether it did.
func (vs *Violations) Add(v *Violation) bool {
	if v == nil {
		return false
	}
	*vs = append(*vs, *v)
	return true
}

// ByType counts violations per type.
func (vs Violations) ByType() map[string]int {
	counts := make(map[string]int)
	for _, v := range vs {
		counts[v.Type]++
	}
	return counts
}
