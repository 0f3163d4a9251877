package document

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/matzehuels/designlint/pkg/errors"
)

// NodeType is the kind of a design element.
type NodeType string

// Node types found in document exports.
const (
	NodeDocument         NodeType = "DOCUMENT"
	NodeCanvas           NodeType = "CANVAS"
	NodePage             NodeType = "PAGE"
	NodeFrame            NodeType = "FRAME"
	NodeGroup            NodeType = "GROUP"
	NodeSection          NodeType = "SECTION"
	NodeComponent        NodeType = "COMPONENT"
	NodeComponentSet     NodeType = "COMPONENT_SET"
	NodeInstance         NodeType = "INSTANCE"
	NodeRectangle        NodeType = "RECTANGLE"
	NodeEllipse          NodeType = "ELLIPSE"
	NodePolygon          NodeType = "POLYGON"
	NodeStar             NodeType = "STAR"
	NodeVector           NodeType = "VECTOR"
	NodeLine             NodeType = "LINE"
	NodeBooleanOperation NodeType = "BOOLEAN_OPERATION"
	NodeText             NodeType = "TEXT"
	NodeSlice            NodeType = "SLICE"
)

// CornerRadius is either a uniform radius or the mixed marker, set when the
// four corners differ and the per-corner fields on Node must be consulted.
type CornerRadius struct {
	Mixed bool
	Value float64
}

// Uniform returns a uniform corner radius.
func Uniform(v float64) *CornerRadius {
	return &CornerRadius{Value: v}
}

// Mixed returns the mixed corner radius marker.
func Mixed() *CornerRadius {
	return &CornerRadius{Mixed: true}
}

// UnmarshalJSON accepts a number or the string "mixed".
func (c *CornerRadius) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if !strings.EqualFold(s, "mixed") {
			return errors.New(errors.ErrCodeInvalidDocument, "invalid cornerRadius %q", s)
		}
		*c = CornerRadius{Mixed: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid cornerRadius")
	}
	*c = CornerRadius{Value: v}
	return nil
}

// MarshalJSON writes the mixed marker as "mixed" and uniform radii as numbers.
func (c CornerRadius) MarshalJSON() ([]byte, error) {
	if c.Mixed {
		return []byte(`"mixed"`), nil
	}
	return json.Marshal(c.Value)
}

// FontName is a font family and style pair.
type FontName struct {
	Family string `json:"family"`
	Style  string `json:"style"`
}

// LineHeightUnit is the unit of a line height value.
type LineHeightUnit string

// Line height units.
const (
	LineHeightAuto    LineHeightUnit = "AUTO"
	LineHeightPixels  LineHeightUnit = "PIXELS"
	LineHeightPercent LineHeightUnit = "PERCENT"
)

// LineHeight is either automatic or an explicit value.
type LineHeight struct {
	Unit  LineHeightUnit `json:"unit"`
	Value float64        `json:"value,omitempty"`
}

// IsAuto reports whether the line height carries no explicit value.
func (l LineHeight) IsAuto() bool {
	return l.Unit == LineHeightAuto || l.Unit == ""
}

// UnmarshalJSON accepts {"unit": ..., "value": ...} objects and bare pixel numbers.
// An object without a value is automatic.
func (l *LineHeight) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] != '{' {
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid lineHeight")
		}
		*l = LineHeight{Unit: LineHeightPixels, Value: v}
		return nil
	}
	var raw struct {
		Unit  LineHeightUnit `json:"unit"`
		Value *float64       `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Value == nil {
		*l = LineHeight{Unit: LineHeightAuto}
		return nil
	}
	unit := raw.Unit
	if unit == "" || unit == LineHeightAuto {
		unit = LineHeightPixels
	}
	*l = LineHeight{Unit: unit, Value: *raw.Value}
	return nil
}

// Node is one element of the document tree.
type Node struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    NodeType `json:"type"`
	Visible bool     `json:"visible"`

	Fills         Paints  `json:"fills,omitempty"`
	Strokes       Paints  `json:"strokes,omitempty"`
	Effects       Effects `json:"effects,omitempty"`
	FillStyleID   string  `json:"fillStyleId"`
	StrokeStyleID string  `json:"strokeStyleId"`
	TextStyleID   string  `json:"textStyleId"`
	EffectStyleID string  `json:"effectStyleId"`

	// CornerRadius is nil for nodes that have no corners.
	CornerRadius      *CornerRadius `json:"cornerRadius,omitempty"`
	TopLeftRadius     float64       `json:"topLeftRadius,omitempty"`
	TopRightRadius    float64       `json:"topRightRadius,omitempty"`
	BottomLeftRadius  float64       `json:"bottomLeftRadius,omitempty"`
	BottomRightRadius float64       `json:"bottomRightRadius,omitempty"`

	FontName   FontName   `json:"fontName"`
	FontSize   float64    `json:"fontSize,omitempty"`
	LineHeight LineHeight `json:"lineHeight"`

	StrokeWeight float64 `json:"strokeWeight,omitempty"`
	StrokeAlign  string  `json:"strokeAlign,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// UnmarshalJSON decodes a node, treating an absent visible flag as true.
func (n *Node) UnmarshalJSON(data []byte) error {
	type plain Node
	aux := struct {
		*plain
		Visible *bool `json:"visible"`
	}{plain: (*plain)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	n.Visible = aux.Visible == nil || *aux.Visible
	return nil
}

// IsText reports whether the node is a text layer.
func (n *Node) IsText() bool {
	return n.Type == NodeText
}

// String returns a short "Name (ID)" label for logs and reports.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Name == "" {
		return n.ID
	}
	return n.Name + " (" + n.ID + ")"
}
