package document

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/designlint/pkg/color"
	"github.com/matzehuels/designlint/pkg/errors"
)

// PaintKind identifies the variant of a paint layer.
type PaintKind string

// Paint kinds as they appear in a document export.
const (
	PaintSolid           PaintKind = "SOLID"
	PaintImage           PaintKind = "IMAGE"
	PaintGradientLinear  PaintKind = "GRADIENT_LINEAR"
	PaintGradientRadial  PaintKind = "GRADIENT_RADIAL"
	PaintGradientAngular PaintKind = "GRADIENT_ANGULAR"
	PaintGradientDiamond PaintKind = "GRADIENT_DIAMOND"
)

// IsGradient reports whether k is one of the gradient kinds.
func (k PaintKind) IsGradient() bool {
	return strings.HasPrefix(string(k), "GRADIENT_")
}

// Paint is one layer of a fill or stroke.
// It is implemented by Solid, Image and Gradient only.
type Paint interface {
	Kind() PaintKind
	IsVisible() bool
	isPaint()
}

// Solid is a single flat color.
type Solid struct {
	Color   color.RGBA
	Visible bool
}

// Image is a bitmap fill referenced by its content hash.
type Image struct {
	Hash    string
	Visible bool
}

// GradientStop is one color stop of a gradient.
type GradientStop struct {
	Color    color.RGBA `json:"color"`
	Position float64    `json:"position"`
}

// Gradient is a linear, radial, angular or diamond gradient.
type Gradient struct {
	Type    PaintKind
	Stops   []GradientStop
	Visible bool
}

func (Solid) Kind() PaintKind      { return PaintSolid }
func (p Solid) IsVisible() bool    { return p.Visible }
func (Solid) isPaint()             {}
func (Image) Kind() PaintKind      { return PaintImage }
func (p Image) IsVisible() bool    { return p.Visible }
func (Image) isPaint()             {}
func (g Gradient) Kind() PaintKind { return g.Type }
func (g Gradient) IsVisible() bool { return g.Visible }
func (Gradient) isPaint()          {}

// Paints is an ordered list of paint layers, bottom-most first as exported.
type Paints []Paint

// rawPaint is the wire shape shared by all paint variants.
type rawPaint struct {
	Type          PaintKind      `json:"type"`
	Visible       *bool          `json:"visible"`
	Color         *color.RGBA    `json:"color"`
	ImageHash     string         `json:"imageHash"`
	GradientStops []GradientStop `json:"gradientStops"`
}

// UnmarshalJSON decodes a list of tagged paint objects into their variants.
func (p *Paints) UnmarshalJSON(data []byte) error {
	var raws []rawPaint
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(Paints, 0, len(raws))
	for i, raw := range raws {
		paint, err := raw.decode()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "paint %d", i)
		}
		out = append(out, paint)
	}
	*p = out
	return nil
}

func (r rawPaint) decode() (Paint, error) {
	visible := r.Visible == nil || *r.Visible
	switch {
	case r.Type == PaintSolid:
		if r.Color == nil {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "solid paint has no color")
		}
		return Solid{Color: *r.Color, Visible: visible}, nil
	case r.Type == PaintImage:
		return Image{Hash: r.ImageHash, Visible: visible}, nil
	case r.Type.IsGradient():
		return Gradient{Type: r.Type, Stops: r.GradientStops, Visible: visible}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported paint type %q", r.Type)
	}
}
