package document

import (
	"encoding/json"

	"github.com/matzehuels/designlint/pkg/color"
)

// EffectKind identifies the variant of a visual effect.
type EffectKind string

// Effect kinds as they appear in a document export.
const (
	EffectDropShadow     EffectKind = "DROP_SHADOW"
	EffectInnerShadow    EffectKind = "INNER_SHADOW"
	EffectLayerBlur      EffectKind = "LAYER_BLUR"
	EffectBackgroundBlur EffectKind = "BACKGROUND_BLUR"
)

// Label returns the human-readable name used in violation values.
func (k EffectKind) Label() string {
	switch k {
	case EffectDropShadow:
		return "Drop Shadow"
	case EffectInnerShadow:
		return "Inner Shadow"
	case EffectLayerBlur:
		return "Layer Blur"
	default:
		return "Background Blur"
	}
}

// Vector is a 2D offset.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Effect is a shadow or blur applied to a node.
// It is implemented by Shadow and Blur only.
type Effect interface {
	Kind() EffectKind
	BlurRadius() float64
	isEffect()
}

// Shadow is a drop or inner shadow. Color is nil when the export omits it.
type Shadow struct {
	Type   EffectKind
	Color  *color.RGBA
	Offset Vector
	Radius float64
}

// Blur is a layer or background blur. Blurs rarely carry a color, but one
// is kept when present.
type Blur struct {
	Type   EffectKind
	Color  *color.RGBA
	Radius float64
}

func (s Shadow) Kind() EffectKind      { return s.Type }
func (s Shadow) BlurRadius() float64   { return s.Radius }
func (Shadow) isEffect()               {}
func (b Blur) Kind() EffectKind        { return b.Type }
func (b Blur) BlurRadius() float64     { return b.Radius }
func (Blur) isEffect()                 {}

// Effects is an ordered list of effects in the order they were applied.
type Effects []Effect

type rawEffect struct {
	Type   EffectKind  `json:"type"`
	Radius float64     `json:"radius"`
	Color  *color.RGBA `json:"color"`
	Offset *Vector     `json:"offset"`
}

// UnmarshalJSON decodes tagged effect objects. Shadows carry an offset;
// every type other than the two shadows and LAYER_BLUR decodes as a
// background blur.
func (e *Effects) UnmarshalJSON(data []byte) error {
	var raws []rawEffect
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(Effects, 0, len(raws))
	for _, raw := range raws {
		out = append(out, raw.decode())
	}
	*e = out
	return nil
}

func (r rawEffect) decode() Effect {
	switch r.Type {
	case EffectDropShadow, EffectInnerShadow:
		s := Shadow{Type: r.Type, Color: r.Color, Radius: r.Radius}
		if r.Offset != nil {
			s.Offset = *r.Offset
		}
		return s
	case EffectLayerBlur:
		return Blur{Type: EffectLayerBlur, Color: r.Color, Radius: r.Radius}
	default:
		return Blur{Type: EffectBackgroundBlur, Color: r.Color, Radius: r.Radius}
	}
}
