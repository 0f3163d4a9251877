package lint

import (
	"fmt"
	"slices"

	"github.com/matzehuels/designlint/pkg/color"
	"github.com/matzehuels/designlint/pkg/document"
)

// corner pairs a per-corner radius with the message reported when it fails.
type corner struct {
	value   float64
	message string
}

// CheckRadius reports a corner radius that is not in allowed. A uniform
// radius of zero always passes. For mixed radii the corners are checked
// top-left, top-right, bottom-left, bottom-right and the first failing
// corner is reported.
func CheckRadius(node *document.Node, allowed []float64) *Violation {
	r := node.CornerRadius
	if r == nil {
		return nil
	}

	if !r.Mixed {
		if r.Value == 0 || slices.Contains(allowed, r.Value) {
			return nil
		}
		return NewViolation(node, TypeRadius, "Incorrect border radius", formatNumber(r.Value))
	}

	corners := []corner{
		{node.TopLeftRadius, "Incorrect top left radius"},
		{node.TopRightRadius, "Incorrect top right radius"},
		{node.BottomLeftRadius, "Incorrect bottom left radius"},
		{node.BottomRightRadius, "Incorrect bottom right radius"},
	}
	for _, c := range corners {
		if !slices.Contains(allowed, c.value) {
			return NewViolation(node, TypeRadius, c.message, formatNumber(c.value))
		}
	}
	return nil
}

// CheckEffects reports effects applied without an effect style. Only the
// last-applied effect is reported since it renders on top.
func CheckEffects(node *document.Node) *Violation {
	if len(node.Effects) == 0 || node.EffectStyleID != "" {
		return nil
	}
	top := node.Effects[len(node.Effects)-1]
	return NewViolation(node, TypeEffects, "Missing effects style", describeEffect(top))
}

// describeEffect includes the color and offset only when the effect has a
// color, whatever its variant.
func describeEffect(e document.Effect) string {
	var (
		c   *color.RGBA
		off document.Vector
	)
	switch e := e.(type) {
	case document.Shadow:
		c, off = e.Color, e.Offset
	case document.Blur:
		c = e.Color
	}
	label := e.Kind().Label()
	if c == nil {
		return fmt.Sprintf("%s %spx", label, formatNumber(e.BlurRadius()))
	}
	return fmt.Sprintf("%s %s %spx X: %s, Y: %s",
		label, color.ToHex(*c), formatNumber(e.BlurRadius()),
		formatNumber(off.X), formatNumber(off.Y))
}

// CheckFills reports a visible node whose topmost fill is a raw, visible,
// non-image paint. Image fills are exempt.
func CheckFills(node *document.Node) *Violation {
	if len(node.Fills) == 0 || !node.Visible {
		return nil
	}
	first := node.Fills[0]
	if node.FillStyleID != "" || first.Kind() == document.PaintImage || !first.IsVisible() {
		return nil
	}
	return NewViolation(node, TypeFill, "Missing fill style", summarize(node.Fills))
}

// CheckStrokes reports a visible node with strokes but no stroke style.
func CheckStrokes(node *document.Node) *Violation {
	if len(node.Strokes) == 0 || node.StrokeStyleID != "" || !node.Visible {
		return nil
	}
	value := fmt.Sprintf("%s / %s / %s", summarize(node.Strokes), formatNumber(node.StrokeWeight), node.StrokeAlign)
	return NewViolation(node, TypeStroke, "Missing stroke style", value)
}

// CheckText reports a visible node without a text style.
func CheckText(node *document.Node) *Violation {
	if node.TextStyleID != "" || !node.Visible {
		return nil
	}
	lineHeight := "Auto"
	if !node.LineHeight.IsAuto() {
		lineHeight = formatNumber(node.LineHeight.Value)
	}
	value := fmt.Sprintf("%s %s / %s (%s line-height)",
		node.FontName.Family, node.FontName.Style, formatNumber(node.FontSize), lineHeight)
	return NewViolation(node, TypeText, "Missing text style", value)
}
