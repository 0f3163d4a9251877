package lint

import (
	"strconv"
	"strings"

	"github.com/matzehuels/designlint/pkg/color"
	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/errors"
)

// Summarize describes the topmost paint layer, which is the first entry of
// paints. Solid paints render as hex, images as "Image - <hash>", and
// gradients as their kind followed by the comma-joined hex of each stop.
//
// An empty paint list is an INVARIANT_VIOLATION.
func Summarize(paints document.Paints) (string, error) {
	if len(paints) == 0 {
		return "", errors.New(errors.ErrCodeInvariantViolation, "summarize: no paints")
	}
	return describePaint(paints[0]), nil
}

// summarize is Summarize for call sites that already checked the length.
func summarize(paints document.Paints) string {
	if len(paints) == 0 {
		return ""
	}
	return describePaint(paints[0])
}

func describePaint(p document.Paint) string {
	switch p := p.(type) {
	case document.Solid:
		return color.ToHex(p.Color)
	case document.Image:
		return "Image - " + p.Hash
	case document.Gradient:
		stops := make([]string, len(p.Stops))
		for i, s := range p.Stops {
			stops[i] = color.ToHex(s.Color)
		}
		return string(p.Type) + " " + strings.Join(stops, ",")
	default:
		return string(p.Kind())
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
