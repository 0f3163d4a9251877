package lint

import (
	"testing"

	"github.com/matzehuels/designlint/pkg/color"
	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/errors"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		paints document.Paints
		want   string
	}{
		{
			name:   "solid red",
			paints: document.Paints{document.Solid{Color: color.RGBA{R: 1}, Visible: true}},
			want:   "#ff0000",
		},
		{
			name:   "image",
			paints: document.Paints{document.Image{Hash: "abc123", Visible: true}},
			want:   "Image - abc123",
		},
		{
			name: "gradient",
			paints: document.Paints{document.Gradient{
				Type: document.PaintGradientLinear,
				Stops: []document.GradientStop{
					{Color: color.RGBA{}},
					{Color: color.RGBA{R: 1, G: 1, B: 1}, Position: 1},
				},
				Visible: true,
			}},
			want: "GRADIENT_LINEAR #000000,#ffffff",
		},
		{
			name: "first layer wins",
			paints: document.Paints{
				document.Solid{Color: color.RGBA{B: 1}, Visible: true},
				document.Solid{Color: color.RGBA{R: 1}, Visible: true},
			},
			want: "#0000ff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.paints)
			if err != nil {
				t.Fatalf("Summarize error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Summarize = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, errors.ErrCodeInvariantViolation) {
		t.Errorf("Summarize(nil) code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvariantViolation)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{16, "16"},
		{0.5, "0.5"},
		{-2, "-2"},
		{1.25, "1.25"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
