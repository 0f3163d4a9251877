package color

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want RGB8
	}{
		{"black", RGBA{0, 0, 0, 1}, RGB8{0, 0, 0, 1}},
		{"white", RGBA{1, 1, 1, 1}, RGB8{255, 255, 255, 1}},
		{"red", RGBA{1, 0, 0, 0}, RGB8{255, 0, 0, 0}},
		{"rounds half up", RGBA{0.5, 0.5, 0.5, 0.25}, RGB8{128, 128, 128, 0.25}},
		{"rounds fractions", RGBA{0.1, 0.2, 0.4, 0}, RGB8{26, 51, 102, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    string
	}{
		{255, 0, 0, "#ff0000"},
		{0, 0, 0, "#000000"},
		{1, 2, 3, "#010203"},
		{15, 16, 255, "#0f10ff"},
	}

	for _, tt := range tests {
		if got := Hex(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Hex(%d, %d, %d) = %q, want %q", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestToHex(t *testing.T) {
	if got := ToHex(RGBA{R: 1}); got != "#ff0000" {
		t.Errorf("ToHex(red) = %q, want %q", got, "#ff0000")
	}
	if got := ToHex(RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.5}); got != "#336699" {
		t.Errorf("ToHex = %q, want %q", got, "#336699")
	}
}
