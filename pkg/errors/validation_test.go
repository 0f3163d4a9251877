package errors

import (
	"math"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "exports/home.json", false},
		{"valid absolute", "/tmp/design.json", false},
		{"valid with spaces", "My Designs/home page.json", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 5000)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://exports.example.com/home.json", false},
		{"http", "http://localhost:8080/doc.json", false},

		{"empty", "", true},
		{"file scheme", "file:///etc/passwd", true},
		{"no scheme", "example.com/doc.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStyleKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"sha key", "5c1691cbeaaf4270107d34f1a12f02fdd04afa02", false},
		{"prefixed key", "S:5c1691cbeaaf4270107d34f1a12f02fdd04afa02", false},
		{"node-style key", "S:abc123,", true},
		{"bare prefix", "S:", true},
		{"empty", "", true},
		{"list", "abc,def", true},
		{"spaces", "abc def", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStyleKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStyleKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRadii(t *testing.T) {
	tests := []struct {
		name    string
		input   []float64
		wantErr bool
	}{
		{"nil", nil, false},
		{"typical", []float64{0, 2, 4, 8, 16}, false},
		{"fractional", []float64{0.5, 1.5}, false},

		{"negative", []float64{4, -2}, true},
		{"nan", []float64{math.NaN()}, true},
		{"inf", []float64{math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRadii(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRadii(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
