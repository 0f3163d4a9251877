package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidatePath validates a document path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !IsURL(rawURL) {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// IsURL reports whether s looks like an http(s) URL rather than a file path.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// styleKeyRegex matches a single style key reference, optionally prefixed with "S:".
var styleKeyRegex = regexp.MustCompile(`^(S:)?[A-Za-z0-9:_-]+$`)

// ValidateStyleKey validates a style key from a configured style list.
func ValidateStyleKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidStyleKey, "style key cannot be empty")
	}
	if strings.Contains(key, ",") {
		return New(ErrCodeInvalidStyleKey, "style key must be a single reference: %q", key)
	}
	if !styleKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidStyleKey, "invalid style key: %q", key)
	}
	if strings.TrimPrefix(key, "S:") == "" {
		return New(ErrCodeInvalidStyleKey, "style key has no body: %q", key)
	}
	return nil
}

// ValidateRadii validates a corner radius allow-list.
// Radii must be finite and non-negative.
func ValidateRadii(radii []float64) error {
	for _, r := range radii {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return New(ErrCodeInvalidConfig, "radius must be a finite number")
		}
		if r < 0 {
			return New(ErrCodeInvalidConfig, "radius cannot be negative: %v", r)
		}
	}
	return nil
}
