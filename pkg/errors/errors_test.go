package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  New(ErrCodeInvalidDocument, "node %s has no type", "1:2"),
			want: "INVALID_DOCUMENT: node 1:2 has no type",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeNetwork, errors.New("connection reset"), "fetch %s", "https://example.com/home.json"),
			want: "NETWORK_ERROR: fetch https://example.com/home.json: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := Wrap(ErrCodeInvalidDocument, cause, "parse home.json")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestCodeLookup(t *testing.T) {
	radius := New(ErrCodeInvalidConfig, "radius -1 is negative")
	wrapped := fmt.Errorf("load designlint.toml: %w", radius)
	nested := Wrap(ErrCodeNetwork, New(ErrCodeTimeout, "slow"), "fetch")

	tests := []struct {
		name     string
		err      error
		wantCode Code
	}{
		{"direct", radius, ErrCodeInvalidConfig},
		{"through fmt.Errorf", wrapped, ErrCodeInvalidConfig},
		{"outermost wins", nested, ErrCodeNetwork},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
			if tt.wantCode != "" && !Is(tt.err, tt.wantCode) {
				t.Errorf("Is(err, %s) = false", tt.wantCode)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Error("Is(err, UNSUPPORTED) = true")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeFileNotFound, "document home.json"), "document home.json"},
		{"wrapped coded", fmt.Errorf("lint: %w", New(ErrCodeInvalidStyleKey, "bad key")), "bad key"},
		{"plain", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{ErrCodeInvalidDocument, http.StatusBadRequest},
		{ErrCodeInvalidConfig, http.StatusBadRequest},
		{ErrCodeInvalidStyleKey, http.StatusBadRequest},
		{ErrCodeFileNotFound, http.StatusNotFound},
		{ErrCodeUnsupported, http.StatusNotImplemented},
		{ErrCodeNetwork, http.StatusBadGateway},
		{ErrCodeTimeout, http.StatusGatewayTimeout},
		{ErrCodeInvariantViolation, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := HTTPStatus(New(tt.code, "x")); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}

	if got := HTTPStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("HTTPStatus(plain) = %d, want 500", got)
	}
}
