// Package errors provides structured error types for designlint.
//
// Design rule failures are never errors: they are reported as lint
// violations. This package covers everything around the engine that can
// genuinely fail, such as unreadable documents, bad configuration, network
// trouble fetching a remote export, and broken preconditions inside the
// engine itself.
//
// Codes are stable strings: the server returns them in error bodies and
// [HTTPStatus] maps them to response codes.
//
//	err := errors.Wrap(errors.ErrCodeInvalidDocument, jsonErr, "parse %s", path)
//	if errors.Is(err, errors.ErrCodeInvalidDocument) {
//	    // report and move on to the next document
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIGURATION"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidStyleKey Code = "INVALID_STYLE_KEY"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// A caller broke an engine precondition.
	ErrCodeInvariantViolation Code = "INVARIANT_VIOLATION"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error carries a Code alongside the message and, for wrapped failures,
// the underlying cause. It prints as "CODE: message[: cause]".
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause, which stays reachable through errors.Is/As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// Is reports whether GetCode(err) == code.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// UserMessage drops the code prefix and cause, which is what the CLI and
// the server show. Errors without a code print as usual.
func UserMessage(err error) string {
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error code to the status the lint server responds with.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidDocument, ErrCodeInvalidFormat,
		ErrCodeInvalidPath, ErrCodeInvalidStyleKey, ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	case ErrCodeNetwork:
		return http.StatusBadGateway
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
