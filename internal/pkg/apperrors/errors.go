// internal/pkg/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP layer can map it to a status code
// without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindDuplicateLineItem
	KindInsufficientStock
	KindUnauthorized
	KindForbidden
	KindConflict
)

// String returns a stable name for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindDuplicateLineItem:
		return "duplicate_line_item"
	case KindInsufficientStock:
		return "insufficient_stock"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a typed failure returned by domain services.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new typed error with a fixed message.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates a new typed error with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors are
// treated as internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether the error chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// StatusOf maps an error to the HTTP status code its kind carries.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindDuplicateLineItem, KindInsufficientStock:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the client-facing message for an error. Internal errors
// get a generic message so infrastructure details never leak into responses.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "something went wrong"
}
