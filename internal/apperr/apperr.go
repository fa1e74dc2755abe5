package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the stable categories exposed to
// API clients
type Kind string

const (
	KindValidation          Kind = "validation"
	KindConflict            Kind = "conflict"
	KindNotFound            Kind = "not_found"
	KindInsufficientBalance Kind = "insufficient_balance"
	KindStoreUnavailable    Kind = "store_unavailable"

	// KindInternal covers failures inside the process itself, e.g. a
	// document that would not render. Not part of the store taxonomy.
	KindInternal Kind = "internal"
)

// Error is an application error tagged with the operation that failed and
// a stable kind. Wrapped causes are preserved for logging but the Message
// is what clients see.
type Error struct {
	Op      string
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an application error without an underlying cause
func New(op string, kind Kind, message string) *Error {
	return &Error{Op: op, Kind: kind, Message: message}
}

// Wrap tags an underlying error with an operation and kind
func Wrap(op string, kind Kind, message string, err error) *Error {
	return &Error{Op: op, Kind: kind, Message: message, Err: err}
}

// Validation is shorthand for a pre-store validation failure
func Validation(op string, message string) *Error {
	return New(op, KindValidation, message)
}

// StoreUnavailable tags a transport or infrastructure failure from the
// external store
func StoreUnavailable(op string, err error) *Error {
	return Wrap(op, KindStoreUnavailable, "store unavailable", err)
}

// KindOf extracts the kind from an error chain, defaulting to
// store_unavailable for untagged errors so infrastructure failures never
// masquerade as client mistakes.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStoreUnavailable
}

// MessageOf extracts the client-facing message from an error chain
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// Is reports whether the error chain carries the given kind
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
