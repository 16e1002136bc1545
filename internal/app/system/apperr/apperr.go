// Package apperr defines the error kinds the stores and handlers agree on.
//
// Stores return *Error values (usually package-level sentinels) instead of
// raw driver errors. The respond package turns any error into the uniform
// {"error":{"message","status"}} envelope using KindOf and Status.
package apperr

import (
	"context"
	"errors"
	"net/http"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/mongo"
)

// Kind classifies an error for the client.
type Kind int

const (
	Internal Kind = iota
	InvalidInput
	NotFound
	DuplicateKey
	AssigneeNotFound
	NotInitialized
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case NotFound:
		return "not_found"
	case DuplicateKey:
		return "duplicate_key"
	case AssigneeNotFound:
		return "assignee_not_found"
	case NotInitialized:
		return "not_initialized"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code used for the kind.
func (k Kind) Status() int {
	switch k {
	case InvalidInput, AssigneeNotFound:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case DuplicateKey:
		return http.StatusConflict
	case NotInitialized:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified error. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an *Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap classifies err under kind, keeping it as the cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Invalid is shorthand for an InvalidInput error.
func Invalid(msg string) *Error {
	return New(InvalidInput, msg)
}

// KindOf reports the kind of err. Errors that were never classified are
// Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// Message returns the client-facing message for err.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != Internal {
		return ae.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}

// FromStore classifies a MongoDB driver error. Duplicate-key errors become
// dup; client-disconnected errors become NotInitialized; anything else is
// wrapped as Internal with op as the message.
func FromStore(err error, op string, dup *Error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	if dup != nil && (wafflemongo.IsDup(err) || mongo.IsDuplicateKeyError(err)) {
		return dup
	}
	if errors.Is(err, mongo.ErrClientDisconnected) {
		return Wrap(NotInitialized, "Database unavailable", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(Internal, op+": timed out", err)
	}
	return Wrap(Internal, op, err)
}
