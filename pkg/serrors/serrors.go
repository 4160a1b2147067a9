// Package serrors classifies failures by what they mean to a caller.
//
// Every Kind names a category and the HTTP status it is answered with, so the
// transport layer never needs its own table of error types. Errors are tagged
// with With or Wrap and inspected with KindOf, MessageOf and StatusOf.
package serrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Kinds are compared by identity.
type Kind struct {
	code   string
	status int
}

// NewKind creates a kind reported as code with the given HTTP status.
func NewKind(code string, status int) *Kind {
	return &Kind{code: code, status: status}
}

func (k *Kind) Error() string { return k.code }

// Code is the machine readable name sent to clients.
func (k *Kind) Code() string { return k.code }

// Status is the HTTP status code of the kind.
func (k *Kind) Status() int { return k.status }

var (
	// ErrBadRequest marks invalid client input such as an empty or missing field.
	ErrBadRequest = NewKind("BAD_REQUEST", http.StatusBadRequest)
	// ErrMalformedInput marks a payload that could not be parsed at all.
	// It is wrapped under ErrBadRequest before reaching clients.
	ErrMalformedInput = NewKind("MALFORMED_INPUT", http.StatusBadRequest)
	// ErrNotFound marks an unknown route or entity.
	ErrNotFound = NewKind("NOT_FOUND", http.StatusNotFound)
	// ErrTimeout marks an operation that ran out of time.
	ErrTimeout = NewKind("TIMEOUT", http.StatusRequestTimeout)
	// ErrStoreCorrupt marks a persisted document that could not be read back.
	ErrStoreCorrupt = NewKind("STORE_CORRUPT", http.StatusInternalServerError)
	// ErrInternal marks a fault of the service itself.
	ErrInternal = NewKind("INTERNAL", http.StatusInternalServerError)
)

// Error attaches a Kind and a client facing message to an optional cause.
type Error struct {
	Kind    *Kind
	Message string
	Err     error
}

// With returns an error of kind k with a formatted message.
func With(k *Kind, msgFmt string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(msgFmt, args...)}
}

// Wrap is like With but keeps err as the cause.
func Wrap(k *Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(msgFmt, args...), Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Kind != nil:
		return e.Kind.code
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind of e; the cause is reached through Unwrap.
func (e *Error) Is(target error) bool {
	k, ok := target.(*Kind)

	return ok && e.Kind != nil && e.Kind == k
}

// As extracts the kind of e into a **Kind target.
func (e *Error) As(target any) bool {
	kp, ok := target.(**Kind)
	if !ok || e.Kind == nil {
		return false
	}
	*kp = e.Kind

	return true
}

// KindOf returns the outermost kind in err's chain, or nil.
func KindOf(err error) *Kind {
	var k *Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// MessageOf returns the message of the outermost Error in err's chain that
// has one, or fallback.
func MessageOf(err error, fallback string) string {
	for err != nil {
		var se *Error
		if !errors.As(err, &se) {
			break
		}
		if se.Message != "" {
			return se.Message
		}
		err = se.Err
	}

	return fallback
}

// StatusOf maps err to an HTTP status. Errors without a kind are internal,
// except for expired deadlines.
func StatusOf(err error) int {
	if k := KindOf(err); k != nil {
		return k.status
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout.status
	}

	return ErrInternal.status
}
