// Package serrors defines the semantic error kinds used across the
// application and a small wrapper type that attaches a kind and a message to
// an error chain while staying compatible with errors.Is/errors.Unwrap.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by the semantic error kinds created
// with NewKind. It distinguishes kind sentinels from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind with the provided name. Kinds are
// comparable sentinels and match through errors.Is on wrapped errors.
func NewKind(name string) Kind { return kind{s: name} }

// Error kinds used by the application.
var (
	// ErrSchemaViolation indicates a remote item or a persisted table does not
	// match the expected company/enrichment/column structure.
	ErrSchemaViolation = NewKind("SCHEMA_VIOLATION")
	// ErrMissingItems indicates a webset was fetched without its items
	// expanded, so there is nothing to flatten.
	ErrMissingItems = NewKind("MISSING_ITEMS")
	// ErrNotFound indicates the requested entity does not exist upstream.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates a missing or rejected API key.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates invalid caller-supplied input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrRateLimited indicates the provider refused the call due to too many
	// requests.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error is a semantic error carrying a kind sentinel, an optional wrapped
// cause and an optional message. errors.Is matches against both the kind and
// the wrapped cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and a formatted
// message. Use Wrap to also record a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind that wraps err and
// carries a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, letting errors.Is/As traverse the chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel as well as the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// Kind returns the semantic kind sentinel associated with this error.
func (e *Error) Kind() Kind { return e.kind }
