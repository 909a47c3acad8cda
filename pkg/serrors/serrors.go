// Package serrors defines the semantic error kinds shared by every layer of the
// registry. Lower layers (domain, storage, services) return errors carrying one
// of these kinds; the facade layer is the single place that converts them into
// result failures.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct {
	s      string
	parent Kind
}

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// Is reports a match against the kind itself or any of its parents, so a
// refined kind (e.g. ErrWeakPassword) is still classified as its parent.
func (k kind) Is(target error) bool {
	if t, ok := target.(kind); ok && t.s == k.s {
		return true
	}
	if k.parent != nil {
		return errors.Is(k.parent, target)
	}

	return false
}

// NewKind creates a new semantic error kind (a sentinel) with the provided name.
func NewKind(name string) Kind { return kind{s: name} }

// NewSubKind creates a kind that also matches parent under errors.Is.
func NewSubKind(name string, parent Kind) Kind { return kind{s: name, parent: parent} }

// Default kinds.
var (
	// ErrValidation indicates one or more request fields violate a rule.
	ErrValidation = NewKind("VALIDATION_ERROR")
	// ErrNotFound indicates a referenced id does not resolve.
	ErrNotFound = NewKind("ENTITY_NOT_FOUND")
	// ErrDuplicate indicates a uniqueness rule was violated, either by a
	// pre-check or by a store constraint.
	ErrDuplicate = NewKind("DUPLICATE_ENTITY")
	// ErrIllegalArgument indicates the caller itself violated a precondition.
	ErrIllegalArgument = NewKind("ILLEGAL_ARGUMENT")
	// ErrInfrastructure indicates a storage, file or connectivity failure.
	ErrInfrastructure = NewKind("INFRASTRUCTURE_FAILURE")
	// ErrUnauthorized indicates a missing, invalid or expired session.
	ErrUnauthorized = NewKind("UNAUTHORIZED")

	// ErrInvalidFormat is returned by value objects on malformed input.
	ErrInvalidFormat = NewSubKind("INVALID_FORMAT", ErrValidation)
	// ErrWeakPassword is returned when a password does not meet the policy.
	ErrWeakPassword = NewSubKind("WEAK_PASSWORD", ErrValidation)
)

// Error represents a semantic error carrying a kind, an optional wrapped cause,
// a message and optional attributes describing what was violated.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string

	// Entity names what was affected ("usuario", "perfil", "dni", ...).
	Entity string
	// Value is the offending value, when it is safe to echo.
	Value string
	// Field is the request field the error relates to, if any.
	Field string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// NotFound builds an ErrNotFound error for the given entity and identifier.
func NotFound(entity string, id any) *Error {
	return &Error{
		kind:   ErrNotFound,
		msg:    fmt.Sprintf("%s %v not found", entity, id),
		Entity: entity,
		Value:  fmt.Sprint(id),
	}
}

// Duplicate builds an ErrDuplicate error. field names the request field that
// caused the collision.
func Duplicate(entity string, value any, field string) *Error {
	return &Error{
		kind:   ErrDuplicate,
		msg:    fmt.Sprintf("%s %v already exists", entity, value),
		Entity: entity,
		Value:  fmt.Sprint(value),
		Field:  field,
	}
}

// Invalid builds an ErrValidation-family error bound to a request field.
func Invalid(k Kind, field, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...), Field: field}
}

// Infra wraps an infrastructure failure.
func Infra(err error, msgFmt string, args ...any) *Error {
	return Wrap(ErrInfrastructure, err, msgFmt, args...)
}

// WithField returns a copy of e bound to field.
func (e *Error) WithField(field string) *Error {
	cp := *e
	cp.Field = field

	return &cp
}

// WithCause returns a copy of e wrapping err.
func (e *Error) WithCause(err error) *Error {
	cp := *e
	cp.err = err

	return &cp
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

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel (including its parents) or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind or the wrapped error.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the most specific kind found in err's chain, or nil when err
// carries no semantic kind.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}

	return nil
}

// Details returns the outermost *Error in err's chain, if any.
func Details(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}

	return nil, false
}
