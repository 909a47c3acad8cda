// Package result implements the success/failure envelope returned by every
// facade operation. A Result is either a success carrying an optional payload,
// or a failure carrying a non-empty, ordered list of error records.
package result

import "fmt"

// Stable error codes exposed to callers.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "ENTITY_NOT_FOUND"
	CodeDuplicate      = "DUPLICATE_ENTITY"
	CodeIllegalArg     = "ILLEGAL_ARGUMENT"
	CodeInfrastructure = "INFRASTRUCTURE_FAILURE"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeGeneric        = "GENERIC_ERROR"
)

// ErrorRecord describes one failure. Field is empty when the error is not
// bound to a request field.
type ErrorRecord struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e ErrorRecord) String() string {
	if e.Field == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}

	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Result is the envelope. The zero value is not meaningful; use the
// constructors below.
type Result[T any] struct {
	success bool
	data    *T
	errors  []ErrorRecord
}

// OK returns a success carrying data.
func OK[T any](data T) Result[T] {
	return Result[T]{success: true, data: &data}
}

// Empty returns a success without data.
func Empty[T any]() Result[T] {
	return Result[T]{success: true}
}

// Fail returns a failure with a single message and the generic code.
func Fail[T any](message string) Result[T] {
	return FailWith[T](ErrorRecord{Code: CodeGeneric, Message: message})
}

// FailWith returns a failure with a single structured error.
func FailWith[T any](rec ErrorRecord) Result[T] {
	return FailMany[T]([]ErrorRecord{rec})
}

// FailMany returns a failure carrying recs in order. An empty list is replaced
// by a single generic error so that a failure never has zero errors.
func FailMany[T any](recs []ErrorRecord) Result[T] {
	if len(recs) == 0 {
		recs = []ErrorRecord{{Code: CodeGeneric, Message: "unknown error"}}
	}
	cp := make([]ErrorRecord, len(recs))
	copy(cp, recs)

	return Result[T]{errors: cp}
}

// Recast converts a failure to a failure of another payload type. Calling it
// on a success yields a generic failure since the payload cannot be carried.
func Recast[U, T any](r Result[T]) Result[U] {
	if r.success {
		return Fail[U]("unexpected success while recasting result")
	}

	return FailMany[U](r.errors)
}

// IsSuccess reports whether r is a success.
func (r Result[T]) IsSuccess() bool { return r.success }

// Data returns the payload and whether one is present. Failures never carry data.
func (r Result[T]) Data() (T, bool) {
	if r.data == nil {
		var zero T

		return zero, false
	}

	return *r.data, true
}

// Errors returns a copy of the error list; always empty on success.
func (r Result[T]) Errors() []ErrorRecord {
	if len(r.errors) == 0 {
		return nil
	}
	cp := make([]ErrorRecord, len(r.errors))
	copy(cp, r.errors)

	return cp
}

// FirstError returns the first error record, if any.
func (r Result[T]) FirstError() (ErrorRecord, bool) {
	if len(r.errors) == 0 {
		return ErrorRecord{}, false
	}

	return r.errors[0], true
}

// Envelope is the serializable form of a Result.
type Envelope[T any] struct {
	Success bool          `json:"success"`
	Data    *T            `json:"data,omitempty"`
	Errors  []ErrorRecord `json:"errors,omitempty"`
}

// Envelope returns the serializable form of r.
func (r Result[T]) Envelope() Envelope[T] {
	return Envelope[T]{Success: r.success, Data: r.data, Errors: r.Errors()}
}
