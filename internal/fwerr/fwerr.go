// Package fwerr defines the framework error kinds and the normalization of
// backend panics into errors.
//
// Backends panic on programmer errors (shape mismatch, unsupported dtype);
// the public operations recover those panics and return them as
// KindBackend errors, so callers see a single error surface regardless of
// which backend raised the failure.
package fwerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a framework error.
type Kind int

// Framework error kinds.
const (
	// KindValue marks invalid argument values (e.g. an unknown reduction mode).
	KindValue Kind = iota
	// KindShape marks incompatible tensor shapes.
	KindShape
	// KindDType marks unsupported or mismatched data types.
	KindDType
	// KindBackend marks failures raised inside a compute backend.
	KindBackend
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindShape:
		return "shape"
	case KindDType:
		return "dtype"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// Error is a framework error with a kind and a wrapped cause.
type Error struct {
	kind  Kind
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.kind, e.cause)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Valuef creates a KindValue error.
func Valuef(format string, args ...any) error {
	return &Error{kind: KindValue, cause: errors.Errorf(format, args...)}
}

// Shapef creates a KindShape error.
func Shapef(format string, args ...any) error {
	return &Error{kind: KindShape, cause: errors.Errorf(format, args...)}
}

// DTypef creates a KindDType error.
func DTypef(format string, args ...any) error {
	return &Error{kind: KindDType, cause: errors.Errorf(format, args...)}
}

// Wrap wraps an existing error with a kind and message.
// Returns nil if err is nil.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, cause: errors.Wrap(err, message)}
}

// KindOf returns the kind of a framework error and true, or false if err is
// not a framework error.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.kind, true
	}
	return 0, false
}

// IsKind reports whether err is a framework error of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Normalize recovers a panic and stores it in *errp as a KindBackend error.
// Intended for use as a deferred call at the public operation boundary:
//
//	func MSELoss(...) (_ *tensor.Tensor[T, B], err error) {
//	    defer fwerr.Normalize(&err)
//	    ...
//	}
//
// An existing error in *errp is preserved when no panic occurred.
func Normalize(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		*errp = &Error{kind: KindBackend, cause: err}
		return
	}
	*errp = &Error{kind: KindBackend, cause: errors.Errorf("%v", r)}
}
