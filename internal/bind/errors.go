package bind

import (
	"errors"
	"fmt"
)

const arrayErrorPrefix = "Failed to convert into exact-size array"

// ErrNullValue is returned when a null literal reaches a list-shaped target.
// A null can never satisfy a list position, regardless of the array size.
// See https://spec.graphql.org/October2021#sec-Combining-List-and-Non-Null
var ErrNullValue = errors.New(arrayErrorPrefix + ": Value cannot be null")

// WrongCountError reports a cardinality mismatch between the input list and
// the exact-size array. It is returned before any element is converted.
type WrongCountError struct {
	Actual   int
	Expected int
}

func (e *WrongCountError) Error() string {
	return fmt.Sprintf("%s: wrong elements count: %d instead of %d", arrayErrorPrefix, e.Actual, e.Expected)
}

// ItemError wraps an element converter's failure. The user-facing message is
// the element's own, unmodified; Index records which element failed.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string { return e.Err.Error() }

func (e *ItemError) Unwrap() error { return e.Err }

// FieldError is the located error shape handed to the engine's response
// layer.
type FieldError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e FieldError) Error() string { return e.Message }

// AsFieldError converts any binding error into a located FieldError.
func AsFieldError(err error, path ...any) FieldError {
	return FieldError{Message: err.Error(), Path: path}
}
