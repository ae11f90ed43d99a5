// error.go defines the error taxonomy of Get and Set.

package types

import (
	"errors"
	"fmt"
)

// ErrBadParameter is returned when a payload is missing or fails validation.
type ErrBadParameter struct {
	Index Index
	Err   error
}

func (e ErrBadParameter) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad parameter for %s: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("bad parameter for %s", e.Index)
}

func (e ErrBadParameter) Unwrap() error {
	return e.Err
}

// ErrBadIndex is returned when a store does not know the requested field group.
type ErrBadIndex struct {
	Index Index
}

func (e ErrBadIndex) Error() string {
	return fmt.Sprintf("bad index %s", e.Index)
}

// ErrNotImplemented is returned when a store knows the field group but
// intentionally does not support the operation for its codec/direction.
type ErrNotImplemented struct {
	Index Index
}

func (e ErrNotImplemented) Error() string {
	return fmt.Sprintf("%s: not implemented", e.Index)
}

// ErrorCode is the closed error code the component layer works with.
type ErrorCode int

const (
	ErrorCodeNone = ErrorCode(iota)
	ErrorCodeBadParameter
	ErrorCodeBadIndex
	ErrorCodeNotImplemented
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeNone:
		return "ERROR_SETTINGS_NONE"
	case ErrorCodeBadParameter:
		return "ERROR_SETTINGS_BAD_PARAMETER"
	case ErrorCodeBadIndex:
		return "ERROR_SETTINGS_BAD_INDEX"
	case ErrorCodeNotImplemented:
		return "ERROR_SETTINGS_NOT_IMPLEMENTED"
	}
	return fmt.Sprintf("ERROR_SETTINGS_UNKNOWN_%d", int(c))
}

// ErrorCodeOf maps an error returned by a settings store to its ErrorCode.
//
// Errors that do not wrap one of the settings errors are reported as bad parameters.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return ErrorCodeNone
	}
	var (
		badIndex       ErrBadIndex
		notImplemented ErrNotImplemented
	)
	switch {
	case errors.As(err, &badIndex):
		return ErrorCodeBadIndex
	case errors.As(err, &notImplemented):
		return ErrorCodeNotImplemented
	}
	return ErrorCodeBadParameter
}
