// Package rlerr implements the errors returned when constructing or
// using agents, policies, and value stores.
package rlerr

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports that some hyperparameter or option given at
// construction time is invalid
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrOutOfRange reports that a state or action index lies outside the
// declared bounds of a value store
var ErrOutOfRange = errors.New("index out of range")

// Error records the operation that failed together with the underlying
// error
type Error struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error so that errors.Is can be used
// with the sentinel errors in this package
func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidConfig returns an *Error wrapping ErrInvalidConfig
func InvalidConfig(op, format string, args ...interface{}) error {
	return &Error{
		Op: op,
		Err: fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig},
			args...)...),
	}
}

// OutOfRange returns an *Error wrapping ErrOutOfRange
func OutOfRange(op string, index, size int) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, size),
	}
}

// IsInvalidConfig returns whether or not an error reports an invalid
// configuration
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsOutOfRange returns whether or not an error reports an out of range
// state or action
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
