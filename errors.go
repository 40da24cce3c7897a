package stringsimilarity

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidAlgorithm is returned when the algorithm identifier is not in the closed set.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrInvalidConfiguration is returned when an option value is malformed,
	// such as a negative cost or an unknown tokenize scheme.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInputTooLong is returned when an input exceeds the configured length guard.
	ErrInputTooLong = errors.New("input too long")
)

// MetricError wraps errors with the algorithm context they occurred in.
type MetricError struct {
	Op  string // Operation or algorithm name
	Err error  // Underlying error
}

// Error implements the error interface
func (e *MetricError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("stringsimilarity: %v", e.Err)
	}
	return fmt.Sprintf("stringsimilarity: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *MetricError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target
func (e *MetricError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// wrapError wraps an error with operation context
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &MetricError{Op: op, Err: err}
}
