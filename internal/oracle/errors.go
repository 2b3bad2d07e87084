package oracle

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes oracle errors.
type ErrorCode string

const (
	// ErrCodeOutOfRange indicates a query above the configured limit.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// RangeError is returned by Check when n exceeds the oracle's limit.
// It is raised before any sieve work happens.
type RangeError struct {
	Code  ErrorCode
	N     uint64
	Limit uint64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d exceeds query limit %d", e.Code, e.N, e.Limit)
}

// NewRangeError creates a RangeError for n against limit.
func NewRangeError(n, limit uint64) *RangeError {
	return &RangeError{
		Code:  ErrCodeOutOfRange,
		N:     n,
		Limit: limit,
	}
}

// IsRangeError returns true if err is, or wraps, a RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}
