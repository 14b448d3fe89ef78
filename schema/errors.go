package schema

import (
	"errors"
	"fmt"
)

// InvalidInputError indicates a caller bug rather than an expected data edge
// case: negative radii, mismatched series lengths, or non-finite numeric
// inputs. Sparse or empty data never produces this error; the engine degrades
// to well-defined empty geometry instead.
type InvalidInputError struct {
	Op     string // Operation that rejected the input, e.g. "ComputeSectors"
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: invalid input: %s", e.Op, e.Reason)
}

// NewInvalidInput builds an InvalidInputError with a formatted reason.
func NewInvalidInput(op, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}
