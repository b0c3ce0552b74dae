package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrDegenerateInput covers inputs the statistics cannot be computed from:
	// empty distributions, non-positive stdev, zero PDF mass, zero total sum
	// of squares. Distinct from a valid zero-valued result.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInsufficientData means too few bins survived the expected-count
	// filter for the chi-squared test to be valid.
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// ErrBaseNotFound means the requested base is not present in the fetched
	// dataset.
	ErrBaseNotFound = errors.New("base not found")

	// ErrInvalidSummary means a fetched base summary failed boundary
	// validation and never entered the analysis.
	ErrInvalidSummary = errors.New("invalid base summary")
)

// Error constructors with context
func NewDegenerateInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateInput, reason)
}

func NewInsufficientDataError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInsufficientData, reason)
}

func NewBaseNotFoundError(base int) error {
	return fmt.Errorf("%w: base %d", ErrBaseNotFound, base)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: validation failed for %s: %s", ErrInvalidSummary, field, reason)
}

// Error checking helpers
func IsDegenerateInput(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}

func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidSummary)
}
