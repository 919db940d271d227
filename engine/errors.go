package engine

import "fmt"

// InvalidInputError indicates that a required categorical field is outside
// its enumerated domain or that a required field is missing entirely.  The
// calculation is aborted and no partial result is returned.
type InvalidInputError struct {
	Field  string
	Reason string
}

// NewInvalidInputError returns a new InvalidInputError for the given field.
func NewInvalidInputError(field, reason string) InvalidInputError {
	return InvalidInputError{Field: field, Reason: reason}
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	_, ok := err.(InvalidInputError)
	return ok
}

// LookupMissError indicates that a composite key had no table row even
// after clamping.  This is a transcription defect in the table data, not a
// runtime input problem; it should never occur for a correctly binned key.
type LookupMissError struct {
	Table string
	Key   int
}

func (e LookupMissError) Error() string {
	return fmt.Sprintf("no row in %s table for key %d", e.Table, e.Key)
}

// WarningCode classifies non-fatal conditions noted during a calculation.
type WarningCode string

const (
	// OutOfRangeWarning means a numeric predictor lies outside the model's
	// validated clinical range.  The calculation proceeds with the value
	// as-is, but the estimate is less reliable.
	OutOfRangeWarning WarningCode = "out-of-range"

	// MissingValueFallback means an optional predictor was missing and was
	// scored as a zero contribution.  This likely understates the true
	// risk; callers should surface it.
	MissingValueFallback WarningCode = "missing-value-fallback"
)

// Warning is a non-fatal note attached to a risk estimate.
type Warning struct {
	Code    WarningCode `json:"code" bson:"code"`
	Field   string      `json:"field" bson:"field"`
	Message string      `json:"message" bson:"message"`
}
