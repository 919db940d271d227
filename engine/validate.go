package engine

import "fmt"

// Range is a validated clinical range for a numeric predictor.  Values
// outside it are scored as-is but flagged with an OutOfRangeWarning.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range (inclusive).
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Validator accumulates warnings while checking one record against one
// score's declarative requirements.  It replaces the hand-written
// per-score validation conditionals with a shared implementation.
type Validator struct {
	score    string
	warnings []Warning
}

// NewValidator returns a Validator for the named score.
func NewValidator(score string) *Validator {
	return &Validator{score: score}
}

// RequireSex fails unless the record's sex is male or female.
func (v *Validator) RequireSex(s Sex) error {
	if s != SexMale && s != SexFemale {
		return NewInvalidInputError("sex", fmt.Sprintf("must be %q or %q", SexMale, SexFemale))
	}
	return nil
}

// RequireNumber fails when a numeric field with no sensible fallback is
// missing.
func (v *Validator) RequireNumber(field string, p *float64) (float64, error) {
	if p == nil {
		return 0, NewInvalidInputError(field, "required value is missing")
	}
	return *p, nil
}

// CheckRange records an OutOfRangeWarning when value lies outside the
// score's validated clinical range.
func (v *Validator) CheckRange(field string, value float64, r Range) {
	if !r.Contains(value) {
		v.warnings = append(v.warnings, Warning{
			Code:    OutOfRangeWarning,
			Field:   field,
			Message: fmt.Sprintf("%s %g is outside the validated %s range %g-%g", field, value, v.score, r.Min, r.Max),
		})
	}
}

// OptionalBool dereferences p; a nil pointer is scored as false and noted
// as a missing-value fallback.
func (v *Validator) OptionalBool(field string, p *bool) bool {
	if p == nil {
		v.noteMissing(field)
		return false
	}
	return *p
}

// OptionalInt dereferences p; a nil pointer is scored as zero and noted as
// a missing-value fallback.
func (v *Validator) OptionalInt(field string, p *int) int {
	if p == nil {
		v.noteMissing(field)
		return 0
	}
	return *p
}

// OptionalNumber dereferences p; the second return is false when the value
// was missing, in which case a missing-value fallback is noted.
func (v *Validator) OptionalNumber(field string, p *float64) (float64, bool) {
	if p == nil {
		v.noteMissing(field)
		return 0, false
	}
	return *p, true
}

func (v *Validator) noteMissing(field string) {
	v.warnings = append(v.warnings, Warning{
		Code:    MissingValueFallback,
		Field:   field,
		Message: fmt.Sprintf("%s is missing; scored as a zero contribution, which may understate risk", field),
	})
}

// Warnings returns the warnings accumulated so far.
func (v *Validator) Warnings() []Warning {
	return v.warnings
}
