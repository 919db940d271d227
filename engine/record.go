package engine

// Sex identifies the patient's sex as used by the published risk models.
// Every model in this library was derived separately for men and women, so
// an unknown or unsupported value is a hard validation failure.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Ethnicity identifies the patient populations the ACC/AHA pooled cohort
// equations were derived for.  Patients outside these groups are scored
// with the white/other coefficient set, per the published tool.
type Ethnicity string

const (
	EthnicityWhite           Ethnicity = "white"
	EthnicityAfricanAmerican Ethnicity = "african-american"
	EthnicityOther           Ethnicity = "other"
)

// RiskRegion selects the regional recalibration of the European SCORE
// models.  SCORE 2003/2016 charts only distinguish low and high; SCORE2
// adds moderate and very-high.
type RiskRegion string

const (
	RegionLow      RiskRegion = "low"
	RegionModerate RiskRegion = "moderate"
	RegionHigh     RiskRegion = "high"
	RegionVeryHigh RiskRegion = "very-high"
)

// PatientRecord is one row of named clinical attributes.  Optional fields
// are pointers; a nil pointer means the value was not recorded.  Each
// scorer documents which fields it requires and how it treats missing
// values.  Records are never mutated once handed to a scorer.
type PatientRecord struct {
	Age       *float64  `json:"age,omitempty"`
	Sex       Sex       `json:"sex"`
	Ethnicity Ethnicity `json:"ethnicity,omitempty"`

	SystolicBP       *float64 `json:"systolicBp,omitempty"`
	TotalCholesterol *float64 `json:"totalCholesterol,omitempty"`
	LDLCholesterol   *float64 `json:"ldlCholesterol,omitempty"`
	HDLCholesterol   *float64 `json:"hdlCholesterol,omitempty"`
	Triglycerides    *float64 `json:"triglycerides,omitempty"`
	BMI              *float64 `json:"bmi,omitempty"`

	// CholesterolUnit applies to all lipid fields above.  When empty, the
	// values are assumed to already be in the scorer's native unit (mmol/L
	// for the European models, mg/dL for the US models).
	CholesterolUnit CholesterolUnit `json:"cholesterolUnit,omitempty"`

	Smoker       *bool `json:"smoker,omitempty"`
	Diabetic     *bool `json:"diabetic,omitempty"`
	TreatedForBP *bool `json:"treatedForBp,omitempty"`
	Hypertension *bool `json:"hypertension,omitempty"`

	FamilyHistoryMI         *bool `json:"familyHistoryMi,omitempty"`
	PriorMI                 *bool `json:"priorMi,omitempty"`
	PriorStroke             *bool `json:"priorStroke,omitempty"`
	PriorCABG               *bool `json:"priorCabg,omitempty"`
	PeripheralArteryDisease *bool `json:"peripheralArteryDisease,omitempty"`
	HeartFailure            *bool `json:"heartFailure,omitempty"`
	AtrialFibrillation      *bool `json:"atrialFibrillation,omitempty"`
	RenalImpairment         *bool `json:"renalImpairment,omitempty"`
	CVEventInPastYear       *bool `json:"cvEventInPastYear,omitempty"`

	// VascularBeds counts the affected vascular territories (coronary,
	// cerebral, peripheral), 0-3.  Used by REACH.
	VascularBeds *int `json:"vascularBeds,omitempty"`

	OnStatin  *bool `json:"onStatin,omitempty"`
	OnAspirin *bool `json:"onAspirin,omitempty"`

	// EasternEuropeOrMiddleEast is the REACH geographic indicator.
	EasternEuropeOrMiddleEast *bool `json:"easternEuropeOrMiddleEast,omitempty"`
}

// Float returns a pointer to the given value, for building records with
// literal fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to the given value.
func Int(v int) *int { return &v }

// Bool returns a pointer to the given value.
func Bool(v bool) *bool { return &v }

// BoolValue dereferences p, treating nil as false.
func BoolValue(p *bool) bool { return p != nil && *p }

// IntValue dereferences p, treating nil as zero.
func IntValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
