package engine

import "math"

// CholesterolUnit indicates the unit cholesterol and triglyceride values
// were recorded in.
type CholesterolUnit string

const (
	UnitMmolL CholesterolUnit = "mmol/L"
	UnitMgDl  CholesterolUnit = "mg/dL"
)

// MmolLPerMgDl converts cholesterol from mg/dL to mmol/L.
const MmolLPerMgDl = 0.0259

// CholesterolMmolL returns the value in mmol/L.  An empty unit means the
// value is already in the caller's native unit and is returned unchanged.
// Converted values are rounded to 0.1 mmol/L, the precision of the
// published cut points, so a reading at a band threshold lands in the
// same band regardless of the unit it was recorded in.
func CholesterolMmolL(value float64, unit CholesterolUnit) float64 {
	if unit == UnitMgDl {
		return math.Round(value*MmolLPerMgDl*10) / 10
	}
	return value
}

// CholesterolMgDl returns the value in mg/dL, rounded to a whole mg/dL
// when converted.  An empty unit means the value is already in the
// caller's native unit and is returned unchanged.
func CholesterolMgDl(value float64, unit CholesterolUnit) float64 {
	if unit == UnitMmolL {
		return math.Round(value / MmolLPerMgDl)
	}
	return value
}
