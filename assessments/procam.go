package assessments

import (
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// PROCAMVersion selects the published PROCAM scoring scheme.
type PROCAMVersion string

const (
	// PROCAM2002 is the original score for men aged 35-65.
	PROCAM2002 PROCAMVersion = "2002"
	// PROCAM2007 is the health-check update covering both sexes.
	PROCAM2007 PROCAMVersion = "2007"
)

// PROCAM point assignments.  Each continuous predictor is binned and the
// bin's point value added to the total; lipids and triglycerides are in
// mg/dL.
var (
	procamAgeBins     = engine.Bins{Cuts: []float64{40, 45, 50, 55, 60}, LowerInclusive: true}
	procamAgePoints   = []int{0, 6, 11, 16, 21, 26}
	procam07AgeBins   = engine.Bins{Cuts: []float64{40, 45, 50, 55, 60, 65}, LowerInclusive: true}
	procam07AgePoints = []int{0, 6, 11, 16, 21, 26, 30}

	procamLDLBins   = engine.Bins{Cuts: []float64{100, 130, 160, 190}, LowerInclusive: true}
	procamLDLPoints = []int{0, 5, 10, 14, 20}

	procamHDLBins   = engine.Bins{Cuts: []float64{35, 45, 55}, LowerInclusive: true}
	procamHDLPoints = []int{11, 8, 5, 0}

	procamTrigBins   = engine.Bins{Cuts: []float64{100, 150, 200}, LowerInclusive: true}
	procamTrigPoints = []int{0, 2, 3, 4}

	procamSBPBins   = engine.Bins{Cuts: []float64{120, 130, 140, 160}, LowerInclusive: true}
	procamSBPPoints = []int{0, 2, 3, 5, 8}
)

const (
	procamSmokerPoints        = 8
	procamFamilyHistoryPoints = 4
	procamDiabetes2002Points  = 6

	// The 2007 scheme weights diabetes by sex: 9 points for men, 11 for
	// women.
	procamDiabetesMalePoints   = 9
	procamDiabetesFemalePoints = 11
)

// procamRisk2002 maps the 2002 point total to 10-year coronary event risk.
// Totals of 20 or less correspond to the published "<1%" row.
var procamRisk2002 = engine.PointsTable{
	Name: "PROCAM 2002",
	Min:  20,
	Max:  60,
	Risk: map[int]float64{
		20: 0.8, 21: 1.1, 22: 1.2, 23: 1.3, 24: 1.4, 25: 1.6, 26: 1.7, 27: 1.8,
		28: 1.9, 29: 2.3, 30: 2.4, 31: 2.8, 32: 2.9, 33: 3.3, 34: 3.5, 35: 4.0,
		36: 4.2, 37: 4.8, 38: 5.1, 39: 5.7, 40: 6.1, 41: 7.0, 42: 7.4, 43: 8.0,
		44: 8.8, 45: 10.2, 46: 10.5, 47: 10.7, 48: 12.8, 49: 13.2, 50: 15.5,
		51: 16.8, 52: 17.5, 53: 19.6, 54: 21.7, 55: 22.2, 56: 23.8, 57: 25.1,
		58: 28.0, 59: 29.4, 60: 30.0,
	},
}

// procamRisk2007 is the recalibrated mapping of the 2007 scheme.
var procamRisk2007 = engine.PointsTable{
	Name: "PROCAM 2007",
	Min:  20,
	Max:  60,
	Risk: map[int]float64{
		20: 0.6, 21: 0.8, 22: 0.9, 23: 1.0, 24: 1.1, 25: 1.3, 26: 1.4, 27: 1.6,
		28: 1.8, 29: 2.0, 30: 2.2, 31: 2.5, 32: 2.8, 33: 3.1, 34: 3.5, 35: 3.9,
		36: 4.4, 37: 4.9, 38: 5.5, 39: 6.1, 40: 6.8, 41: 7.6, 42: 8.4, 43: 9.3,
		44: 10.3, 45: 11.4, 46: 12.6, 47: 13.9, 48: 15.3, 49: 16.8, 50: 18.4,
		51: 20.1, 52: 21.9, 53: 23.8, 54: 25.7, 55: 27.7, 56: 29.7, 57: 31.7,
		58: 33.7, 59: 35.7, 60: 37.7,
	},
}

// PROCAMPlugin scores 10-year risk of a major coronary event with the
// PROCAM point scheme.  The 2002 version applies to men only; the 2007
// version covers both sexes.  The estimate carries both the point total
// and the table risk.
type PROCAMPlugin struct {
	Version PROCAMVersion
}

// NewPROCAMPlugin returns a PROCAM scorer for the given scheme version.
func NewPROCAMPlugin(version PROCAMVersion) *PROCAMPlugin {
	return &PROCAMPlugin{Version: version}
}

// Config provides the configuration parameters for the PROCAMPlugin.
func (p *PROCAMPlugin) Config() plugin.RiskScorerPluginConfig {
	return plugin.RiskScorerPluginConfig{
		Name:             "procam",
		Method:           "PROCAM risk score, " + string(p.Version) + " scheme",
		PredictedOutcome: "Major coronary event",
		Horizon:          "10 years",
		Citation:         "Assmann et al., Circulation 2002;105:310-315",
		DefaultPieSlices: []plugin.Slice{
			{Name: "Age", Weight: 26, MaxValue: 30},
			{Name: "LDL Cholesterol", Weight: 20, MaxValue: 20},
			{Name: "HDL Cholesterol", Weight: 11, MaxValue: 11},
			{Name: "Triglycerides", Weight: 4, MaxValue: 4},
			{Name: "Smoking", Weight: 8, MaxValue: 8},
			{Name: "Diabetes", Weight: 11, MaxValue: 11},
			{Name: "Family History", Weight: 4, MaxValue: 4},
			{Name: "Systolic Blood Pressure", Weight: 8, MaxValue: 8},
		},
	}
}

// Calculate sums the per-variable points and looks the total up in the
// version's risk table.
func (p *PROCAMPlugin) Calculate(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	if p.Version != PROCAM2002 && p.Version != PROCAM2007 {
		return nil, engine.NewInvalidInputError("version", "must be 2002 or 2007")
	}
	v := engine.NewValidator("PROCAM")
	if err := v.RequireSex(rec.Sex); err != nil {
		return nil, err
	}
	if p.Version == PROCAM2002 && rec.Sex != engine.SexMale {
		return nil, engine.NewInvalidInputError("sex", "the 2002 scheme was derived for men only; use the 2007 scheme for women")
	}
	age, err := v.RequireNumber("age", rec.Age)
	if err != nil {
		return nil, err
	}
	ldl, err := v.RequireNumber("ldlCholesterol", rec.LDLCholesterol)
	if err != nil {
		return nil, err
	}
	hdl, err := v.RequireNumber("hdlCholesterol", rec.HDLCholesterol)
	if err != nil {
		return nil, err
	}
	trig, err := v.RequireNumber("triglycerides", rec.Triglycerides)
	if err != nil {
		return nil, err
	}
	sbp, err := v.RequireNumber("systolicBp", rec.SystolicBP)
	if err != nil {
		return nil, err
	}
	ldl = engine.CholesterolMgDl(ldl, rec.CholesterolUnit)
	hdl = engine.CholesterolMgDl(hdl, rec.CholesterolUnit)
	trig = engine.CholesterolMgDl(trig, rec.CholesterolUnit)
	if p.Version == PROCAM2002 {
		v.CheckRange("age", age, engine.Range{Min: 35, Max: 65})
	} else {
		v.CheckRange("age", age, engine.Range{Min: 20, Max: 75})
	}

	agePoints := procamAgePoints[procamAgeBins.Index(age)]
	if p.Version == PROCAM2007 {
		agePoints = procam07AgePoints[procam07AgeBins.Index(age)]
	}
	ldlPoints := procamLDLPoints[procamLDLBins.Index(ldl)]
	hdlPoints := procamHDLPoints[procamHDLBins.Index(hdl)]
	trigPoints := procamTrigPoints[procamTrigBins.Index(trig)]
	sbpPoints := procamSBPPoints[procamSBPBins.Index(sbp)]

	smokerPoints := 0
	if v.OptionalBool("smoker", rec.Smoker) {
		smokerPoints = procamSmokerPoints
	}
	diabetesPoints := 0
	if v.OptionalBool("diabetic", rec.Diabetic) {
		switch {
		case p.Version == PROCAM2002:
			diabetesPoints = procamDiabetes2002Points
		case rec.Sex == engine.SexMale:
			diabetesPoints = procamDiabetesMalePoints
		default:
			diabetesPoints = procamDiabetesFemalePoints
		}
	}
	familyPoints := 0
	if v.OptionalBool("familyHistoryMi", rec.FamilyHistoryMI) {
		familyPoints = procamFamilyHistoryPoints
	}

	total := agePoints + ldlPoints + hdlPoints + trigPoints + sbpPoints +
		smokerPoints + diabetesPoints + familyPoints

	table := procamRisk2002
	if p.Version == PROCAM2007 {
		table = procamRisk2007
	}
	risk, err := table.Lookup(total)
	if err != nil {
		return nil, err
	}

	pie := p.Config().NewPie("")
	pie.UpdateSliceValue("Age", agePoints)
	pie.UpdateSliceValue("LDL Cholesterol", ldlPoints)
	pie.UpdateSliceValue("HDL Cholesterol", hdlPoints)
	pie.UpdateSliceValue("Triglycerides", trigPoints)
	pie.UpdateSliceValue("Smoking", smokerPoints)
	pie.UpdateSliceValue("Diabetes", diabetesPoints)
	pie.UpdateSliceValue("Family History", familyPoints)
	pie.UpdateSliceValue("Systolic Blood Pressure", sbpPoints)

	return &plugin.RiskEstimate{
		AsOf:               time.Now(),
		Score:              &total,
		ProbabilityDecimal: &risk,
		Warnings:           v.Warnings(),
		Pie:                pie,
	}, nil
}

// PROCAM scores a single record with the selected PROCAM scheme.
func PROCAM(rec *engine.PatientRecord, version PROCAMVersion) (*plugin.RiskEstimate, error) {
	return NewPROCAMPlugin(version).Calculate(rec)
}
