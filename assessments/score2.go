package assessments

import (
	"math"
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// SCORE2 chart axes.  Ages 40-69 in five-year bands, systolic blood
// pressure bands with an open ">=160" top band, and total cholesterol
// bands in mmol/L.
var (
	score2AgeBins  = engine.Bins{Cuts: []float64{45, 50, 55, 60, 65}, LowerInclusive: true}
	score2SBPBins  = engine.Bins{Cuts: []float64{120, 140, 160}, LowerInclusive: true}
	score2CholBins = engine.Bins{Cuts: []float64{4, 5, 6}, LowerInclusive: true}
)

var score2ValidatedAge = engine.Range{Min: 40, Max: 69}

// score2Coefficients holds the sex-specific SCORE2 model: main effects,
// age interactions, and the 10-year baseline survival.  Age is centered at
// 60 and scaled by 5, systolic pressure at 120/20, total cholesterol at
// 6 mmol/L, and HDL at 1.3/0.5.
type score2Coefficients struct {
	Age, Smoking, SBP, Diabetes, TotalChol, HDL           float64
	SmokingAge, SBPAge, TotalCholAge, HDLAge, DiabetesAge float64
	BaselineSurvival                                      float64
}

var score2Male = score2Coefficients{
	Age: 0.3742, Smoking: 0.6012, SBP: 0.2777, Diabetes: 0.6457,
	TotalChol: 0.1458, HDL: -0.2698,
	SmokingAge: -0.0755, SBPAge: -0.0255, TotalCholAge: -0.0281,
	HDLAge: 0.0426, DiabetesAge: -0.0983,
	BaselineSurvival: 0.9605,
}

var score2Female = score2Coefficients{
	Age: 0.4648, Smoking: 0.7744, SBP: 0.3131, Diabetes: 0.8096,
	TotalChol: 0.1002, HDL: -0.2606,
	SmokingAge: -0.1088, SBPAge: -0.0277, TotalCholAge: -0.0226,
	HDLAge: 0.0613, DiabetesAge: -0.1272,
	BaselineSurvival: 0.9776,
}

// score2Scales are the regional recalibration constants (scale1, scale2).
type score2Scales struct{ Scale1, Scale2 float64 }

var score2RegionScales = map[engine.Sex]map[engine.RiskRegion]score2Scales{
	engine.SexMale: {
		engine.RegionLow:      {-0.5699, 0.7476},
		engine.RegionModerate: {-0.1565, 0.8009},
		engine.RegionHigh:     {0.3207, 0.9360},
		engine.RegionVeryHigh: {0.5836, 0.8294},
	},
	engine.SexFemale: {
		engine.RegionLow:      {-0.7380, 0.7019},
		engine.RegionModerate: {-0.3143, 0.7701},
		engine.RegionHigh:     {0.5710, 0.9369},
		engine.RegionVeryHigh: {0.9412, 0.8329},
	},
}

// SCORE2ChartPlugin scores 10-year fatal and non-fatal cardiovascular
// event risk from the SCORE2 risk chart for one of the four European risk
// regions.  This is a pure bucket-and-table scorer: inputs are binned to
// the chart's bands and the published cell value is returned.
type SCORE2ChartPlugin struct {
	Region engine.RiskRegion
}

// NewSCORE2ChartPlugin returns a chart scorer for the given risk region.
func NewSCORE2ChartPlugin(region engine.RiskRegion) *SCORE2ChartPlugin {
	return &SCORE2ChartPlugin{Region: region}
}

// Config provides the configuration parameters for the SCORE2 chart scorer.
func (p *SCORE2ChartPlugin) Config() plugin.RiskScorerPluginConfig {
	return plugin.RiskScorerPluginConfig{
		Name:             "score2-chart",
		Method:           "SCORE2 risk chart (" + string(p.Region) + " risk region)",
		PredictedOutcome: "Fatal and non-fatal cardiovascular events",
		Horizon:          "10 years",
		Citation:         "SCORE2 working group, Eur Heart J 2021;42:2439-2454",
		DefaultPieSlices: []plugin.Slice{
			{Name: "Age", Weight: 30, MaxValue: 5},
			{Name: "Systolic Blood Pressure", Weight: 25, MaxValue: 3},
			{Name: "Cholesterol", Weight: 25, MaxValue: 3},
			{Name: "Smoking", Weight: 20, MaxValue: 1},
		},
	}
}

// Calculate bins the record into a chart cell and returns the published
// risk percentage for that cell.
func (p *SCORE2ChartPlugin) Calculate(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	v := engine.NewValidator("SCORE2")
	if err := v.RequireSex(rec.Sex); err != nil {
		return nil, err
	}
	table, ok := score2Charts[rec.Sex][p.Region]
	if !ok {
		return nil, engine.NewInvalidInputError("region", "must be low, moderate, high or very-high")
	}
	age, err := v.RequireNumber("age", rec.Age)
	if err != nil {
		return nil, err
	}
	sbp, err := v.RequireNumber("systolicBp", rec.SystolicBP)
	if err != nil {
		return nil, err
	}
	chol, err := v.RequireNumber("totalCholesterol", rec.TotalCholesterol)
	if err != nil {
		return nil, err
	}
	if rec.Smoker == nil {
		return nil, engine.NewInvalidInputError("smoker", "required value is missing")
	}
	chol = engine.CholesterolMmolL(chol, rec.CholesterolUnit)

	v.CheckRange("age", age, score2ValidatedAge)
	v.CheckRange("systolicBp", sbp, engine.Range{Min: 100, Max: 179})
	v.CheckRange("totalCholesterol", chol, engine.Range{Min: 3.0, Max: 6.9})

	smokeIdx := 0
	if *rec.Smoker {
		smokeIdx = 1
	}
	ageIdx := score2AgeBins.Index(age)
	sbpIdx := score2SBPBins.Index(sbp)
	cholIdx := score2CholBins.Index(chol)
	risk := table[smokeIdx][ageIdx][sbpIdx][cholIdx]

	pie := p.Config().NewPie("")
	pie.UpdateSliceValue("Age", ageIdx)
	pie.UpdateSliceValue("Systolic Blood Pressure", sbpIdx)
	pie.UpdateSliceValue("Cholesterol", cholIdx)
	pie.UpdateSliceValue("Smoking", smokeIdx)

	return &plugin.RiskEstimate{
		AsOf:               time.Now(),
		ProbabilityDecimal: &risk,
		Warnings:           v.Warnings(),
		Pie:                pie,
	}, nil
}

// SCORE2Chart scores a single record against the SCORE2 chart for the
// given risk region.
func SCORE2Chart(rec *engine.PatientRecord, region engine.RiskRegion) (*plugin.RiskEstimate, error) {
	return NewSCORE2ChartPlugin(region).Calculate(rec)
}

// SCORE2Plugin evaluates the full SCORE2 regression model, including the
// HDL and diabetes terms the chart folds away, with regional
// recalibration.
type SCORE2Plugin struct {
	Region engine.RiskRegion
}

// NewSCORE2Plugin returns a formula scorer for the given risk region.
func NewSCORE2Plugin(region engine.RiskRegion) *SCORE2Plugin {
	return &SCORE2Plugin{Region: region}
}

// Config provides the configuration parameters for the SCORE2 formula scorer.
func (p *SCORE2Plugin) Config() plugin.RiskScorerPluginConfig {
	return plugin.RiskScorerPluginConfig{
		Name:             "score2",
		Method:           "SCORE2 regression model (" + string(p.Region) + " risk region)",
		PredictedOutcome: "Fatal and non-fatal cardiovascular events",
		Horizon:          "10 years",
		Citation:         "SCORE2 working group, Eur Heart J 2021;42:2439-2454",
		DefaultPieSlices: []plugin.Slice{
			{Name: "Age", Weight: 25, MaxValue: 5},
			{Name: "Systolic Blood Pressure", Weight: 20, MaxValue: 3},
			{Name: "Cholesterol", Weight: 20, MaxValue: 3},
			{Name: "Smoking", Weight: 15, MaxValue: 1},
			{Name: "Diabetes", Weight: 20, MaxValue: 1},
		},
	}
}

// Calculate evaluates the recalibrated SCORE2 linear predictor for the
// record.
func (p *SCORE2Plugin) Calculate(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	v := engine.NewValidator("SCORE2")
	if err := v.RequireSex(rec.Sex); err != nil {
		return nil, err
	}
	scales, ok := score2RegionScales[rec.Sex][p.Region]
	if !ok {
		return nil, engine.NewInvalidInputError("region", "must be low, moderate, high or very-high")
	}
	smoking := 0.0
	if v.OptionalBool("smoker", rec.Smoker) {
		smoking = 1
	}
	diabetes := 0.0
	if v.OptionalBool("diabetic", rec.Diabetic) {
		diabetes = 1
	}

	c := score2Male
	if rec.Sex == engine.SexFemale {
		c = score2Female
	}
	pie := p.Config().NewPie("")

	// A missing continuous predictor scores at its centering value, so
	// its terms contribute nothing to the linear predictor.
	cage, csbp, ctchol, chdl := 0.0, 0.0, 0.0, 0.0
	if age, ok := v.OptionalNumber("age", rec.Age); ok {
		v.CheckRange("age", age, score2ValidatedAge)
		cage = (age - 60) / 5
		pie.UpdateSliceValue("Age", score2AgeBins.Index(age))
	}
	if sbp, ok := v.OptionalNumber("systolicBp", rec.SystolicBP); ok {
		csbp = (sbp - 120) / 20
		pie.UpdateSliceValue("Systolic Blood Pressure", score2SBPBins.Index(sbp))
	}
	if tchol, ok := v.OptionalNumber("totalCholesterol", rec.TotalCholesterol); ok {
		tchol = engine.CholesterolMmolL(tchol, rec.CholesterolUnit)
		ctchol = tchol - 6
		pie.UpdateSliceValue("Cholesterol", score2CholBins.Index(tchol))
	}
	if hdl, ok := v.OptionalNumber("hdlCholesterol", rec.HDLCholesterol); ok {
		hdl = engine.CholesterolMmolL(hdl, rec.CholesterolUnit)
		chdl = (hdl - 1.3) / 0.5
	}
	pie.UpdateSliceValue("Smoking", int(smoking))
	pie.UpdateSliceValue("Diabetes", int(diabetes))

	lp := c.Age*cage + c.Smoking*smoking + c.SBP*csbp + c.Diabetes*diabetes +
		c.TotalChol*ctchol + c.HDL*chdl +
		c.SmokingAge*smoking*cage + c.SBPAge*csbp*cage +
		c.TotalCholAge*ctchol*cage + c.HDLAge*chdl*cage + c.DiabetesAge*diabetes*cage

	uncalibrated := 1 - math.Pow(c.BaselineSurvival, math.Exp(lp))
	risk := engine.RoundRisk(engine.CalibrateRisk(uncalibrated, scales.Scale1, scales.Scale2) * 100)

	return &plugin.RiskEstimate{
		AsOf:               time.Now(),
		ProbabilityDecimal: &risk,
		Warnings:           v.Warnings(),
		Pie:                pie,
	}, nil
}

// SCORE2 evaluates the SCORE2 regression model for a single record.
func SCORE2(rec *engine.PatientRecord, region engine.RiskRegion) (*plugin.RiskEstimate, error) {
	return NewSCORE2Plugin(region).Calculate(rec)
}
