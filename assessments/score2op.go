package assessments

import (
	"math"
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// score2OPCoefficients holds the SCORE2-OP model for persons aged 70 and
// over.  Age is centered at 73, systolic pressure at 150, total
// cholesterol at 6 mmol/L and HDL at 1.4 mmol/L; MeanLP centers the
// linear predictor at the derivation population mean.
type score2OPCoefficients struct {
	Age, Diabetes, Smoking, SBP, TotalChol, HDL           float64
	DiabetesAge, SmokingAge, SBPAge, TotalCholAge, HDLAge float64
	BaselineSurvival, MeanLP                              float64
}

var score2OPMale = score2OPCoefficients{
	Age: 0.0634, Diabetes: 0.4245, Smoking: 0.3524, SBP: 0.0094,
	TotalChol: 0.0850, HDL: -0.3564,
	DiabetesAge: -0.0174, SmokingAge: -0.0247, SBPAge: -0.0005,
	TotalCholAge: 0.0073, HDLAge: 0.0091,
	BaselineSurvival: 0.7576, MeanLP: 0.0929,
}

var score2OPFemale = score2OPCoefficients{
	Age: 0.0789, Diabetes: 0.6010, Smoking: 0.4921, SBP: 0.0102,
	TotalChol: 0.0605, HDL: -0.3040,
	DiabetesAge: -0.0107, SmokingAge: -0.0255, SBPAge: -0.0004,
	TotalCholAge: -0.0009, HDLAge: 0.0154,
	BaselineSurvival: 0.8082, MeanLP: 0.229,
}

var score2OPRegionScales = map[engine.Sex]map[engine.RiskRegion]score2Scales{
	engine.SexMale: {
		engine.RegionLow:      {-0.34, 1.19},
		engine.RegionModerate: {0.01, 1.25},
		engine.RegionHigh:     {0.08, 1.15},
		engine.RegionVeryHigh: {0.05, 0.70},
	},
	engine.SexFemale: {
		engine.RegionLow:      {-0.52, 1.01},
		engine.RegionModerate: {-0.10, 1.10},
		engine.RegionHigh:     {0.38, 1.10},
		engine.RegionVeryHigh: {0.38, 0.69},
	},
}

// SCORE2OPPlugin scores 10-year cardiovascular event risk in older
// persons (70+) with the SCORE2-OP model.
type SCORE2OPPlugin struct {
	Region engine.RiskRegion
}

// NewSCORE2OPPlugin returns a SCORE2-OP scorer for the given risk region.
func NewSCORE2OPPlugin(region engine.RiskRegion) *SCORE2OPPlugin {
	return &SCORE2OPPlugin{Region: region}
}

// Config provides the configuration parameters for the SCORE2-OP scorer.
func (p *SCORE2OPPlugin) Config() plugin.RiskScorerPluginConfig {
	return plugin.RiskScorerPluginConfig{
		Name:             "score2-op",
		Method:           "SCORE2-OP regression model (" + string(p.Region) + " risk region)",
		PredictedOutcome: "Fatal and non-fatal cardiovascular events",
		Horizon:          "10 years",
		Citation:         "SCORE2-OP working group, Eur Heart J 2021;42:2455-2467",
		DefaultPieSlices: []plugin.Slice{
			{Name: "Age", Weight: 25, MaxValue: 4},
			{Name: "Systolic Blood Pressure", Weight: 20, MaxValue: 3},
			{Name: "Cholesterol", Weight: 20, MaxValue: 3},
			{Name: "Smoking", Weight: 15, MaxValue: 1},
			{Name: "Diabetes", Weight: 20, MaxValue: 1},
		},
	}
}

var score2OPAgeBins = engine.Bins{Cuts: []float64{75, 80, 85}, LowerInclusive: true}

// Calculate evaluates the recalibrated SCORE2-OP linear predictor.
func (p *SCORE2OPPlugin) Calculate(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	v := engine.NewValidator("SCORE2-OP")
	if err := v.RequireSex(rec.Sex); err != nil {
		return nil, err
	}
	scales, ok := score2OPRegionScales[rec.Sex][p.Region]
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

	c := score2OPMale
	if rec.Sex == engine.SexFemale {
		c = score2OPFemale
	}
	pie := p.Config().NewPie("")

	// A missing continuous predictor scores at its centering value, so
	// its terms contribute nothing to the linear predictor.
	cage, csbp, ctchol, chdl := 0.0, 0.0, 0.0, 0.0
	if age, ok := v.OptionalNumber("age", rec.Age); ok {
		v.CheckRange("age", age, engine.Range{Min: 70, Max: 89})
		cage = age - 73
		pie.UpdateSliceValue("Age", score2OPAgeBins.Index(age))
	}
	if sbp, ok := v.OptionalNumber("systolicBp", rec.SystolicBP); ok {
		csbp = sbp - 150
		pie.UpdateSliceValue("Systolic Blood Pressure", score2SBPBins.Index(sbp))
	}
	if tchol, ok := v.OptionalNumber("totalCholesterol", rec.TotalCholesterol); ok {
		tchol = engine.CholesterolMmolL(tchol, rec.CholesterolUnit)
		ctchol = tchol - 6
		pie.UpdateSliceValue("Cholesterol", score2CholBins.Index(tchol))
	}
	if hdl, ok := v.OptionalNumber("hdlCholesterol", rec.HDLCholesterol); ok {
		hdl = engine.CholesterolMmolL(hdl, rec.CholesterolUnit)
		chdl = hdl - 1.4
	}
	pie.UpdateSliceValue("Smoking", int(smoking))
	pie.UpdateSliceValue("Diabetes", int(diabetes))

	lp := c.Age*cage + c.Diabetes*diabetes + c.Smoking*smoking + c.SBP*csbp +
		c.TotalChol*ctchol + c.HDL*chdl +
		c.DiabetesAge*diabetes*cage + c.SmokingAge*smoking*cage +
		c.SBPAge*csbp*cage + c.TotalCholAge*ctchol*cage + c.HDLAge*chdl*cage

	uncalibrated := 1 - math.Pow(c.BaselineSurvival, math.Exp(lp-c.MeanLP))
	risk := engine.RoundRisk(engine.CalibrateRisk(uncalibrated, scales.Scale1, scales.Scale2) * 100)

	return &plugin.RiskEstimate{
		AsOf:               time.Now(),
		ProbabilityDecimal: &risk,
		Warnings:           v.Warnings(),
		Pie:                pie,
	}, nil
}

// SCORE2OP evaluates the SCORE2-OP model for a single record.
func SCORE2OP(rec *engine.PatientRecord, region engine.RiskRegion) (*plugin.RiskEstimate, error) {
	return NewSCORE2OPPlugin(region).Calculate(rec)
}
