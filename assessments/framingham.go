package assessments

import (
	"math"
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// framinghamCoefficients holds one sex's general cardiovascular disease
// model.  Continuous predictors enter as natural logarithms; systolic
// pressure has separate coefficients for treated and untreated
// hypertension.  Lipids and pressure are in mg/dL and mmHg.
type framinghamCoefficients struct {
	LnAge, LnTotalChol, LnHDL    float64
	LnSBPUntreated, LnSBPTreated float64
	Smoker, Diabetes             float64
	BaselineSurvival, MeanSum    float64
}

var framinghamFemale = framinghamCoefficients{
	LnAge: 2.32888, LnTotalChol: 1.20904, LnHDL: -0.70833,
	LnSBPUntreated: 2.76157, LnSBPTreated: 2.82263,
	Smoker: 0.52873, Diabetes: 0.69154,
	BaselineSurvival: 0.95012, MeanSum: 26.1931,
}

var framinghamMale = framinghamCoefficients{
	LnAge: 3.06117, LnTotalChol: 1.12370, LnHDL: -0.93263,
	LnSBPUntreated: 1.93303, LnSBPTreated: 1.99881,
	Smoker: 0.65451, Diabetes: 0.57367,
	BaselineSurvival: 0.88936, MeanSum: 23.9802,
}

// Heart age compares the patient's weighted sum against a person of the
// same sex with normal risk factors: total cholesterol 180 mg/dL, HDL 45
// mg/dL, untreated systolic pressure 125 mmHg, non-smoker, non-diabetic.
const (
	heartAgeNormalTotalChol = 180.0
	heartAgeNormalHDL       = 45.0
	heartAgeNormalSBP       = 125.0
)

// FraminghamPlugin scores 10-year general cardiovascular disease risk
// with the Framingham risk functions, and derives the patient's heart
// (vascular) age from the same model.
type FraminghamPlugin struct{}

// NewFraminghamPlugin returns a new FraminghamPlugin.
func NewFraminghamPlugin() *FraminghamPlugin {
	return &FraminghamPlugin{}
}

// Config provides the configuration parameters for the FraminghamPlugin.
func (p *FraminghamPlugin) Config() plugin.RiskScorerPluginConfig {
	return plugin.RiskScorerPluginConfig{
		Name:             "framingham-cvd",
		Method:           "Framingham general cardiovascular disease risk profile",
		PredictedOutcome: "Cardiovascular disease event",
		Horizon:          "10 years",
		Citation:         "D'Agostino et al., Circulation 2008;117:743-753",
		DefaultPieSlices: []plugin.Slice{
			{Name: "Age", Weight: 25, MaxValue: 5},
			{Name: "Cholesterol", Weight: 15, MaxValue: 3},
			{Name: "HDL Cholesterol", Weight: 10, MaxValue: 3},
			{Name: "Systolic Blood Pressure", Weight: 20, MaxValue: 3},
			{Name: "Smoking", Weight: 15, MaxValue: 1},
			{Name: "Diabetes", Weight: 15, MaxValue: 1},
		},
	}
}

var (
	framinghamAgeBins  = engine.Bins{Cuts: []float64{40, 50, 60, 70, 80}, LowerInclusive: true}
	framinghamCholBins = engine.Bins{Cuts: []float64{160, 200, 240}, LowerInclusive: true}
	framinghamHDLBins  = engine.Bins{Cuts: []float64{35, 45, 55}, LowerInclusive: true}
	framinghamSBPBins  = engine.Bins{Cuts: []float64{120, 140, 160}, LowerInclusive: true}
)

// Calculate evaluates the sex-specific Cox model for the record.
func (p *FraminghamPlugin) Calculate(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	v := engine.NewValidator("Framingham")
	if err := v.RequireSex(rec.Sex); err != nil {
		return nil, err
	}
	treated := v.OptionalBool("treatedForBp", rec.TreatedForBP)
	smoker := 0.0
	if v.OptionalBool("smoker", rec.Smoker) {
		smoker = 1
	}
	diabetes := 0.0
	if v.OptionalBool("diabetic", rec.Diabetic) {
		diabetes = 1
	}

	c := framinghamMale
	if rec.Sex == engine.SexFemale {
		c = framinghamFemale
	}
	sbpCoefficient := c.LnSBPUntreated
	if treated {
		sbpCoefficient = c.LnSBPTreated
	}
	pie := p.Config().NewPie("")

	// A missing continuous predictor contributes nothing to the weighted
	// sum.  The matching normal-profile term is dropped with it so the
	// heart age inversion stays comparable.
	sum := c.Smoker*smoker + c.Diabetes*diabetes
	normal := 0.0
	age, hasAge := v.OptionalNumber("age", rec.Age)
	if hasAge {
		v.CheckRange("age", age, engine.Range{Min: 30, Max: 74})
		sum += c.LnAge * math.Log(age)
		pie.UpdateSliceValue("Age", framinghamAgeBins.Index(age))
	}
	if tchol, ok := v.OptionalNumber("totalCholesterol", rec.TotalCholesterol); ok {
		tchol = engine.CholesterolMgDl(tchol, rec.CholesterolUnit)
		sum += c.LnTotalChol * math.Log(tchol)
		normal += c.LnTotalChol * math.Log(heartAgeNormalTotalChol)
		pie.UpdateSliceValue("Cholesterol", framinghamCholBins.Index(tchol))
	}
	if hdl, ok := v.OptionalNumber("hdlCholesterol", rec.HDLCholesterol); ok {
		hdl = engine.CholesterolMgDl(hdl, rec.CholesterolUnit)
		sum += c.LnHDL * math.Log(hdl)
		normal += c.LnHDL * math.Log(heartAgeNormalHDL)
		pie.UpdateSliceValue("HDL Cholesterol", framinghamHDLBins.Index(hdl))
	}
	if sbp, ok := v.OptionalNumber("systolicBp", rec.SystolicBP); ok {
		sum += sbpCoefficient * math.Log(sbp)
		normal += c.LnSBPUntreated * math.Log(heartAgeNormalSBP)
		pie.UpdateSliceValue("Systolic Blood Pressure", framinghamSBPBins.Index(sbp))
	}
	pie.UpdateSliceValue("Smoking", int(smoker))
	pie.UpdateSliceValue("Diabetes", int(diabetes))

	risk := engine.RoundRisk(engine.BaselineSurvivalRisk(sum, c.MeanSum, c.BaselineSurvival))

	estimate := &plugin.RiskEstimate{
		AsOf:               time.Now(),
		ProbabilityDecimal: &risk,
		Warnings:           v.Warnings(),
		Pie:                pie,
	}
	if hasAge {
		// Invert the model for the age at which a person with normal risk
		// factors has the same weighted sum.
		heartAge := math.Exp((sum - normal) / c.LnAge)
		heartAge = math.Round(math.Min(math.Max(heartAge, 30), 100))
		estimate.HeartAge = &heartAge
	}
	return estimate, nil
}

// FraminghamCVD scores a single record with the Framingham general
// cardiovascular disease risk profile.
func FraminghamCVD(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	return NewFraminghamPlugin().Calculate(rec)
}
