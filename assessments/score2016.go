package assessments

import (
	"math"
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// The 2016 ESC chart presents the 2003 SCORE Weibull model on a fixed
// grid.  For pressure and cholesterol the chart keeps a value equal to a
// cut in the lower band (the top systolic band is ">170"), so those bins
// are upper-inclusive; ages snap to the nearest charted age band.
var (
	scoreAgeBins  = engine.Bins{Cuts: []float64{45, 52.5, 57.5, 62.5}, LowerInclusive: true}
	scoreSBPBins  = engine.Bins{Cuts: []float64{130, 150, 170}, LowerInclusive: false}
	scoreCholBins = engine.Bins{Cuts: []float64{4.5, 5.5, 6.5, 7.5}, LowerInclusive: false}
)

// Grid values each bin is evaluated at.
var (
	scoreAges  = []float64{40, 50, 55, 60, 65}
	scoreSBPs  = []float64{120, 140, 160, 180}
	scoreChols = []float64{4, 5, 6, 7, 8}
)

// scoreWeibull holds one cause-specific Weibull baseline (alpha, p) of the
// 2003 SCORE model.
type scoreWeibull struct{ Alpha, P float64 }

// Coefficients on the cause-specific exponents: smoking, cholesterol
// (per mmol/L above 6) and systolic pressure (per mmHg above 120).
type scoreBetas struct{ Smoker, Chol, SBP float64 }

var (
	scoreCHDBetas    = scoreBetas{Smoker: 0.71, Chol: 0.24, SBP: 0.018}
	scoreNonCHDBetas = scoreBetas{Smoker: 0.63, Chol: 0.02, SBP: 0.022}
)

var scoreBaselines = map[engine.Sex]map[engine.RiskRegion][2]scoreWeibull{
	engine.SexMale: {
		// [0] CHD, [1] non-CHD cardiovascular
		engine.RegionLow:  {{-22.1, 4.71}, {-26.7, 5.64}},
		engine.RegionHigh: {{-21.0, 4.62}, {-25.7, 5.47}},
	},
	engine.SexFemale: {
		engine.RegionLow:  {{-29.8, 6.36}, {-31.0, 6.62}},
		engine.RegionHigh: {{-28.7, 6.23}, {-30.0, 6.42}},
	},
}

// SCOREPlugin scores 10-year fatal cardiovascular risk with the SCORE
// model as charted in the 2016 ESC guidelines (low and high risk region
// charts).  Inputs are binned to the chart grid before the model is
// evaluated, reproducing the chart cells.
type SCOREPlugin struct {
	Region engine.RiskRegion
}

// NewSCOREPlugin returns a SCORE chart scorer for the given risk region.
func NewSCOREPlugin(region engine.RiskRegion) *SCOREPlugin {
	return &SCOREPlugin{Region: region}
}

// Config provides the configuration parameters for the SCORE scorer.
func (p *SCOREPlugin) Config() plugin.RiskScorerPluginConfig {
	return plugin.RiskScorerPluginConfig{
		Name:             "score-2016",
		Method:           "SCORE 10-year fatal CVD chart, 2016 ESC guidelines (" + string(p.Region) + " risk region)",
		PredictedOutcome: "Fatal cardiovascular event",
		Horizon:          "10 years",
		Citation:         "Conroy et al., Eur Heart J 2003;24:987-1003",
		DefaultPieSlices: []plugin.Slice{
			{Name: "Age", Weight: 30, MaxValue: 4},
			{Name: "Systolic Blood Pressure", Weight: 25, MaxValue: 3},
			{Name: "Cholesterol", Weight: 25, MaxValue: 4},
			{Name: "Smoking", Weight: 20, MaxValue: 1},
		},
	}
}

// Calculate bins the record to the chart grid and evaluates the Weibull
// model at the grid point.
func (p *SCOREPlugin) Calculate(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	v := engine.NewValidator("SCORE")
	if err := v.RequireSex(rec.Sex); err != nil {
		return nil, err
	}
	baselines, ok := scoreBaselines[rec.Sex][p.Region]
	if !ok {
		return nil, engine.NewInvalidInputError("region", "must be low or high")
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

	v.CheckRange("age", age, engine.Range{Min: 40, Max: 65})
	v.CheckRange("systolicBp", sbp, engine.Range{Min: 110, Max: 180})
	v.CheckRange("totalCholesterol", chol, engine.Range{Min: 3.5, Max: 8.5})

	smoking := 0.0
	if *rec.Smoker {
		smoking = 1
	}
	ageIdx := scoreAgeBins.Index(age)
	sbpIdx := scoreSBPBins.Index(sbp)
	cholIdx := scoreCholBins.Index(chol)
	gridAge := scoreAges[ageIdx]
	gridSBP := scoreSBPs[sbpIdx]
	gridChol := scoreChols[cholIdx]

	total := 0.0
	for cause, betas := range []scoreBetas{scoreCHDBetas, scoreNonCHDBetas} {
		b := baselines[cause]
		w := betas.Smoker*smoking + betas.Chol*(gridChol-6) + betas.SBP*(gridSBP-120)
		sNow := math.Pow(math.Exp(-math.Exp(b.Alpha)*math.Pow(gridAge-20, b.P)), math.Exp(w))
		sTen := math.Pow(math.Exp(-math.Exp(b.Alpha)*math.Pow(gridAge-10, b.P)), math.Exp(w))
		total += 1 - sTen/sNow
	}
	risk := engine.RoundRisk(total * 100)

	pie := p.Config().NewPie("")
	pie.UpdateSliceValue("Age", ageIdx)
	pie.UpdateSliceValue("Systolic Blood Pressure", sbpIdx)
	pie.UpdateSliceValue("Cholesterol", cholIdx)
	pie.UpdateSliceValue("Smoking", int(smoking))

	return &plugin.RiskEstimate{
		AsOf:               time.Now(),
		ProbabilityDecimal: &risk,
		Warnings:           v.Warnings(),
		Pie:                pie,
	}, nil
}

// SCORE2016 scores a single record against the 2016 ESC SCORE chart.
func SCORE2016(rec *engine.PatientRecord, region engine.RiskRegion) (*plugin.RiskEstimate, error) {
	return NewSCOREPlugin(region).Calculate(rec)
}
