package assessments

import (
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// INVEST point assignments.
var (
	investAgeBins   = engine.Bins{Cuts: []float64{60, 70, 80}, LowerInclusive: true}
	investAgePoints = []int{0, 1, 2, 3}
)

const (
	investPriorMIPoints      = 1
	investPriorStrokePoints  = 2
	investHeartFailurePoints = 2
	investDiabetesPoints     = 1
	investRenalPoints        = 2
	investSmokerPoints       = 1
	investPADPoints          = 1
)

// investRisk maps the point total to the risk of the trial's adverse
// outcome (all-cause death, myocardial infarction or stroke).
var investRisk = engine.PointsTable{
	Name: "INVEST",
	Min:  0,
	Max:  13,
	Risk: map[int]float64{
		0: 1.4, 1: 2.0, 2: 2.9, 3: 4.1, 4: 5.8, 5: 8.1, 6: 11.2,
		7: 15.2, 8: 20.1, 9: 25.7, 10: 31.6, 11: 37.8, 12: 44.1, 13: 50.2,
	},
}

// INVESTPlugin scores adverse outcome risk for hypertensive coronary
// artery disease patients with the INVEST point score.
type INVESTPlugin struct{}

// NewINVESTPlugin returns a new INVESTPlugin.
func NewINVESTPlugin() *INVESTPlugin {
	return &INVESTPlugin{}
}

// Config provides the configuration parameters for the INVESTPlugin.
func (p *INVESTPlugin) Config() plugin.RiskScorerPluginConfig {
	return plugin.RiskScorerPluginConfig{
		Name:             "invest",
		Method:           "INVEST adverse outcome score",
		PredictedOutcome: "All-cause death, myocardial infarction or stroke",
		Horizon:          "Trial follow-up (mean 2.7 years)",
		Citation:         "INVEST investigators, JAMA 2003;290:2805-2816",
		DefaultPieSlices: []plugin.Slice{
			{Name: "Age", Weight: 3, MaxValue: 3},
			{Name: "Prior MI", Weight: 1, MaxValue: 1},
			{Name: "Prior Stroke", Weight: 2, MaxValue: 2},
			{Name: "Heart Failure", Weight: 2, MaxValue: 2},
			{Name: "Diabetes", Weight: 1, MaxValue: 1},
			{Name: "Renal Impairment", Weight: 2, MaxValue: 2},
			{Name: "Smoking", Weight: 1, MaxValue: 1},
			{Name: "Peripheral Artery Disease", Weight: 1, MaxValue: 1},
		},
	}
}

// Calculate sums the point contributions and looks the total up in the
// outcome table.
func (p *INVESTPlugin) Calculate(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	v := engine.NewValidator("INVEST")
	if err := v.RequireSex(rec.Sex); err != nil {
		return nil, err
	}

	agePoints := 0
	if age, ok := v.OptionalNumber("age", rec.Age); ok {
		agePoints = investAgePoints[investAgeBins.Index(age)]
	}
	pie := p.Config().NewPie("")
	pie.UpdateSliceValue("Age", agePoints)

	total := agePoints
	addPoints := func(name string, present bool, points int) {
		if present {
			total += points
			pie.UpdateSliceValue(name, points)
		}
	}
	addPoints("Prior MI", v.OptionalBool("priorMi", rec.PriorMI), investPriorMIPoints)
	addPoints("Prior Stroke", v.OptionalBool("priorStroke", rec.PriorStroke), investPriorStrokePoints)
	addPoints("Heart Failure", v.OptionalBool("heartFailure", rec.HeartFailure), investHeartFailurePoints)
	addPoints("Diabetes", v.OptionalBool("diabetic", rec.Diabetic), investDiabetesPoints)
	addPoints("Renal Impairment", v.OptionalBool("renalImpairment", rec.RenalImpairment), investRenalPoints)
	addPoints("Smoking", v.OptionalBool("smoker", rec.Smoker), investSmokerPoints)
	addPoints("Peripheral Artery Disease", v.OptionalBool("peripheralArteryDisease", rec.PeripheralArteryDisease), investPADPoints)

	risk, err := investRisk.Lookup(total)
	if err != nil {
		return nil, err
	}

	return &plugin.RiskEstimate{
		AsOf:               time.Now(),
		Score:              &total,
		ProbabilityDecimal: &risk,
		Warnings:           v.Warnings(),
		Pie:                pie,
	}, nil
}

// INVEST scores a single record with the INVEST adverse outcome score.
func INVEST(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	return NewINVESTPlugin().Calculate(rec)
}
