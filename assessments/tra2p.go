package assessments

import (
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// tra2pRisk maps the indicator count to 3-year risk of cardiovascular
// death, myocardial infarction or ischemic stroke.
var tra2pRisk = engine.PointsTable{
	Name: "TRA2P",
	Min:  0,
	Max:  9,
	Risk: map[int]float64{
		0: 4.2, 1: 6.8, 2: 9.3, 3: 12.6, 4: 16.8,
		5: 21.9, 6: 27.9, 7: 33.7, 8: 38.9, 9: 42.0,
	},
}

// TRA2PPlugin scores 3-year atherothrombotic risk in secondary prevention
// with the TRA2P-TIMI 50 risk indicators, one point each.  A missing
// indicator counts as absent and is reported as a missing-value fallback.
type TRA2PPlugin struct{}

// NewTRA2PPlugin returns a new TRA2PPlugin.
func NewTRA2PPlugin() *TRA2PPlugin {
	return &TRA2PPlugin{}
}

// Config provides the configuration parameters for the TRA2PPlugin.
func (p *TRA2PPlugin) Config() plugin.RiskScorerPluginConfig {
	return plugin.RiskScorerPluginConfig{
		Name:             "tra2p",
		Method:           "TRA2P-TIMI 50 risk indicators for secondary prevention",
		PredictedOutcome: "Cardiovascular death, myocardial infarction or ischemic stroke",
		Horizon:          "3 years",
		Citation:         "Bohula et al., Circulation 2016;134:304-313",
		DefaultPieSlices: []plugin.Slice{
			{Name: "Heart Failure", Weight: 11, MaxValue: 1},
			{Name: "Hypertension", Weight: 11, MaxValue: 1},
			{Name: "Age 75 Or Older", Weight: 11, MaxValue: 1},
			{Name: "Diabetes", Weight: 11, MaxValue: 1},
			{Name: "Prior Stroke", Weight: 11, MaxValue: 1},
			{Name: "Prior CABG", Weight: 11, MaxValue: 1},
			{Name: "Peripheral Artery Disease", Weight: 11, MaxValue: 1},
			{Name: "Renal Impairment", Weight: 11, MaxValue: 1},
			{Name: "Smoking", Weight: 11, MaxValue: 1},
		},
	}
}

// Calculate counts the present indicators and looks the count up in the
// published table.
func (p *TRA2PPlugin) Calculate(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	v := engine.NewValidator("TRA2P")
	if err := v.RequireSex(rec.Sex); err != nil {
		return nil, err
	}

	pie := p.Config().NewPie("")

	total := 0
	addIndicator := func(name string, present bool) {
		if present {
			total++
			pie.UpdateSliceValue(name, 1)
		}
	}
	addIndicator("Heart Failure", v.OptionalBool("heartFailure", rec.HeartFailure))
	addIndicator("Hypertension", v.OptionalBool("hypertension", rec.Hypertension))
	if age, ok := v.OptionalNumber("age", rec.Age); ok {
		addIndicator("Age 75 Or Older", age >= 75)
	}
	addIndicator("Diabetes", v.OptionalBool("diabetic", rec.Diabetic))
	addIndicator("Prior Stroke", v.OptionalBool("priorStroke", rec.PriorStroke))
	addIndicator("Prior CABG", v.OptionalBool("priorCabg", rec.PriorCABG))
	addIndicator("Peripheral Artery Disease", v.OptionalBool("peripheralArteryDisease", rec.PeripheralArteryDisease))
	addIndicator("Renal Impairment", v.OptionalBool("renalImpairment", rec.RenalImpairment))
	addIndicator("Smoking", v.OptionalBool("smoker", rec.Smoker))

	risk, err := tra2pRisk.Lookup(total)
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

// TRA2P scores a single record with the TRA2P-TIMI 50 indicators.
func TRA2P(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	return NewTRA2PPlugin().Calculate(rec)
}
