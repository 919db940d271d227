package assessments

import (
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// REACHOutcome selects which REACH outcome table the point total is
// looked up in.
type REACHOutcome string

const (
	// REACHNextCVEvent predicts the next cardiovascular event
	// (cardiovascular death, myocardial infarction or stroke).
	REACHNextCVEvent REACHOutcome = "next-cv-event"
	// REACHCVDeath predicts cardiovascular death alone.
	REACHCVDeath REACHOutcome = "cv-death"
)

// REACH point assignments.  Missing fields contribute zero points and are
// reported as missing-value fallbacks; this understates risk but is the
// score's documented behavior.
var (
	reachAgeBins   = engine.Bins{Cuts: []float64{65, 75}, LowerInclusive: true}
	reachAgePoints = []int{0, 2, 3}
)

const (
	reachMalePoints           = 1
	reachSmokerPoints         = 2
	reachDiabetesPoints       = 2
	reachLowBMIPoints         = 2
	reachAFibPoints           = 2
	reachHeartFailurePoints   = 3
	reachPointsPerVascularBed = 2
	reachRecentEventPoints    = 2
	reachNoStatinPoints       = 1
	reachNoAspirinPoints      = 1
	reachEEMEPoints           = 2
)

// reachNextEventRisk maps the point total to 20-month risk of a next
// cardiovascular event.
var reachNextEventRisk = engine.PointsTable{
	Name: "REACH next CV event",
	Min:  0,
	Max:  20,
	Risk: map[int]float64{
		0: 2.9, 1: 3.6, 2: 4.5, 3: 5.5, 4: 6.8, 5: 8.4, 6: 10.4, 7: 13.0,
		8: 15.5, 9: 18.0, 10: 20.6, 11: 23.3, 12: 26.0, 13: 28.7, 14: 31.4,
		15: 34.0, 16: 36.5, 17: 38.9, 18: 41.2, 19: 43.4, 20: 45.5,
	},
}

// reachCVDeathRisk maps the point total to 20-month risk of
// cardiovascular death.
var reachCVDeathRisk = engine.PointsTable{
	Name: "REACH CV death",
	Min:  0,
	Max:  20,
	Risk: map[int]float64{
		0: 0.8, 1: 1.0, 2: 1.3, 3: 1.7, 4: 2.2, 5: 2.8, 6: 3.6, 7: 4.6,
		8: 5.9, 9: 7.5, 10: 9.5, 11: 11.9, 12: 14.7, 13: 17.9, 14: 21.4,
		15: 25.2, 16: 29.1, 17: 33.0, 18: 36.9, 19: 40.6, 20: 44.1,
	},
}

// REACHPlugin scores 20-month recurrent event risk for patients with
// established atherothrombotic disease, from the REACH registry models.
type REACHPlugin struct {
	Outcome REACHOutcome
}

// NewREACHPlugin returns a REACH scorer for the given outcome.
func NewREACHPlugin(outcome REACHOutcome) *REACHPlugin {
	return &REACHPlugin{Outcome: outcome}
}

// Config provides the configuration parameters for the REACHPlugin.
func (p *REACHPlugin) Config() plugin.RiskScorerPluginConfig {
	return plugin.RiskScorerPluginConfig{
		Name:             "reach",
		Method:           "REACH registry recurrent event score (" + string(p.Outcome) + ")",
		PredictedOutcome: "Recurrent cardiovascular event",
		Horizon:          "20 months",
		Citation:         "Wilson et al., Am J Med 2012;125:695-703",
		DefaultPieSlices: []plugin.Slice{
			{Name: "Age", Weight: 3, MaxValue: 3},
			{Name: "Sex", Weight: 1, MaxValue: 1},
			{Name: "Smoking", Weight: 2, MaxValue: 2},
			{Name: "Diabetes", Weight: 2, MaxValue: 2},
			{Name: "Low BMI", Weight: 2, MaxValue: 2},
			{Name: "Atrial Fibrillation", Weight: 2, MaxValue: 2},
			{Name: "Heart Failure", Weight: 3, MaxValue: 3},
			{Name: "Vascular Beds", Weight: 6, MaxValue: 6},
			{Name: "Event In Past Year", Weight: 2, MaxValue: 2},
			{Name: "No Statin", Weight: 1, MaxValue: 1},
			{Name: "No Aspirin", Weight: 1, MaxValue: 1},
			{Name: "Region", Weight: 2, MaxValue: 2},
		},
	}
}

// Calculate sums the indicator points and looks the total up in the
// outcome's risk table.
func (p *REACHPlugin) Calculate(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	table := reachNextEventRisk
	switch p.Outcome {
	case REACHNextCVEvent:
	case REACHCVDeath:
		table = reachCVDeathRisk
	default:
		return nil, engine.NewInvalidInputError("outcome", "must be next-cv-event or cv-death")
	}
	v := engine.NewValidator("REACH")
	if err := v.RequireSex(rec.Sex); err != nil {
		return nil, err
	}

	agePoints := 0
	if age, ok := v.OptionalNumber("age", rec.Age); ok {
		agePoints = reachAgePoints[reachAgeBins.Index(age)]
	}
	sexPoints := 0
	if rec.Sex == engine.SexMale {
		sexPoints = reachMalePoints
	}
	smokerPoints := 0
	if v.OptionalBool("smoker", rec.Smoker) {
		smokerPoints = reachSmokerPoints
	}
	diabetesPoints := 0
	if v.OptionalBool("diabetic", rec.Diabetic) {
		diabetesPoints = reachDiabetesPoints
	}
	bmiPoints := 0
	if bmi, ok := v.OptionalNumber("bmi", rec.BMI); ok && bmi < 20 {
		bmiPoints = reachLowBMIPoints
	}
	afibPoints := 0
	if v.OptionalBool("atrialFibrillation", rec.AtrialFibrillation) {
		afibPoints = reachAFibPoints
	}
	chfPoints := 0
	if v.OptionalBool("heartFailure", rec.HeartFailure) {
		chfPoints = reachHeartFailurePoints
	}
	beds := engine.ClampIndex(v.OptionalInt("vascularBeds", rec.VascularBeds), 0, 3)
	bedPoints := beds * reachPointsPerVascularBed
	recentPoints := 0
	if v.OptionalBool("cvEventInPastYear", rec.CVEventInPastYear) {
		recentPoints = reachRecentEventPoints
	}
	statinPoints := 0
	if !v.OptionalBool("onStatin", rec.OnStatin) {
		statinPoints = reachNoStatinPoints
	}
	aspirinPoints := 0
	if !v.OptionalBool("onAspirin", rec.OnAspirin) {
		aspirinPoints = reachNoAspirinPoints
	}
	regionPoints := 0
	if v.OptionalBool("easternEuropeOrMiddleEast", rec.EasternEuropeOrMiddleEast) {
		regionPoints = reachEEMEPoints
	}

	total := agePoints + sexPoints + smokerPoints + diabetesPoints + bmiPoints +
		afibPoints + chfPoints + bedPoints + recentPoints + statinPoints +
		aspirinPoints + regionPoints

	risk, err := table.Lookup(total)
	if err != nil {
		return nil, err
	}

	pie := p.Config().NewPie("")
	pie.UpdateSliceValue("Age", agePoints)
	pie.UpdateSliceValue("Sex", sexPoints)
	pie.UpdateSliceValue("Smoking", smokerPoints)
	pie.UpdateSliceValue("Diabetes", diabetesPoints)
	pie.UpdateSliceValue("Low BMI", bmiPoints)
	pie.UpdateSliceValue("Atrial Fibrillation", afibPoints)
	pie.UpdateSliceValue("Heart Failure", chfPoints)
	pie.UpdateSliceValue("Vascular Beds", bedPoints)
	pie.UpdateSliceValue("Event In Past Year", recentPoints)
	pie.UpdateSliceValue("No Statin", statinPoints)
	pie.UpdateSliceValue("No Aspirin", aspirinPoints)
	pie.UpdateSliceValue("Region", regionPoints)

	return &plugin.RiskEstimate{
		AsOf:               time.Now(),
		Score:              &total,
		ProbabilityDecimal: &risk,
		Warnings:           v.Warnings(),
		Pie:                pie,
	}, nil
}

// REACH scores a single record with the REACH recurrent event model for
// the given outcome.
func REACH(rec *engine.PatientRecord, outcome REACHOutcome) (*plugin.RiskEstimate, error) {
	return NewREACHPlugin(outcome).Calculate(rec)
}
