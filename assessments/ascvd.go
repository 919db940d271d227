package assessments

import (
	"math"
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// The pooled cohort equations publish a separate coefficient vector per
// sex and ethnicity, with different interaction structures, so each set
// carries its own sum function rather than a shared term list.  Lipids
// are in mg/dL, pressure in mmHg.
type ascvdCoefficientSet struct {
	Sum              func(lnAge, lnTotalChol, lnHDL, lnSBP, smoker, diabetes float64, treated bool) float64
	MeanSum          float64
	BaselineSurvival float64
}

var ascvdWhiteMale = ascvdCoefficientSet{
	Sum: func(la, lt, lh, ls, smoker, diabetes float64, treated bool) float64 {
		sbp := 1.764
		if treated {
			sbp = 1.797
		}
		return 12.344*la + 11.853*lt - 2.664*la*lt - 7.990*lh + 1.769*la*lh +
			sbp*ls + 7.837*smoker - 1.795*la*smoker + 0.658*diabetes
	},
	MeanSum: 61.18, BaselineSurvival: 0.9144,
}

var ascvdAfricanAmericanMale = ascvdCoefficientSet{
	Sum: func(la, lt, lh, ls, smoker, diabetes float64, treated bool) float64 {
		sbp := 1.809
		if treated {
			sbp = 1.916
		}
		return 2.469*la + 0.302*lt - 0.307*lh + sbp*ls + 0.549*smoker + 0.645*diabetes
	},
	MeanSum: 19.54, BaselineSurvival: 0.8954,
}

var ascvdWhiteFemale = ascvdCoefficientSet{
	Sum: func(la, lt, lh, ls, smoker, diabetes float64, treated bool) float64 {
		sbp := 1.957
		if treated {
			sbp = 2.019
		}
		return -29.799*la + 4.884*la*la + 13.540*lt - 3.114*la*lt - 13.578*lh + 3.149*la*lh +
			sbp*ls + 7.574*smoker - 1.665*la*smoker + 0.661*diabetes
	},
	MeanSum: -29.18, BaselineSurvival: 0.9665,
}

var ascvdAfricanAmericanFemale = ascvdCoefficientSet{
	Sum: func(la, lt, lh, ls, smoker, diabetes float64, treated bool) float64 {
		pressure := 27.820*ls - 6.087*la*ls
		if treated {
			pressure = 29.291*ls - 6.432*la*ls
		}
		return 17.114*la + 0.940*lt - 18.920*lh + 4.475*la*lh + pressure +
			0.691*smoker + 0.874*diabetes
	},
	MeanSum: 86.61, BaselineSurvival: 0.9533,
}

// ASCVDPlugin scores 10-year atherosclerotic cardiovascular disease risk
// with the 2013 ACC/AHA pooled cohort equations.  Patients of other
// ethnicities are scored with the white coefficient set, as the published
// tool does.  Output is clamped to the published 1-30% range.
type ASCVDPlugin struct{}

// NewASCVDPlugin returns a new ASCVDPlugin.
func NewASCVDPlugin() *ASCVDPlugin {
	return &ASCVDPlugin{}
}

// Config provides the configuration parameters for the ASCVDPlugin.
func (p *ASCVDPlugin) Config() plugin.RiskScorerPluginConfig {
	return plugin.RiskScorerPluginConfig{
		Name:             "ascvd-acc-aha",
		Method:           "ACC/AHA pooled cohort equations (ASCVD)",
		PredictedOutcome: "Atherosclerotic cardiovascular disease event",
		Horizon:          "10 years",
		Citation:         "Goff et al., Circulation 2014;129:S49-S73",
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

// Calculate evaluates the pooled cohort equations for the record.
func (p *ASCVDPlugin) Calculate(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	v := engine.NewValidator("ASCVD")
	if err := v.RequireSex(rec.Sex); err != nil {
		return nil, err
	}
	set := ascvdWhiteMale
	switch {
	case rec.Sex == engine.SexMale && rec.Ethnicity == engine.EthnicityAfricanAmerican:
		set = ascvdAfricanAmericanMale
	case rec.Sex == engine.SexFemale && rec.Ethnicity == engine.EthnicityAfricanAmerican:
		set = ascvdAfricanAmericanFemale
	case rec.Sex == engine.SexFemale:
		set = ascvdWhiteFemale
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

	pie := p.Config().NewPie("")

	// A missing continuous predictor enters as a zero log term, so every
	// coefficient touching it drops out of the sum.
	lnAge, lnTotalChol, lnHDL, lnSBP := 0.0, 0.0, 0.0, 0.0
	if age, ok := v.OptionalNumber("age", rec.Age); ok {
		v.CheckRange("age", age, engine.Range{Min: 40, Max: 79})
		lnAge = math.Log(age)
		pie.UpdateSliceValue("Age", framinghamAgeBins.Index(age))
	}
	if tchol, ok := v.OptionalNumber("totalCholesterol", rec.TotalCholesterol); ok {
		tchol = engine.CholesterolMgDl(tchol, rec.CholesterolUnit)
		lnTotalChol = math.Log(tchol)
		pie.UpdateSliceValue("Cholesterol", framinghamCholBins.Index(tchol))
	}
	if hdl, ok := v.OptionalNumber("hdlCholesterol", rec.HDLCholesterol); ok {
		hdl = engine.CholesterolMgDl(hdl, rec.CholesterolUnit)
		lnHDL = math.Log(hdl)
		pie.UpdateSliceValue("HDL Cholesterol", framinghamHDLBins.Index(hdl))
	}
	if sbp, ok := v.OptionalNumber("systolicBp", rec.SystolicBP); ok {
		lnSBP = math.Log(sbp)
		pie.UpdateSliceValue("Systolic Blood Pressure", framinghamSBPBins.Index(sbp))
	}
	pie.UpdateSliceValue("Smoking", int(smoker))
	pie.UpdateSliceValue("Diabetes", int(diabetes))

	sum := set.Sum(lnAge, lnTotalChol, lnHDL, lnSBP, smoker, diabetes, treated)
	risk := engine.BaselineSurvivalRisk(sum, set.MeanSum, set.BaselineSurvival)
	risk = engine.RoundRisk(engine.ClampRisk(risk, 1, 30))

	return &plugin.RiskEstimate{
		AsOf:               time.Now(),
		ProbabilityDecimal: &risk,
		Warnings:           v.Warnings(),
		Pie:                pie,
	}, nil
}

// ASCVDAccAha scores a single record with the ACC/AHA pooled cohort
// equations.
func ASCVDAccAha(rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	return NewASCVDPlugin().Calculate(rec)
}
