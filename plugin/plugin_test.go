package plugin

import (
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
	. "gopkg.in/check.v1"
)

type PluginSuite struct{}

var _ = Suite(&PluginSuite{})

func (s *PluginSuite) TestGetProbabilityDecimalOrScore(c *C) {
	score := 7
	probability := 13.0
	result := RiskEstimate{AsOf: time.Now(), Score: &score, ProbabilityDecimal: &probability}
	c.Assert(*result.GetProbabilityDecimalOrScore(), Equals, 13.0)

	result.ProbabilityDecimal = nil
	c.Assert(*result.GetProbabilityDecimalOrScore(), Equals, 7.0)

	result.Score = nil
	c.Assert(result.GetProbabilityDecimalOrScore(), IsNil)
}

func (s *PluginSuite) TestConfigNewPie(c *C) {
	config := RiskScorerPluginConfig{
		Name: "doubler",
		DefaultPieSlices: []Slice{
			{Name: "Age", Weight: 60, MaxValue: 3},
			{Name: "Smoking", Weight: 40, MaxValue: 1},
		},
	}
	pie := config.NewPie("123")
	c.Assert(pie.Id.Hex(), Not(Equals), "")
	c.Assert(pie.Patient, Equals, "123")
	c.Assert(pie.Slices, DeepEquals, config.DefaultPieSlices)

	// Filling in a value must not leak back into the config's defaults.
	pie.UpdateSliceValue("Age", 2)
	c.Assert(config.DefaultPieSlices[0].Value, Equals, 0)

	other := config.NewPie("123")
	c.Assert(other.Id.Hex(), Not(Equals), pie.Id.Hex())
	c.Assert(other.TotalValues(), Equals, 0)
	c.Assert(pie.TotalValues(), Equals, 2)
}

// doublingScorer scores a record as twice its age, for batch tests.
type doublingScorer struct{}

func (d *doublingScorer) Config() RiskScorerPluginConfig {
	return RiskScorerPluginConfig{Name: "doubler"}
}

func (d *doublingScorer) Calculate(rec *engine.PatientRecord) (*RiskEstimate, error) {
	v := engine.NewValidator("doubler")
	age, err := v.RequireNumber("age", rec.Age)
	if err != nil {
		return nil, err
	}
	risk := age * 2
	return &RiskEstimate{AsOf: time.Now(), ProbabilityDecimal: &risk}, nil
}

func (s *PluginSuite) TestCalculateAllPreservesOrder(c *C) {
	recs := make([]*engine.PatientRecord, 50)
	for i := range recs {
		recs[i] = &engine.PatientRecord{Age: engine.Float(float64(i)), Sex: engine.SexFemale}
	}
	results, err := CalculateAll(&doublingScorer{}, recs)
	c.Assert(err, IsNil)
	c.Assert(results, HasLen, 50)
	for i, r := range results {
		c.Assert(*r.ProbabilityDecimal, Equals, float64(i)*2)
	}
}

func (s *PluginSuite) TestCalculateAllFailsWholeBatchOnInvalidInput(c *C) {
	recs := []*engine.PatientRecord{
		{Age: engine.Float(50), Sex: engine.SexMale},
		{Sex: engine.SexMale}, // missing age
		{Age: engine.Float(60), Sex: engine.SexMale},
	}
	results, err := CalculateAll(&doublingScorer{}, recs)
	c.Assert(err, NotNil)
	c.Assert(engine.IsInvalidInput(err), Equals, true)
	c.Assert(results, IsNil)
}
