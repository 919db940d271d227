package assessments

import (
	"github.com/intervention-engine/cvriskservice/engine"
	. "gopkg.in/check.v1"
)

type SCORE2OPSuite struct{}

var _ = Suite(&SCORE2OPSuite{})

func (s *SCORE2OPSuite) TestModerateRegionMaleSmoker(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Age:              engine.Float(75),
		SystolicBP:       engine.Float(150),
		TotalCholesterol: engine.Float(5.5),
		HDLCholesterol:   engine.Float(1.2),
		Smoker:           engine.Bool(true),
		Diabetic:         engine.Bool(false),
	}
	estimate, err := SCORE2OP(rec, engine.RegionModerate)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 27.2)
	c.Assert(estimate.Warnings, HasLen, 0)
}

func (s *SCORE2OPSuite) TestLowRegionDiabeticFemale(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexFemale,
		Age:              engine.Float(78),
		SystolicBP:       engine.Float(140),
		TotalCholesterol: engine.Float(5.0),
		HDLCholesterol:   engine.Float(1.4),
		Smoker:           engine.Bool(false),
		Diabetic:         engine.Bool(true),
	}
	estimate, err := SCORE2OP(rec, engine.RegionLow)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 20.0)
}

func (s *SCORE2OPSuite) TestHighRegionOlderMale(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Age:              engine.Float(82),
		SystolicBP:       engine.Float(130),
		TotalCholesterol: engine.Float(4.5),
		HDLCholesterol:   engine.Float(1.5),
		Smoker:           engine.Bool(false),
		Diabetic:         engine.Bool(false),
	}
	estimate, err := SCORE2OP(rec, engine.RegionHigh)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 24.9)
}

func (s *SCORE2OPSuite) TestWarnsBelowSeventy(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Age:              engine.Float(65),
		SystolicBP:       engine.Float(150),
		TotalCholesterol: engine.Float(5.5),
		HDLCholesterol:   engine.Float(1.2),
		Smoker:           engine.Bool(false),
		Diabetic:         engine.Bool(false),
	}
	estimate, err := SCORE2OP(rec, engine.RegionModerate)
	c.Assert(err, IsNil)
	c.Assert(hasWarning(estimate.Warnings, engine.OutOfRangeWarning, "age"), Equals, true)
}

func (s *SCORE2OPSuite) TestMissingCholesterolFallsBack(c *C) {
	rec := &engine.PatientRecord{
		Sex:            engine.SexMale,
		Age:            engine.Float(75),
		SystolicBP:     engine.Float(150),
		HDLCholesterol: engine.Float(1.2),
		Smoker:         engine.Bool(true),
		Diabetic:       engine.Bool(false),
	}
	estimate, err := SCORE2OP(rec, engine.RegionModerate)
	c.Assert(err, IsNil)
	// Missing total cholesterol scores at the centering value of 6 mmol/L.
	c.Assert(*estimate.ProbabilityDecimal, Equals, 28.6)
	c.Assert(hasWarning(estimate.Warnings, engine.MissingValueFallback, "totalCholesterol"), Equals, true)
}

func (s *SCORE2OPSuite) TestRejectsMissingSex(c *C) {
	rec := &engine.PatientRecord{
		Age:              engine.Float(75),
		SystolicBP:       engine.Float(150),
		TotalCholesterol: engine.Float(5.5),
		HDLCholesterol:   engine.Float(1.2),
		Smoker:           engine.Bool(false),
	}
	_, err := SCORE2OP(rec, engine.RegionModerate)
	c.Assert(engine.IsInvalidInput(err), Equals, true)
}
