package assessments

import (
	"github.com/intervention-engine/cvriskservice/engine"
	. "gopkg.in/check.v1"
)

type SCORE2016Suite struct{}

var _ = Suite(&SCORE2016Suite{})

func (s *SCORE2016Suite) TestHighRegionMaleSmoker(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Age:              engine.Float(55),
		SystolicBP:       engine.Float(160),
		TotalCholesterol: engine.Float(6.0),
		Smoker:           engine.Bool(true),
	}
	estimate, err := SCORE2016(rec, engine.RegionHigh)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 11.6)
	c.Assert(estimate.Warnings, HasLen, 0)
}

func (s *SCORE2016Suite) TestLowRegionFemaleNonSmoker(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexFemale,
		Age:              engine.Float(60),
		SystolicBP:       engine.Float(140),
		TotalCholesterol: engine.Float(5.0),
		Smoker:           engine.Bool(false),
	}
	estimate, err := SCORE2016(rec, engine.RegionLow)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 1.3)
}

func (s *SCORE2016Suite) TestExtremeValuesSnapToTopCells(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Age:              engine.Float(68),
		SystolicBP:       engine.Float(185),
		TotalCholesterol: engine.Float(8.2),
		Smoker:           engine.Bool(true),
	}
	estimate, err := SCORE2016(rec, engine.RegionHigh)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 49.1)
	c.Assert(hasWarning(estimate.Warnings, engine.OutOfRangeWarning, "age"), Equals, true)
	c.Assert(hasWarning(estimate.Warnings, engine.OutOfRangeWarning, "systolicBp"), Equals, true)
}

func (s *SCORE2016Suite) TestYoungLowRiskMale(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Age:              engine.Float(40),
		SystolicBP:       engine.Float(120),
		TotalCholesterol: engine.Float(4.0),
		Smoker:           engine.Bool(false),
	}
	estimate, err := SCORE2016(rec, engine.RegionLow)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 0.2)
}

func (s *SCORE2016Suite) TestPressureBandsAreUpperInclusive(c *C) {
	// 130 mmHg stays in the 120 column, 131 moves to the 140 column.
	atCut := &engine.PatientRecord{
		Sex:              engine.SexFemale,
		Age:              engine.Float(60),
		SystolicBP:       engine.Float(130),
		TotalCholesterol: engine.Float(5.0),
		Smoker:           engine.Bool(false),
	}
	aboveCut := &engine.PatientRecord{
		Sex:              engine.SexFemale,
		Age:              engine.Float(60),
		SystolicBP:       engine.Float(131),
		TotalCholesterol: engine.Float(5.0),
		Smoker:           engine.Bool(false),
	}
	low, err := SCORE2016(atCut, engine.RegionLow)
	c.Assert(err, IsNil)
	high, err := SCORE2016(aboveCut, engine.RegionLow)
	c.Assert(err, IsNil)
	c.Assert(*low.ProbabilityDecimal, Equals, 0.9)
	c.Assert(*high.ProbabilityDecimal, Equals, 1.3)
}

func (s *SCORE2016Suite) TestRejectsModerateRegion(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Age:              engine.Float(55),
		SystolicBP:       engine.Float(160),
		TotalCholesterol: engine.Float(6.0),
		Smoker:           engine.Bool(true),
	}
	_, err := SCORE2016(rec, engine.RegionModerate)
	c.Assert(engine.IsInvalidInput(err), Equals, true)
}
