package assessments

import (
	"github.com/intervention-engine/cvriskservice/engine"
	. "gopkg.in/check.v1"
)

type TRA2PSuite struct{}

var _ = Suite(&TRA2PSuite{})

func tra2pTestRecord() *engine.PatientRecord {
	return &engine.PatientRecord{
		Sex:                     engine.SexMale,
		Age:                     engine.Float(60),
		HeartFailure:            engine.Bool(false),
		Hypertension:            engine.Bool(false),
		Diabetic:                engine.Bool(false),
		PriorStroke:             engine.Bool(false),
		PriorCABG:               engine.Bool(false),
		PeripheralArteryDisease: engine.Bool(false),
		RenalImpairment:         engine.Bool(false),
		Smoker:                  engine.Bool(false),
	}
}

func (s *TRA2PSuite) TestNoIndicators(c *C) {
	estimate, err := TRA2P(tra2pTestRecord())
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 0)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 4.2)
	c.Assert(estimate.Warnings, HasLen, 0)
}

func (s *TRA2PSuite) TestAgeAloneScoresOnePoint(c *C) {
	rec := tra2pTestRecord()
	rec.Age = engine.Float(75)
	estimate, err := TRA2P(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 1)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 6.8)
}

func (s *TRA2PSuite) TestAllIndicators(c *C) {
	rec := &engine.PatientRecord{
		Sex:                     engine.SexFemale,
		Age:                     engine.Float(80),
		HeartFailure:            engine.Bool(true),
		Hypertension:            engine.Bool(true),
		Diabetic:                engine.Bool(true),
		PriorStroke:             engine.Bool(true),
		PriorCABG:               engine.Bool(true),
		PeripheralArteryDisease: engine.Bool(true),
		RenalImpairment:         engine.Bool(true),
		Smoker:                  engine.Bool(true),
	}
	estimate, err := TRA2P(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 9)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 42.0)
}

func (s *TRA2PSuite) TestMissingIndicatorsCountAsAbsent(c *C) {
	rec := &engine.PatientRecord{Sex: engine.SexFemale}
	estimate, err := TRA2P(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 0)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 4.2)
	c.Assert(hasWarning(estimate.Warnings, engine.MissingValueFallback, "age"), Equals, true)
	c.Assert(hasWarning(estimate.Warnings, engine.MissingValueFallback, "hypertension"), Equals, true)
}

func (s *TRA2PSuite) TestRequiresSex(c *C) {
	_, err := TRA2P(&engine.PatientRecord{})
	c.Assert(engine.IsInvalidInput(err), Equals, true)
}
