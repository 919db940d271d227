package assessments

import (
	"github.com/intervention-engine/cvriskservice/engine"
	. "gopkg.in/check.v1"
)

type INVESTSuite struct{}

var _ = Suite(&INVESTSuite{})

func investTestRecord() *engine.PatientRecord {
	return &engine.PatientRecord{
		Sex:                     engine.SexMale,
		Age:                     engine.Float(65),
		PriorMI:                 engine.Bool(false),
		PriorStroke:             engine.Bool(false),
		HeartFailure:            engine.Bool(false),
		Diabetic:                engine.Bool(false),
		RenalImpairment:         engine.Bool(false),
		Smoker:                  engine.Bool(false),
		PeripheralArteryDisease: engine.Bool(false),
	}
}

func (s *INVESTSuite) TestAgeAndComorbidities(c *C) {
	rec := investTestRecord()
	rec.PriorMI = engine.Bool(true)
	rec.Diabetic = engine.Bool(true)
	estimate, err := INVEST(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 3)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 4.1)
	c.Assert(estimate.Warnings, HasLen, 0)
}

func (s *INVESTSuite) TestMaximumScore(c *C) {
	rec := &engine.PatientRecord{
		Sex:                     engine.SexFemale,
		Age:                     engine.Float(85),
		PriorMI:                 engine.Bool(true),
		PriorStroke:             engine.Bool(true),
		HeartFailure:            engine.Bool(true),
		Diabetic:                engine.Bool(true),
		RenalImpairment:         engine.Bool(true),
		Smoker:                  engine.Bool(true),
		PeripheralArteryDisease: engine.Bool(true),
	}
	estimate, err := INVEST(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 13)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 50.2)
}

func (s *INVESTSuite) TestYoungPatientScoresZeroAgePoints(c *C) {
	rec := investTestRecord()
	rec.Age = engine.Float(55)
	estimate, err := INVEST(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 0)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 1.4)
}

func (s *INVESTSuite) TestMissingAgeFallsBack(c *C) {
	rec := investTestRecord()
	rec.Age = nil
	estimate, err := INVEST(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 0)
	c.Assert(hasWarning(estimate.Warnings, engine.MissingValueFallback, "age"), Equals, true)
}
