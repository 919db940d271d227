package assessments

import (
	"github.com/intervention-engine/cvriskservice/engine"
	. "gopkg.in/check.v1"
)

type REACHSuite struct{}

var _ = Suite(&REACHSuite{})

func reachTestRecord() *engine.PatientRecord {
	// 66-year-old male smoker with diabetes on both secondary prevention
	// drugs: 2+1+2+2 = 7 points.
	return &engine.PatientRecord{
		Sex:                       engine.SexMale,
		Age:                       engine.Float(66),
		Smoker:                    engine.Bool(true),
		Diabetic:                  engine.Bool(true),
		BMI:                       engine.Float(25),
		AtrialFibrillation:        engine.Bool(false),
		HeartFailure:              engine.Bool(false),
		VascularBeds:              engine.Int(0),
		CVEventInPastYear:         engine.Bool(false),
		OnStatin:                  engine.Bool(true),
		OnAspirin:                 engine.Bool(true),
		EasternEuropeOrMiddleEast: engine.Bool(false),
	}
}

func (s *REACHSuite) TestNextEventRisk(c *C) {
	estimate, err := REACH(reachTestRecord(), REACHNextCVEvent)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 7)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 13.0)
	c.Assert(estimate.Warnings, HasLen, 0)
}

func (s *REACHSuite) TestCVDeathRisk(c *C) {
	estimate, err := REACH(reachTestRecord(), REACHCVDeath)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 7)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 4.6)
}

func (s *REACHSuite) TestUntreatedPatientsScoreDrugPoints(c *C) {
	rec := reachTestRecord()
	rec.OnStatin = engine.Bool(false)
	rec.OnAspirin = engine.Bool(false)
	estimate, err := REACH(rec, REACHNextCVEvent)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 9)
}

func (s *REACHSuite) TestVascularBedsClampToThree(c *C) {
	rec := reachTestRecord()
	rec.VascularBeds = engine.Int(5)
	estimate, err := REACH(rec, REACHNextCVEvent)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 13)
}

func (s *REACHSuite) TestPointTotalsClampToTable(c *C) {
	rec := &engine.PatientRecord{
		Sex:                       engine.SexMale,
		Age:                       engine.Float(80),
		Smoker:                    engine.Bool(true),
		Diabetic:                  engine.Bool(true),
		BMI:                       engine.Float(19),
		AtrialFibrillation:        engine.Bool(true),
		HeartFailure:              engine.Bool(true),
		VascularBeds:              engine.Int(3),
		CVEventInPastYear:         engine.Bool(true),
		OnStatin:                  engine.Bool(false),
		OnAspirin:                 engine.Bool(false),
		EasternEuropeOrMiddleEast: engine.Bool(true),
	}
	estimate, err := REACH(rec, REACHNextCVEvent)
	c.Assert(err, IsNil)
	c.Assert(*estimate.Score, Equals, 27)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 45.5)
}

func (s *REACHSuite) TestMissingFieldsScoreZeroWithWarnings(c *C) {
	rec := &engine.PatientRecord{Sex: engine.SexFemale}
	estimate, err := REACH(rec, REACHNextCVEvent)
	c.Assert(err, IsNil)
	// Only the two no-treatment points remain.
	c.Assert(*estimate.Score, Equals, 2)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 4.5)
	c.Assert(hasWarning(estimate.Warnings, engine.MissingValueFallback, "age"), Equals, true)
	c.Assert(hasWarning(estimate.Warnings, engine.MissingValueFallback, "smoker"), Equals, true)
	c.Assert(hasWarning(estimate.Warnings, engine.MissingValueFallback, "vascularBeds"), Equals, true)
}

func (s *REACHSuite) TestRejectsUnknownOutcome(c *C) {
	_, err := REACH(reachTestRecord(), REACHOutcome("mortality"))
	c.Assert(engine.IsInvalidInput(err), Equals, true)
}
