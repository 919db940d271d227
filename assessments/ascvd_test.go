package assessments

import (
	"github.com/intervention-engine/cvriskservice/engine"
	. "gopkg.in/check.v1"
)

type ASCVDSuite struct{}

var _ = Suite(&ASCVDSuite{})

// The guideline's worked example: a 55-year-old white man, total
// cholesterol 213 mg/dL, HDL 50, untreated systolic pressure 120.
func (s *ASCVDSuite) TestPublishedWhiteMaleExample(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Ethnicity:        engine.EthnicityWhite,
		Age:              engine.Float(55),
		TotalCholesterol: engine.Float(213),
		HDLCholesterol:   engine.Float(50),
		SystolicBP:       engine.Float(120),
		TreatedForBP:     engine.Bool(false),
		Smoker:           engine.Bool(false),
		Diabetic:         engine.Bool(false),
	}
	estimate, err := ASCVDAccAha(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 5.4)
	c.Assert(estimate.Warnings, HasLen, 0)
}

func (s *ASCVDSuite) TestOtherEthnicityUsesWhiteCoefficients(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Ethnicity:        engine.EthnicityOther,
		Age:              engine.Float(55),
		TotalCholesterol: engine.Float(213),
		HDLCholesterol:   engine.Float(50),
		SystolicBP:       engine.Float(120),
		TreatedForBP:     engine.Bool(false),
		Smoker:           engine.Bool(false),
		Diabetic:         engine.Bool(false),
	}
	estimate, err := ASCVDAccAha(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 5.4)
}

func (s *ASCVDSuite) TestClampsAtThirtyPercent(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexFemale,
		Ethnicity:        engine.EthnicityAfricanAmerican,
		Age:              engine.Float(60),
		TotalCholesterol: engine.Float(200),
		HDLCholesterol:   engine.Float(45),
		SystolicBP:       engine.Float(160),
		TreatedForBP:     engine.Bool(true),
		Smoker:           engine.Bool(true),
		Diabetic:         engine.Bool(true),
	}
	estimate, err := ASCVDAccAha(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 30.0)
}

func (s *ASCVDSuite) TestClampsAtOnePercent(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexFemale,
		Ethnicity:        engine.EthnicityWhite,
		Age:              engine.Float(40),
		TotalCholesterol: engine.Float(170),
		HDLCholesterol:   engine.Float(60),
		SystolicBP:       engine.Float(110),
		TreatedForBP:     engine.Bool(false),
		Smoker:           engine.Bool(false),
		Diabetic:         engine.Bool(false),
	}
	estimate, err := ASCVDAccAha(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 1.0)
}

func (s *ASCVDSuite) TestHighRiskAfricanAmericanMale(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Ethnicity:        engine.EthnicityAfricanAmerican,
		Age:              engine.Float(75),
		TotalCholesterol: engine.Float(240),
		HDLCholesterol:   engine.Float(35),
		SystolicBP:       engine.Float(180),
		TreatedForBP:     engine.Bool(true),
		Smoker:           engine.Bool(true),
		Diabetic:         engine.Bool(true),
	}
	estimate, err := ASCVDAccAha(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 30.0)
}

func (s *ASCVDSuite) TestWarnsOutsideValidatedAges(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		Age:              engine.Float(85),
		TotalCholesterol: engine.Float(213),
		HDLCholesterol:   engine.Float(50),
		SystolicBP:       engine.Float(120),
		TreatedForBP:     engine.Bool(false),
		Smoker:           engine.Bool(false),
		Diabetic:         engine.Bool(false),
	}
	estimate, err := ASCVDAccAha(rec)
	c.Assert(err, IsNil)
	c.Assert(hasWarning(estimate.Warnings, engine.OutOfRangeWarning, "age"), Equals, true)
}

func (s *ASCVDSuite) TestMissingCholesterolFallsBack(c *C) {
	rec := &engine.PatientRecord{
		Sex:            engine.SexMale,
		Ethnicity:      engine.EthnicityWhite,
		Age:            engine.Float(55),
		HDLCholesterol: engine.Float(50),
		SystolicBP:     engine.Float(120),
		TreatedForBP:   engine.Bool(false),
		Smoker:         engine.Bool(false),
		Diabetic:       engine.Bool(false),
	}
	estimate, err := ASCVDAccAha(rec)
	c.Assert(err, IsNil)
	// The cholesterol terms drop out, so the understated sum lands at the
	// published 1% floor.
	c.Assert(*estimate.ProbabilityDecimal, Equals, 1.0)
	c.Assert(hasWarning(estimate.Warnings, engine.MissingValueFallback, "totalCholesterol"), Equals, true)
}

func (s *ASCVDSuite) TestMissingAgeFallsBack(c *C) {
	rec := &engine.PatientRecord{
		Sex:              engine.SexMale,
		TotalCholesterol: engine.Float(213),
		HDLCholesterol:   engine.Float(50),
		SystolicBP:       engine.Float(120),
		Smoker:           engine.Bool(false),
		Diabetic:         engine.Bool(false),
	}
	estimate, err := ASCVDAccAha(rec)
	c.Assert(err, IsNil)
	c.Assert(*estimate.ProbabilityDecimal, Equals, 1.0)
	c.Assert(hasWarning(estimate.Warnings, engine.MissingValueFallback, "age"), Equals, true)
}
