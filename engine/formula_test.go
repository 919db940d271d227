package engine

import (
	. "gopkg.in/check.v1"
)

type FormulaSuite struct{}

var _ = Suite(&FormulaSuite{})

func (s *FormulaSuite) TestBaselineSurvivalAtMeanSum(c *C) {
	// An individual exactly at the population mean has risk 1 - S0.
	risk := BaselineSurvivalRisk(26.1931, 26.1931, 0.95012)
	c.Assert(RoundRisk(risk), Equals, 5.0)
}

func (s *FormulaSuite) TestDeterminism(c *C) {
	a := BaselineSurvivalRisk(24.5, 23.9802, 0.88936)
	b := BaselineSurvivalRisk(24.5, 23.9802, 0.88936)
	c.Assert(a, Equals, b)
}

func (s *FormulaSuite) TestClampRisk(c *C) {
	c.Assert(ClampRisk(0.4, 1, 30), Equals, 1.0)
	c.Assert(ClampRisk(12.3, 1, 30), Equals, 12.3)
	c.Assert(ClampRisk(57.2, 1, 30), Equals, 30.0)
}

func (s *FormulaSuite) TestRoundRisk(c *C) {
	c.Assert(RoundRisk(4.249), Equals, 4.2)
	c.Assert(RoundRisk(4.25), Equals, 4.3)
	c.Assert(RoundRisk(14.04), Equals, 14.0)
}

func (s *FormulaSuite) TestCalibrateRiskIsMonotone(c *C) {
	lo := CalibrateRisk(0.02, -0.5699, 0.7476)
	hi := CalibrateRisk(0.08, -0.5699, 0.7476)
	c.Assert(lo < hi, Equals, true)
	c.Assert(lo > 0 && hi < 1, Equals, true)
}
