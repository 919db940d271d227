package engine

import "math"

// BaselineSurvivalRisk rescales an individual's weighted predictor sum into
// an absolute risk percentage through the population baseline survival:
//
//	risk% = (1 - baselineSurvival^exp(weightedSum - meanSum)) * 100
//
// This is the closed form shared by the Cox proportional-hazards scorers
// (Framingham, ACC/AHA ASCVD, SCORE2).
func BaselineSurvivalRisk(weightedSum, meanSum, baselineSurvival float64) float64 {
	return (1 - math.Pow(baselineSurvival, math.Exp(weightedSum-meanSum))) * 100
}

// CalibrateRisk applies the SCORE2 regional recalibration to an
// uncalibrated 10-year risk (a proportion in [0,1)), returning the
// recalibrated proportion:
//
//	1 - exp(-exp(scale1 + scale2*ln(-ln(1-risk))))
func CalibrateRisk(risk, scale1, scale2 float64) float64 {
	return 1 - math.Exp(-math.Exp(scale1+scale2*math.Log(-math.Log(1-risk))))
}

// ClampRisk clamps a risk percentage to a score's published valid range.
func ClampRisk(pct, lo, hi float64) float64 {
	if pct < lo {
		return lo
	}
	if pct > hi {
		return hi
	}
	return pct
}

// RoundRisk rounds a risk percentage to one decimal place, the precision
// of the published charts and tables.
func RoundRisk(pct float64) float64 {
	return math.Round(pct*10) / 10
}
