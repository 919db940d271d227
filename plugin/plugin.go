package plugin

import (
	"sync"
	"time"

	"github.com/intervention-engine/cvriskservice/engine"
)

// RiskScorerPlugin provides the interface that risk scorer plugins adhere
// to.  Each published score (SCORE2, Framingham, ASCVD, ...) is one
// implementation; a scorer is a stateless pure function from a validated
// patient record to a risk estimate, so a single instance may be shared
// across goroutines.
type RiskScorerPlugin interface {
	// Config returns the configuration information for the scorer plugin.
	Config() RiskScorerPluginConfig
	// Calculate scores a single patient record.  It returns an
	// engine.InvalidInputError when a required field is missing or outside
	// its enumerated domain; softer conditions are reported as warnings on
	// the estimate.
	Calculate(rec *engine.PatientRecord) (*RiskEstimate, error)
}

// RiskScorerPluginConfig represents key information about a scorer plugin.
type RiskScorerPluginConfig struct {
	// Name is the scorer's registry name, e.g. "score2-chart".
	Name string
	// Method is a human-readable description of the algorithm and variant.
	Method string
	// PredictedOutcome names the event the risk percentage refers to.
	PredictedOutcome string
	// Horizon describes the prediction window, e.g. "10 years".
	Horizon string
	// Citation points at the publication the coefficient/lookup data was
	// transcribed from.
	Citation string
	// DefaultPieSlices lists the factors that make up the score's
	// breakdown pie, with zero values.
	DefaultPieSlices []Slice
}

// NewPie constructs a pie carrying the scorer's default slices.  The
// slices are cloned so filling in values never mutates the config's
// defaults.
func (c RiskScorerPluginConfig) NewPie(patient string) *Pie {
	template := &Pie{Patient: patient, Created: time.Now(), Slices: c.DefaultPieSlices}
	return template.Clone(true)
}

// RiskEstimate is the result of scoring one patient record.  Score is the
// raw integer point total for the point-based scores (if applicable);
// ProbabilityDecimal is the percentage probability of the predicted
// outcome and never exceeds 100.
type RiskEstimate struct {
	AsOf               time.Time        `json:"asOf"`
	Score              *int             `json:"score,omitempty"`
	ProbabilityDecimal *float64         `json:"probabilityDecimal,omitempty"`
	HeartAge           *float64         `json:"heartAge,omitempty"`
	Warnings           []engine.Warning `json:"warnings,omitempty"`
	Pie                *Pie             `json:"pie,omitempty"`
}

// GetProbabilityDecimalOrScore returns the ProbabilityDecimal value if it
// exists, otherwise it returns the score.
func (r *RiskEstimate) GetProbabilityDecimalOrScore() *float64 {
	if r.ProbabilityDecimal != nil {
		return r.ProbabilityDecimal
	} else if r.Score != nil {
		f := float64(*r.Score)
		return &f
	}
	return nil
}

// CalculateAll scores a batch of records with the given plugin.  Records
// are independent, so they are scored concurrently; results align 1:1
// with the input order.  An InvalidInputError on any record fails the
// whole batch.
func CalculateAll(p RiskScorerPlugin, recs []*engine.PatientRecord) ([]*RiskEstimate, error) {
	results := make([]*RiskEstimate, len(recs))
	errs := make([]error, len(recs))

	var wg sync.WaitGroup
	for i := range recs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = p.Calculate(recs[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
