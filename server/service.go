package server

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/intervention-engine/cvriskservice/assessments"
	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// ErrUnknownScore is returned when a request names a score that is not
// registered.
var ErrUnknownScore = errors.New("unknown score")

// AssessmentDocument is the persisted record of one calculation: which
// score ran, what it predicted, and the estimate it produced.  The pie is
// stored separately in the pies collection and referenced by id.
type AssessmentDocument struct {
	Id               bson.ObjectId    `bson:"_id" json:"id"`
	Score            string           `bson:"score" json:"score"`
	Method           string           `bson:"method" json:"method"`
	PredictedOutcome string           `bson:"predictedOutcome" json:"predictedOutcome"`
	Horizon          string           `bson:"horizon" json:"horizon"`
	AsOf             time.Time        `bson:"asOf" json:"asOf"`
	ScorePoints      *int             `bson:"scorePoints,omitempty" json:"scorePoints,omitempty"`
	Probability      *float64         `bson:"probability,omitempty" json:"probability,omitempty"`
	HeartAge         *float64         `bson:"heartAge,omitempty" json:"heartAge,omitempty"`
	Warnings         []engine.Warning `bson:"warnings,omitempty" json:"warnings,omitempty"`
	PieId            bson.ObjectId    `bson:"pieId,omitempty" json:"pieId,omitempty"`
}

// RiskService scores patient records with the registered scorers and
// persists what it computed.  A nil database disables persistence, for
// stateless deployments.
type RiskService struct {
	db        *mgo.Database
	factories map[string]assessments.Factory
	log       *logrus.Logger
}

// NewRiskService returns a RiskService backed by the given database with
// every scorer in the assessments registry available.
func NewRiskService(db *mgo.Database, log *logrus.Logger) *RiskService {
	if log == nil {
		log = logrus.New()
	}
	return &RiskService{db: db, factories: assessments.Registry(), log: log}
}

// Configs returns the configuration of every registered scorer.
func (rs *RiskService) Configs() []plugin.RiskScorerPluginConfig {
	configs := make([]plugin.RiskScorerPluginConfig, 0, len(rs.factories))
	for name, factory := range rs.factories {
		// Factories only fail on bad selector params; instantiate with
		// the least demanding ones.
		p, err := factory(map[string]string{"region": "low"})
		if err != nil {
			rs.log.WithField("score", name).WithError(err).Warn("could not read scorer config")
			continue
		}
		configs = append(configs, p.Config())
	}
	return configs
}

// Calculate scores one record with the named scorer and stores the
// resulting assessment and pie.
func (rs *RiskService) Calculate(name string, params map[string]string, rec *engine.PatientRecord) (*plugin.RiskEstimate, error) {
	scorer, err := rs.scorer(name, params)
	if err != nil {
		return nil, err
	}
	estimate, err := scorer.Calculate(rec)
	if err != nil {
		return nil, err
	}
	if err := rs.store(scorer.Config(), estimate); err != nil {
		return nil, err
	}
	rs.logEstimate(name, estimate)
	return estimate, nil
}

// CalculateBatch scores a batch of records with the named scorer.  The
// whole batch fails if any record is invalid; on success every assessment
// is stored and results align 1:1 with the input records.
func (rs *RiskService) CalculateBatch(name string, params map[string]string, recs []*engine.PatientRecord) ([]*plugin.RiskEstimate, error) {
	scorer, err := rs.scorer(name, params)
	if err != nil {
		return nil, err
	}
	estimates, err := plugin.CalculateAll(scorer, recs)
	if err != nil {
		return nil, err
	}
	for _, estimate := range estimates {
		if err := rs.store(scorer.Config(), estimate); err != nil {
			return nil, err
		}
		rs.logEstimate(name, estimate)
	}
	return estimates, nil
}

// Pie fetches a stored pie by id.
func (rs *RiskService) Pie(id bson.ObjectId) (*plugin.Pie, error) {
	pie := &plugin.Pie{}
	if err := rs.db.C("pies").FindId(id).One(pie); err != nil {
		return nil, errors.Wrap(err, "fetching pie")
	}
	return pie, nil
}

func (rs *RiskService) scorer(name string, params map[string]string) (plugin.RiskScorerPlugin, error) {
	factory, ok := rs.factories[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownScore, name)
	}
	return factory(params)
}

func (rs *RiskService) store(config plugin.RiskScorerPluginConfig, estimate *plugin.RiskEstimate) error {
	if rs.db == nil {
		return nil
	}
	doc := &AssessmentDocument{
		Id:               bson.NewObjectId(),
		Score:            config.Name,
		Method:           config.Method,
		PredictedOutcome: config.PredictedOutcome,
		Horizon:          config.Horizon,
		AsOf:             estimate.AsOf,
		ScorePoints:      estimate.Score,
		Probability:      estimate.ProbabilityDecimal,
		HeartAge:         estimate.HeartAge,
		Warnings:         estimate.Warnings,
	}
	if estimate.Pie != nil {
		if err := rs.db.C("pies").Insert(estimate.Pie); err != nil {
			return errors.Wrap(err, "storing pie")
		}
		doc.PieId = estimate.Pie.Id
	}
	if err := rs.db.C("assessments").Insert(doc); err != nil {
		return errors.Wrap(err, "storing assessment")
	}
	return nil
}

func (rs *RiskService) logEstimate(name string, estimate *plugin.RiskEstimate) {
	fields := logrus.Fields{"score": name, "warnings": len(estimate.Warnings)}
	if estimate.ProbabilityDecimal != nil {
		fields["risk"] = *estimate.ProbabilityDecimal
	}
	if estimate.Pie != nil {
		fields["pieTotal"] = estimate.Pie.TotalValues()
	}
	rs.log.WithFields(fields).Info("calculated risk estimate")
}
