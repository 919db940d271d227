package assessments

import (
	"github.com/intervention-engine/cvriskservice/engine"
	"github.com/intervention-engine/cvriskservice/plugin"
)

// Factory builds a configured scorer plugin from caller-supplied selector
// parameters (risk region, scheme version, outcome).  Unknown or missing
// selector values are InvalidInputErrors.
type Factory func(params map[string]string) (plugin.RiskScorerPlugin, error)

// Registry returns the factories for every scorer in this package, keyed
// by registry name.
func Registry() map[string]Factory {
	return map[string]Factory{
		"score2-chart": func(params map[string]string) (plugin.RiskScorerPlugin, error) {
			region, err := regionParam(params, false)
			if err != nil {
				return nil, err
			}
			return NewSCORE2ChartPlugin(region), nil
		},
		"score2": func(params map[string]string) (plugin.RiskScorerPlugin, error) {
			region, err := regionParam(params, false)
			if err != nil {
				return nil, err
			}
			return NewSCORE2Plugin(region), nil
		},
		"score2-op": func(params map[string]string) (plugin.RiskScorerPlugin, error) {
			region, err := regionParam(params, false)
			if err != nil {
				return nil, err
			}
			return NewSCORE2OPPlugin(region), nil
		},
		"score-2016": func(params map[string]string) (plugin.RiskScorerPlugin, error) {
			region, err := regionParam(params, true)
			if err != nil {
				return nil, err
			}
			return NewSCOREPlugin(region), nil
		},
		"framingham-cvd": func(params map[string]string) (plugin.RiskScorerPlugin, error) {
			return NewFraminghamPlugin(), nil
		},
		"ascvd-acc-aha": func(params map[string]string) (plugin.RiskScorerPlugin, error) {
			return NewASCVDPlugin(), nil
		},
		"procam": func(params map[string]string) (plugin.RiskScorerPlugin, error) {
			switch PROCAMVersion(params["version"]) {
			case PROCAM2007:
				return NewPROCAMPlugin(PROCAM2007), nil
			case PROCAM2002, "":
				return NewPROCAMPlugin(PROCAM2002), nil
			default:
				return nil, engine.NewInvalidInputError("version", "must be 2002 or 2007")
			}
		},
		"reach": func(params map[string]string) (plugin.RiskScorerPlugin, error) {
			switch REACHOutcome(params["outcome"]) {
			case REACHCVDeath:
				return NewREACHPlugin(REACHCVDeath), nil
			case REACHNextCVEvent, "":
				return NewREACHPlugin(REACHNextCVEvent), nil
			default:
				return nil, engine.NewInvalidInputError("outcome", "must be next-cv-event or cv-death")
			}
		},
		"tra2p": func(params map[string]string) (plugin.RiskScorerPlugin, error) {
			return NewTRA2PPlugin(), nil
		},
		"invest": func(params map[string]string) (plugin.RiskScorerPlugin, error) {
			return NewINVESTPlugin(), nil
		},
	}
}

func regionParam(params map[string]string, twoTier bool) (engine.RiskRegion, error) {
	region := engine.RiskRegion(params["region"])
	switch region {
	case engine.RegionLow, engine.RegionHigh:
		return region, nil
	case engine.RegionModerate, engine.RegionVeryHigh:
		if twoTier {
			return "", engine.NewInvalidInputError("region", "must be low or high")
		}
		return region, nil
	case "":
		return "", engine.NewInvalidInputError("region", "required value is missing")
	default:
		return "", engine.NewInvalidInputError("region", "unknown risk region")
	}
}
