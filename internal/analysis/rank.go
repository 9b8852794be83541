package analysis

import (
	"sort"

	"leaseback-model/internal/leaseback"
	"leaseback-model/internal/model"
)

// RankedScenario pairs a named scenario with its computed metrics.
type RankedScenario struct {
	Name    string
	Inputs  model.TransactionInputs
	Metrics model.TransactionMetrics
}

// RankScenarios computes metrics per named scenario and sorts descending by
// rent coverage ratio, the headline "can we afford this lease" number.
// Ties break on name so the ordering is stable. Scenarios that fail to
// compute are dropped.
func RankScenarios(byName map[string]model.TransactionInputs) []RankedScenario {
	out := make([]RankedScenario, 0, len(byName))
	for name, in := range byName {
		m, err := leaseback.Compute(in)
		if err != nil {
			continue
		}
		out = append(out, RankedScenario{Name: name, Inputs: in, Metrics: m})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Metrics.RentCoverageRatio != out[j].Metrics.RentCoverageRatio {
			return out[i].Metrics.RentCoverageRatio > out[j].Metrics.RentCoverageRatio
		}
		return out[i].Name < out[j].Name
	})
	return out
}
