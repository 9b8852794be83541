package analysis

import (
	"fmt"

	"leaseback-model/internal/leaseback"
	"leaseback-model/internal/model"
)

// SweepParams defines a cap-rate grid for sensitivity analysis.
type SweepParams struct {
	CapRateMin float64
	CapRateMax float64
	Steps      int
}

func (p SweepParams) validate() error {
	if p.Steps < 2 {
		return fmt.Errorf("steps must be >= 2, got %d", p.Steps)
	}
	if p.CapRateMin <= 0 {
		return fmt.Errorf("cap_rate_min must be > 0, got %g", p.CapRateMin)
	}
	if p.CapRateMax <= p.CapRateMin {
		return fmt.Errorf("cap_rate_max (%g) must be > cap_rate_min (%g)", p.CapRateMax, p.CapRateMin)
	}
	return nil
}

// SweepPoint is one grid point of a sensitivity sweep: the cap rate used and
// the full metric set it produced.
type SweepPoint struct {
	Index   int
	CapRate float64
	Metrics model.TransactionMetrics
}

// SweepCapRate recomputes the transaction across an evenly spaced cap-rate
// grid, holding every other input fixed. Grid points whose computation fails
// (e.g. a zero property value makes every point invalid) are skipped rather
// than aborting the sweep; an all-failed sweep returns an error.
func SweepCapRate(in model.TransactionInputs, p SweepParams) ([]SweepPoint, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	step := (p.CapRateMax - p.CapRateMin) / float64(p.Steps-1)
	points := make([]SweepPoint, 0, p.Steps)
	for i := 0; i < p.Steps; i++ {
		rate := p.CapRateMin + step*float64(i)
		scenario := in
		scenario.CapRate = rate
		m, err := leaseback.Compute(scenario)
		if err != nil {
			continue
		}
		points = append(points, SweepPoint{Index: len(points), CapRate: rate, Metrics: m})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no sweep point computed for %q: all %d grid points failed", in.Name, p.Steps)
	}
	return points, nil
}
