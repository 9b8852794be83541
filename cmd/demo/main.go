package main

import (
	"flag"
	"fmt"

	"leaseback-model/internal/analysis"
	"leaseback-model/internal/config"
	"leaseback-model/internal/leaseback"
	"leaseback-model/internal/model"
)

// Demo:
// - Instantiate a representative sale-leaseback transaction
// - Compute the derived metric set
// - Run a small cap-rate sweep to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	inputs := model.TransactionInputs{
		Name:                 "demo headquarters",
		PropertyValueMM:      100,
		CapRate:              0.065,
		LeaseTermYears:       20,
		AnnualRentEscalation: 0.02,
		CurrentDebtMM:        80,
		DebtRate:             0.055,
		CurrentEbitdaMM:      50,
		TaxRate:              0.25,
	}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		inputs = cfg.Transaction.ToModelInputs()
	}

	metrics, err := leaseback.Compute(inputs)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s: rent=%s coverage=%s npv=%s outcome=%s\n",
		inputs.Name,
		model.FormatCurrencyMM(metrics.AnnualRentMM),
		model.FormatRatio(metrics.RentCoverageRatio),
		model.FormatCurrencyMM(metrics.NpvRentObligationMM),
		metrics.DebtOutcome,
	)

	points, err := analysis.SweepCapRate(inputs, analysis.SweepParams{
		CapRateMin: 0.05,
		CapRateMax: 0.09,
		Steps:      5,
	})
	if err != nil {
		panic(err)
	}
	for _, p := range points {
		fmt.Printf("  cap rate %s -> rent %s, coverage %s\n",
			model.FormatPercent(p.CapRate),
			model.FormatCurrencyMM(p.Metrics.AnnualRentMM),
			model.FormatRatio(p.Metrics.RentCoverageRatio),
		)
	}
}
