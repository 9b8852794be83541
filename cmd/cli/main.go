package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"leaseback-model/internal/analysis"
	"leaseback-model/internal/config"
	"leaseback-model/internal/data"
	"leaseback-model/internal/leaseback"
	"leaseback-model/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "compute":
		cmdCompute(os.Args[2:])
	case "sensitivity":
		cmdSensitivity(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli compute --config examples/config.yaml [--inputs inputs.json] [--out results/metrics.csv]")
	fmt.Println("  cli sensitivity --config examples/config.yaml --out results/sweep.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - compute prints the derived metric set, formatted for display")
	fmt.Println("  - sensitivity recomputes the deal across the configured cap-rate range")
}

func cmdCompute(args []string) {
	fs := flag.NewFlagSet("compute", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	inputsPath := fs.String("inputs", "", "Optional: JSON inputs file (overrides config transaction)")
	outPath := fs.String("out", "", "Optional: output CSV path")
	_ = fs.Parse(args)

	inputs := loadInputs(*cfgPath, *inputsPath)

	metrics, err := leaseback.Compute(inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compute failed: %v\n", err)
		os.Exit(1)
	}

	printMetrics(inputs, metrics)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := leaseback.WriteMetricsCSV(*outPath, inputs, metrics); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote metrics to %s\n", *outPath)
	}
}

func cmdSensitivity(args []string) {
	fs := flag.NewFlagSet("sensitivity", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (must include a sweep section)")
	outPath := fs.String("out", "results/sweep.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	inputs := cfg.Transaction.ToModelInputs()

	points, err := analysis.SweepCapRate(inputs, analysis.SweepParams{
		CapRateMin: cfg.Sweep.CapRateMin,
		CapRateMax: cfg.Sweep.CapRateMax,
		Steps:      cfg.Sweep.Steps,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweep failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := analysis.WriteSweepCSV(*outPath, points); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(points), *outPath)
	fmt.Printf("%-6s %-10s %-12s %-12s %-12s %-10s\n", "idx", "cap_rate", "rent", "coverage", "npv", "outcome")
	for _, p := range points {
		fmt.Printf(
			"%-6d %-10s %-12s %-12s %-12s %-10s\n",
			p.Index,
			model.FormatPercent(p.CapRate),
			model.FormatCurrencyMM(p.Metrics.AnnualRentMM),
			model.FormatRatio(p.Metrics.RentCoverageRatio),
			model.FormatCurrencyMM(p.Metrics.NpvRentObligationMM),
			p.Metrics.DebtOutcome,
		)
	}
}

// loadInputs resolves CLI inputs: a JSON inputs file wins over the config
// transaction; at least one of the two is required.
func loadInputs(cfgPath, inputsPath string) model.TransactionInputs {
	if inputsPath != "" {
		inputs, err := data.LoadTransactionJSON(inputsPath)
		if err != nil {
			panic(err)
		}
		if err := inputs.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "invalid inputs file: %v\n", err)
			os.Exit(2)
		}
		return inputs
	}
	if cfgPath == "" {
		fmt.Println("--config or --inputs is required")
		os.Exit(2)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	return cfg.Transaction.ToModelInputs()
}

func printMetrics(in model.TransactionInputs, m model.TransactionMetrics) {
	name := in.Name
	if name == "" {
		name = "(unnamed transaction)"
	}
	fmt.Printf("%s\n", name)
	fmt.Printf("  Sale proceeds:          %s\n", model.FormatCurrencyMM(m.SaleProceedsMM))
	fmt.Printf("  Annual rent:            %s (cap rate %s)\n", model.FormatCurrencyMM(m.AnnualRentMM), model.FormatPercent(in.CapRate))
	fmt.Printf("  Net debt paydown:       %s\n", model.FormatCurrencyMM(m.NetDebtPaydownMM))
	fmt.Printf("  Post-transaction debt:  %s (%s)\n", model.FormatCurrencyMM(m.PostTransactionDebtMM), m.DebtOutcome)
	fmt.Printf("  Rent coverage:          %s\n", model.FormatRatio(m.RentCoverageRatio))
	fmt.Printf("  Implied rent multiple:  %s\n", model.FormatRatio(m.ImpliedRentMultiple))
	fmt.Printf("  NPV of rent obligation: %s\n", model.FormatCurrencyMM(m.NpvRentObligationMM))
	fmt.Printf("  EBITDAR:                %s\n", model.FormatCurrencyMM(m.EbitdarMM))
	fmt.Printf("  EBITDAR margin impact:  %s\n", model.FormatPercentPoints(m.EbitdarMarginImpactPct))
}
