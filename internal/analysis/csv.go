package analysis

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteSweepCSV writes one row per sweep grid point. This is the primary
// artifact for "what does the deal look like across the cap-rate range".
func WriteSweepCSV(path string, points []SweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"cap_rate",
		"annual_rent_mm",
		"net_debt_paydown_mm",
		"post_transaction_debt_mm",
		"rent_coverage_ratio",
		"implied_rent_multiple",
		"npv_rent_obligation_mm",
		"ebitdar_mm",
		"ebitdar_margin_impact_pct",
		"debt_outcome",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range points {
		row := []string{
			strconv.Itoa(p.Index),
			fmtFloat(p.CapRate),
			fmtFloat(p.Metrics.AnnualRentMM),
			fmtFloat(p.Metrics.NetDebtPaydownMM),
			fmtFloat(p.Metrics.PostTransactionDebtMM),
			fmtFloat(p.Metrics.RentCoverageRatio),
			fmtFloat(p.Metrics.ImpliedRentMultiple),
			fmtFloat(p.Metrics.NpvRentObligationMM),
			fmtFloat(p.Metrics.EbitdarMM),
			fmtFloat(p.Metrics.EbitdarMarginImpactPct),
			string(p.Metrics.DebtOutcome),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
