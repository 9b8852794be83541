package leaseback

import (
	"encoding/csv"
	"os"
	"strconv"

	"leaseback-model/internal/model"
)

// WriteMetricsCSV writes a single computed transaction as one CSV row.
// Inputs and derived metrics share the row so a sheet can be rebuilt from
// the file alone.
func WriteMetricsCSV(path string, in model.TransactionInputs, m model.TransactionMetrics) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"name",
		"property_value_mm",
		"cap_rate",
		"lease_term_years",
		"annual_rent_escalation",
		"current_debt_mm",
		"debt_rate",
		"current_ebitda_mm",
		"tax_rate",
		"sale_proceeds_mm",
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

	row := []string{
		in.Name,
		fmtFloat(in.PropertyValueMM),
		fmtFloat(in.CapRate),
		fmtFloat(in.LeaseTermYears),
		fmtFloat(in.AnnualRentEscalation),
		fmtFloat(in.CurrentDebtMM),
		fmtFloat(in.DebtRate),
		fmtFloat(in.CurrentEbitdaMM),
		fmtFloat(in.TaxRate),
		fmtFloat(m.SaleProceedsMM),
		fmtFloat(m.AnnualRentMM),
		fmtFloat(m.NetDebtPaydownMM),
		fmtFloat(m.PostTransactionDebtMM),
		fmtFloat(m.RentCoverageRatio),
		fmtFloat(m.ImpliedRentMultiple),
		fmtFloat(m.NpvRentObligationMM),
		fmtFloat(m.EbitdarMM),
		fmtFloat(m.EbitdarMarginImpactPct),
		string(m.DebtOutcome),
	}
	if err := w.Write(row); err != nil {
		return err
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
