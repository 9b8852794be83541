package data

import (
	"encoding/json"
	"os"

	"leaseback-model/internal/model"
)

// transactionJSON matches the JSON shape exported by the web form
// ("save inputs" produces this file).
type transactionJSON struct {
	Name                 string  `json:"name"`
	PropertyValueMM      float64 `json:"property_value_mm"`
	CapRate              float64 `json:"cap_rate"`
	LeaseTermYears       float64 `json:"lease_term_years"`
	AnnualRentEscalation float64 `json:"annual_rent_escalation"`
	CurrentDebtMM        float64 `json:"current_debt_mm"`
	DebtRate             float64 `json:"debt_rate"`
	CurrentEbitdaMM      float64 `json:"current_ebitda_mm"`
	TaxRate              float64 `json:"tax_rate"`
}

// LoadTransactionJSON reads transaction inputs from a JSON file.
func LoadTransactionJSON(path string) (model.TransactionInputs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.TransactionInputs{}, err
	}
	var t transactionJSON
	if err := json.Unmarshal(raw, &t); err != nil {
		return model.TransactionInputs{}, err
	}
	return model.TransactionInputs{
		Name:                 t.Name,
		PropertyValueMM:      t.PropertyValueMM,
		CapRate:              t.CapRate,
		LeaseTermYears:       t.LeaseTermYears,
		AnnualRentEscalation: t.AnnualRentEscalation,
		CurrentDebtMM:        t.CurrentDebtMM,
		DebtRate:             t.DebtRate,
		CurrentEbitdaMM:      t.CurrentEbitdaMM,
		TaxRate:              t.TaxRate,
	}, nil
}
