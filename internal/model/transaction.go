package model

import "errors"

// TransactionInputs defines the terms of a proposed sale-leaseback.
// Units:
// - Monetary fields (PropertyValueMM, CurrentDebtMM, CurrentEbitdaMM): millions
// - Rates (CapRate, AnnualRentEscalation, DebtRate, TaxRate): decimal fractions, not percentages
// - LeaseTermYears: years
type TransactionInputs struct {
	Name                 string
	PropertyValueMM      float64
	CapRate              float64
	LeaseTermYears       float64
	AnnualRentEscalation float64
	CurrentDebtMM        float64
	DebtRate             float64
	CurrentEbitdaMM      float64
	TaxRate              float64
}

// Validate performs range checks on the inputs. The compute engine only
// guards divisors; shells (config load, API binding, CLI) call this before
// handing inputs to the engine.
//
// CurrentEbitdaMM is intentionally unchecked: a negative trailing EBITDA is
// a legitimate (if unhappy) input and flows through as negative ratios.
func (t TransactionInputs) Validate() error {
	if t.PropertyValueMM < 0 {
		return errors.New("PropertyValueMM must be >= 0")
	}
	if t.CapRate < 0 {
		return errors.New("CapRate must be >= 0")
	}
	if t.LeaseTermYears <= 0 {
		return errors.New("LeaseTermYears must be > 0")
	}
	if t.CurrentDebtMM < 0 {
		return errors.New("CurrentDebtMM must be >= 0")
	}
	if t.DebtRate < 0 {
		return errors.New("DebtRate must be >= 0")
	}
	if t.TaxRate < 0 {
		return errors.New("TaxRate must be >= 0")
	}
	return nil
}
