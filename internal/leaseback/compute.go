package leaseback

import (
	"math"

	"leaseback-model/internal/model"
)

// npvFlatDiscount is the flat discount applied to the undiscounted rent
// obligation (rent * term * 0.85). This is a documented approximation of a
// multi-year discounted cash flow, kept on purpose until product confirms a
// real growing-annuity formula. Do not "fix" it here.
const npvFlatDiscount = 0.85

// Compute derives the full metric set for a sale-leaseback transaction.
// It is a single-pass, pure transform: no state, no caching, identical
// inputs always produce identical outputs.
//
// Divisor guards return *InvalidInputError instead of letting a zero
// divisor propagate as Inf/NaN the way the historical float division did:
//   - AnnualRent <= 0 (CapRate or PropertyValueMM non-positive) fails before
//     the coverage/multiple ratios are formed.
//   - CurrentEbitdaMM == 0 fails before the coverage and margin-impact
//     ratios are formed.
//
// AnnualRentEscalation, DebtRate and TaxRate are accepted but do not enter
// any derived metric; see the config docs for the open product question.
func Compute(in model.TransactionInputs) (model.TransactionMetrics, error) {
	annualRent := in.PropertyValueMM * in.CapRate
	if annualRent <= 0 {
		field := "cap_rate"
		if in.CapRate > 0 {
			field = "property_value"
		}
		return model.TransactionMetrics{}, &InvalidInputError{
			Field:  field,
			Reason: "annual rent (property_value * cap_rate) must be > 0 to form rent ratios",
		}
	}
	if in.CurrentEbitdaMM == 0 {
		return model.TransactionMetrics{}, &InvalidInputError{
			Field:  "current_ebitda",
			Reason: "must be non-zero to form coverage and margin-impact ratios",
		}
	}

	rawDebtDelta := in.PropertyValueMM - in.CurrentDebtMM

	// Proceeds either pay down debt or the shortfall remains as residual
	// debt; the two are never simultaneously non-zero.
	netPaydown := math.Max(rawDebtDelta, 0)
	residualDebt := 0.0
	if rawDebtDelta < 0 {
		residualDebt = math.Abs(rawDebtDelta)
	}

	return model.TransactionMetrics{
		SaleProceedsMM:         in.PropertyValueMM,
		AnnualRentMM:           annualRent,
		NetDebtPaydownMM:       netPaydown,
		PostTransactionDebtMM:  residualDebt,
		RentCoverageRatio:      in.CurrentEbitdaMM / annualRent,
		ImpliedRentMultiple:    in.PropertyValueMM / annualRent,
		NpvRentObligationMM:    annualRent * in.LeaseTermYears * npvFlatDiscount,
		EbitdarMM:              in.CurrentEbitdaMM + annualRent,
		EbitdarMarginImpactPct: (annualRent / in.CurrentEbitdaMM) * 100,
		DebtOutcome:            model.DebtOutcomeFromDelta(rawDebtDelta),
	}, nil
}
