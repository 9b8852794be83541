package model

// DebtOutcome is a human-friendly classification of what the sale proceeds
// did to the balance sheet. Keep these values stable; they are intended for
// CSV output.
type DebtOutcome string

const (
	OutcomePaydown   DebtOutcome = "PAYDOWN"
	OutcomeNeutral   DebtOutcome = "NEUTRAL"
	OutcomeShortfall DebtOutcome = "SHORTFALL"
)

// DebtOutcomeFromDelta classifies the raw debt delta (proceeds - debt).
// A negative delta means the sale did not cover existing debt and the
// shortfall remains as residual debt.
func DebtOutcomeFromDelta(deltaMM float64) DebtOutcome {
	switch {
	case deltaMM > 0:
		return OutcomePaydown
	case deltaMM < 0:
		return OutcomeShortfall
	default:
		return OutcomeNeutral
	}
}
