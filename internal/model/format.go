package model

import "fmt"

// Display formatting for the UI/CLI layer. These are presentation helpers
// only; the core compute contract stays numeric.

// FormatCurrencyMM renders a millions-denominated value as "$X.XM".
func FormatCurrencyMM(vMM float64) string {
	if vMM < 0 {
		return fmt.Sprintf("-$%.1fM", -vMM)
	}
	return fmt.Sprintf("$%.1fM", vMM)
}

// FormatPercent renders a decimal fraction (0.065) as "6.5%".
func FormatPercent(frac float64) string {
	return fmt.Sprintf("%.1f%%", frac*100)
}

// FormatPercentPoints renders an already percent-scaled value (13.0) as "13.0%".
// Used for EbitdarMarginImpactPct, which is ×100 by contract.
func FormatPercentPoints(pts float64) string {
	return fmt.Sprintf("%.1f%%", pts)
}

// FormatRatio renders a multiple as "X.Xx" (e.g. 7.7x coverage).
func FormatRatio(r float64) string {
	return fmt.Sprintf("%.1fx", r)
}
