package model

// TransactionMetrics is the derived output of a sale-leaseback computation.
// Every field is recomputed on each call; nothing here is cached or mutated.
// Units match TransactionInputs: monetary fields in millions, ratios as
// multiples. EbitdarMarginImpactPct is the one percent-scaled field (×100),
// kept on its historical scale.
type TransactionMetrics struct {
	SaleProceedsMM         float64
	AnnualRentMM           float64
	NetDebtPaydownMM       float64
	PostTransactionDebtMM  float64
	RentCoverageRatio      float64
	ImpliedRentMultiple    float64
	NpvRentObligationMM    float64
	EbitdarMM              float64
	EbitdarMarginImpactPct float64

	// DebtOutcome classifies the sign of (proceeds - current debt).
	DebtOutcome DebtOutcome
}
