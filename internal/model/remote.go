package model

// AnalysisAPIResponse matches the JSON shape returned by the external
// analysis service's leaseback endpoint.
//
// Example:
//
//	{
//	  "status_code": 200,
//	  "metrics": { ... }
//	}
type AnalysisAPIResponse struct {
	StatusCode int             `json:"status_code"`
	Metrics    RemoteMetricSet `json:"metrics"`
}

// RemoteMetricSet is the service's metric payload. Field names mirror the
// local TransactionMetrics so the two can be reconciled key by key.
// All monetary values in millions, rates as fractions, margin impact ×100.
type RemoteMetricSet struct {
	SaleProceedsMM         float64 `json:"sale_proceeds_mm"`
	AnnualRentMM           float64 `json:"annual_rent_mm"`
	NetDebtPaydownMM       float64 `json:"net_debt_paydown_mm"`
	PostTransactionDebtMM  float64 `json:"post_transaction_debt_mm"`
	RentCoverageRatio      float64 `json:"rent_coverage_ratio"`
	ImpliedRentMultiple    float64 `json:"implied_rent_multiple"`
	NpvRentObligationMM    float64 `json:"npv_rent_obligation_mm"`
	EbitdarMM              float64 `json:"ebitdar_mm"`
	EbitdarMarginImpactPct float64 `json:"ebitdar_margin_impact_pct"`
}
