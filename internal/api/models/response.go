package models

// ComputeResponse represents the response from a compute request.
type ComputeResponse struct {
	Status         string            `json:"status"`
	Transaction    string            `json:"transaction,omitempty"`
	Metrics        MetricsPayload    `json:"metrics"`
	Formatted      *FormattedMetrics `json:"formatted,omitempty"`
	Reconciliation *Reconciliation   `json:"reconciliation,omitempty"`
	Warning        string            `json:"warning,omitempty"`
}

// MetricsPayload is the derived metric set in wire form.
type MetricsPayload struct {
	SaleProceedsMM         float64 `json:"sale_proceeds_mm"`
	AnnualRentMM           float64 `json:"annual_rent_mm"`
	NetDebtPaydownMM       float64 `json:"net_debt_paydown_mm"`
	PostTransactionDebtMM  float64 `json:"post_transaction_debt_mm"`
	RentCoverageRatio      float64 `json:"rent_coverage_ratio"`
	ImpliedRentMultiple    float64 `json:"implied_rent_multiple"`
	NpvRentObligationMM    float64 `json:"npv_rent_obligation_mm"`
	EbitdarMM              float64 `json:"ebitdar_mm"`
	EbitdarMarginImpactPct float64 `json:"ebitdar_margin_impact_pct"`
	DebtOutcome            string  `json:"debt_outcome"`
}

// FormattedMetrics carries the display strings the web shell renders
// ("$X.XM" / "X.X%" / "X.Xx"). Included only when requested.
type FormattedMetrics struct {
	SaleProceeds        string `json:"sale_proceeds"`
	AnnualRent          string `json:"annual_rent"`
	NetDebtPaydown      string `json:"net_debt_paydown"`
	PostTransactionDebt string `json:"post_transaction_debt"`
	RentCoverageRatio   string `json:"rent_coverage_ratio"`
	ImpliedRentMultiple string `json:"implied_rent_multiple"`
	NpvRentObligation   string `json:"npv_rent_obligation"`
	Ebitdar             string `json:"ebitdar"`
	EbitdarMarginImpact string `json:"ebitdar_margin_impact"`
}

// Reconciliation compares the authoritative local metrics with the analysis
// service's values. Deltas are local minus remote, keyed by metric name.
type Reconciliation struct {
	Source      string             `json:"source"`
	Remote      MetricsPayload     `json:"remote"`
	Deltas      map[string]float64 `json:"deltas"`
	MaxAbsDelta float64            `json:"max_abs_delta"`
}

// CompareResponse represents the response from a comparison.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains metrics for one variation.
type ComparisonResult struct {
	Name    string         `json:"name"`
	Metrics MetricsPayload `json:"metrics"`
}

// SensitivityResponse represents the response from a cap-rate sweep.
type SensitivityResponse struct {
	Points []SensitivityPoint `json:"points"`
}

// SensitivityPoint is one grid point of the sweep.
type SensitivityPoint struct {
	Index   int            `json:"index"`
	CapRate float64        `json:"cap_rate"`
	Metrics MetricsPayload `json:"metrics"`
}

// PresetInfo represents information about a preset transaction.
type PresetInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	File  string      `json:"file"`
	Terms PresetTerms `json:"terms"`
}

// PresetTerms contains the headline terms of a preset.
type PresetTerms struct {
	PropertyValueMM float64 `json:"property_value_mm"`
	CapRate         float64 `json:"cap_rate"`
	LeaseTermYears  float64 `json:"lease_term_years"`
}

// MetricInfo describes one output metric for the catalog endpoint.
type MetricInfo struct {
	Name        string `json:"name"`
	Unit        string `json:"unit"` // "mm", "ratio", "percent"
	Description string `json:"description"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
