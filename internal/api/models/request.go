package models

// ComputeRequest represents the request body for computing a transaction.
type ComputeRequest struct {
	Transaction TransactionPayload `json:"transaction" binding:"required"`
	Options     ComputeOptions     `json:"options,omitempty"`
}

// TransactionPayload carries transaction terms over the wire. If
// transaction_file is set, the named preset is loaded first and non-zero
// fields here override it.
type TransactionPayload struct {
	TransactionFile      string  `json:"transaction_file,omitempty"`
	Name                 string  `json:"name,omitempty"`
	PropertyValueMM      float64 `json:"property_value_mm"`
	CapRate              float64 `json:"cap_rate"`
	LeaseTermYears       float64 `json:"lease_term_years"`
	AnnualRentEscalation float64 `json:"annual_rent_escalation,omitempty"`
	CurrentDebtMM        float64 `json:"current_debt_mm"`
	DebtRate             float64 `json:"debt_rate,omitempty"`
	CurrentEbitdaMM      float64 `json:"current_ebitda_mm"`
	TaxRate              float64 `json:"tax_rate,omitempty"`
}

// ComputeOptions contains optional compute parameters.
type ComputeOptions struct {
	IncludeFormatted bool             `json:"include_formatted,omitempty"` // default: false
	Reconcile        ReconcileOptions `json:"reconcile,omitempty"`
}

// ReconcileOptions opts in to reconciling the local result against the
// external analysis service. The local result is always authoritative.
type ReconcileOptions struct {
	Enabled bool   `json:"enabled,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"` // override for testing
}

// CompareRequest represents a request to compute multiple variations of a
// base transaction.
type CompareRequest struct {
	Base       TransactionPayload `json:"base" binding:"required"`
	Variations []Variation        `json:"variations" binding:"required"`
}

// Variation defines one variation to compute.
type Variation struct {
	Name        string             `json:"name" binding:"required"`
	Transaction TransactionPayload `json:"transaction"`
}

// SensitivityRequest represents a request to sweep the cap rate.
type SensitivityRequest struct {
	PropertyValueMM      float64 `form:"property_value_mm" binding:"required"`
	LeaseTermYears       float64 `form:"lease_term_years" binding:"required"`
	CurrentDebtMM        float64 `form:"current_debt_mm"`
	CurrentEbitdaMM      float64 `form:"current_ebitda_mm" binding:"required"`
	AnnualRentEscalation float64 `form:"annual_rent_escalation"`
	DebtRate             float64 `form:"debt_rate"`
	TaxRate              float64 `form:"tax_rate"`
	CapRateMin           float64 `form:"cap_rate_min" binding:"required"`
	CapRateMax           float64 `form:"cap_rate_max" binding:"required"`
	Steps                int     `form:"steps"` // default: 9
}
