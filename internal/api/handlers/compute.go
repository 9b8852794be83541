package handlers

import (
	"errors"
	"log"
	"math"
	"net/http"

	"leaseback-model/internal/analysis"
	"leaseback-model/internal/api/models"
	"leaseback-model/internal/config"
	"leaseback-model/internal/data"
	"leaseback-model/internal/leaseback"
	"leaseback-model/internal/model"

	"github.com/gin-gonic/gin"
)

// ComputeHandler handles compute and compare requests.
type ComputeHandler struct{}

// NewComputeHandler creates a new compute handler.
func NewComputeHandler() *ComputeHandler {
	return &ComputeHandler{}
}

// RunCompute handles POST /api/v1/compute.
//
// The local engine is always the source of truth. When the request opts in
// to reconciliation, the remote metrics are attached alongside the local
// result; a remote failure degrades to local-only with a warning.
func (h *ComputeHandler) RunCompute(c *gin.Context) {
	var req models.ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inputs, err := h.buildInputs(req.Transaction)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_TRANSACTION",
				Message: err.Error(),
			},
		})
		return
	}

	metrics, err := leaseback.Compute(inputs)
	if err != nil {
		var invalid *leaseback.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_INPUT",
					Message: invalid.Error(),
					Details: map[string]interface{}{
						"field": invalid.Field,
					},
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "COMPUTE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	response := models.ComputeResponse{
		Status:      "completed",
		Transaction: inputs.Name,
		Metrics:     metricsPayload(metrics),
	}
	if req.Options.IncludeFormatted {
		response.Formatted = formatMetrics(metrics)
	}
	if req.Options.Reconcile.Enabled {
		h.reconcile(&response, inputs, req.Options.Reconcile)
	}

	c.JSON(http.StatusOK, response)
}

// CompareTransactions handles POST /api/v1/compute/compare.
//
// Results come back ranked descending by rent coverage ratio, so the most
// affordable variation is always first. Variations that fail validation or
// computation are skipped.
func (h *ComputeHandler) CompareTransactions(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	scenarios := make(map[string]model.TransactionInputs, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergePayload(req.Base, variation.Transaction)
		inputs, err := h.buildInputs(merged)
		if err != nil {
			continue // Skip invalid variations
		}
		scenarios[variation.Name] = inputs
	}

	ranked := analysis.RankScenarios(scenarios)
	comparison := make([]models.ComparisonResult, 0, len(ranked))
	for _, r := range ranked {
		comparison = append(comparison, models.ComparisonResult{
			Name:    r.Name,
			Metrics: metricsPayload(r.Metrics),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

// buildInputs resolves an optional preset file, applies payload overrides,
// and range-validates the result.
func (h *ComputeHandler) buildInputs(p models.TransactionPayload) (model.TransactionInputs, error) {
	tx := payloadToConfig(p)
	if p.TransactionFile != "" {
		loaded, err := data.LoadPreset(p.TransactionFile)
		if err != nil {
			log.Printf("ComputeHandler: Failed to load transaction file %s: %v", p.TransactionFile, err)
			return model.TransactionInputs{}, err
		}
		tx = config.MergeTransaction(loaded, tx)
	}

	inputs := tx.ToModelInputs()
	if err := inputs.Validate(); err != nil {
		return model.TransactionInputs{}, err
	}
	return inputs, nil
}

func (h *ComputeHandler) reconcile(resp *models.ComputeResponse, inputs model.TransactionInputs, opts models.ReconcileOptions) {
	client := data.NewAnalysisClient(opts.APIKey, opts.BaseURL)
	remote, err := client.ComputeMetrics(inputs)
	if err != nil {
		log.Printf("ComputeHandler: Reconciliation unavailable, keeping local result: %v", err)
		resp.Warning = "reconciliation unavailable: " + err.Error()
		return
	}

	remotePayload := remoteMetricsPayload(remote.Metrics)
	deltas := map[string]float64{
		"sale_proceeds_mm":          resp.Metrics.SaleProceedsMM - remotePayload.SaleProceedsMM,
		"annual_rent_mm":            resp.Metrics.AnnualRentMM - remotePayload.AnnualRentMM,
		"net_debt_paydown_mm":       resp.Metrics.NetDebtPaydownMM - remotePayload.NetDebtPaydownMM,
		"post_transaction_debt_mm":  resp.Metrics.PostTransactionDebtMM - remotePayload.PostTransactionDebtMM,
		"rent_coverage_ratio":       resp.Metrics.RentCoverageRatio - remotePayload.RentCoverageRatio,
		"implied_rent_multiple":     resp.Metrics.ImpliedRentMultiple - remotePayload.ImpliedRentMultiple,
		"npv_rent_obligation_mm":    resp.Metrics.NpvRentObligationMM - remotePayload.NpvRentObligationMM,
		"ebitdar_mm":                resp.Metrics.EbitdarMM - remotePayload.EbitdarMM,
		"ebitdar_margin_impact_pct": resp.Metrics.EbitdarMarginImpactPct - remotePayload.EbitdarMarginImpactPct,
	}
	maxAbs := 0.0
	for _, d := range deltas {
		if a := math.Abs(d); a > maxAbs {
			maxAbs = a
		}
	}
	resp.Reconciliation = &models.Reconciliation{
		Source:      "analysis-api",
		Remote:      remotePayload,
		Deltas:      deltas,
		MaxAbsDelta: maxAbs,
	}
}

func payloadToConfig(p models.TransactionPayload) config.TransactionConfig {
	return config.TransactionConfig{
		Name:                 p.Name,
		PropertyValueMM:      p.PropertyValueMM,
		CapRate:              p.CapRate,
		LeaseTermYears:       p.LeaseTermYears,
		AnnualRentEscalation: p.AnnualRentEscalation,
		CurrentDebtMM:        p.CurrentDebtMM,
		DebtRate:             p.DebtRate,
		CurrentEbitdaMM:      p.CurrentEbitdaMM,
		TaxRate:              p.TaxRate,
	}
}

func mergePayload(base, override models.TransactionPayload) models.TransactionPayload {
	merged := config.MergeTransaction(payloadToConfig(base), payloadToConfig(override))
	out := models.TransactionPayload{
		Name:                 merged.Name,
		PropertyValueMM:      merged.PropertyValueMM,
		CapRate:              merged.CapRate,
		LeaseTermYears:       merged.LeaseTermYears,
		AnnualRentEscalation: merged.AnnualRentEscalation,
		CurrentDebtMM:        merged.CurrentDebtMM,
		DebtRate:             merged.DebtRate,
		CurrentEbitdaMM:      merged.CurrentEbitdaMM,
		TaxRate:              merged.TaxRate,
	}
	out.TransactionFile = base.TransactionFile
	if override.TransactionFile != "" {
		out.TransactionFile = override.TransactionFile
	}
	return out
}

func metricsPayload(m model.TransactionMetrics) models.MetricsPayload {
	return models.MetricsPayload{
		SaleProceedsMM:         m.SaleProceedsMM,
		AnnualRentMM:           m.AnnualRentMM,
		NetDebtPaydownMM:       m.NetDebtPaydownMM,
		PostTransactionDebtMM:  m.PostTransactionDebtMM,
		RentCoverageRatio:      m.RentCoverageRatio,
		ImpliedRentMultiple:    m.ImpliedRentMultiple,
		NpvRentObligationMM:    m.NpvRentObligationMM,
		EbitdarMM:              m.EbitdarMM,
		EbitdarMarginImpactPct: m.EbitdarMarginImpactPct,
		DebtOutcome:            string(m.DebtOutcome),
	}
}

func remoteMetricsPayload(r model.RemoteMetricSet) models.MetricsPayload {
	return models.MetricsPayload{
		SaleProceedsMM:         r.SaleProceedsMM,
		AnnualRentMM:           r.AnnualRentMM,
		NetDebtPaydownMM:       r.NetDebtPaydownMM,
		PostTransactionDebtMM:  r.PostTransactionDebtMM,
		RentCoverageRatio:      r.RentCoverageRatio,
		ImpliedRentMultiple:    r.ImpliedRentMultiple,
		NpvRentObligationMM:    r.NpvRentObligationMM,
		EbitdarMM:              r.EbitdarMM,
		EbitdarMarginImpactPct: r.EbitdarMarginImpactPct,
	}
}

func formatMetrics(m model.TransactionMetrics) *models.FormattedMetrics {
	return &models.FormattedMetrics{
		SaleProceeds:        model.FormatCurrencyMM(m.SaleProceedsMM),
		AnnualRent:          model.FormatCurrencyMM(m.AnnualRentMM),
		NetDebtPaydown:      model.FormatCurrencyMM(m.NetDebtPaydownMM),
		PostTransactionDebt: model.FormatCurrencyMM(m.PostTransactionDebtMM),
		RentCoverageRatio:   model.FormatRatio(m.RentCoverageRatio),
		ImpliedRentMultiple: model.FormatRatio(m.ImpliedRentMultiple),
		NpvRentObligation:   model.FormatCurrencyMM(m.NpvRentObligationMM),
		Ebitdar:             model.FormatCurrencyMM(m.EbitdarMM),
		EbitdarMarginImpact: model.FormatPercentPoints(m.EbitdarMarginImpactPct),
	}
}
