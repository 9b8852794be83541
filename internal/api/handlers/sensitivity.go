package handlers

import (
	"net/http"

	"leaseback-model/internal/analysis"
	"leaseback-model/internal/api/models"
	"leaseback-model/internal/model"

	"github.com/gin-gonic/gin"
)

// SensitivityHandler handles cap-rate sweep requests.
type SensitivityHandler struct{}

// NewSensitivityHandler creates a new sensitivity handler.
func NewSensitivityHandler() *SensitivityHandler {
	return &SensitivityHandler{}
}

// RunSweep handles GET /api/v1/sensitivity.
func (h *SensitivityHandler) RunSweep(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	steps := req.Steps
	if steps == 0 {
		steps = 9
	}

	inputs := model.TransactionInputs{
		PropertyValueMM:      req.PropertyValueMM,
		CapRate:              req.CapRateMin, // placeholder; the sweep sets it per point
		LeaseTermYears:       req.LeaseTermYears,
		AnnualRentEscalation: req.AnnualRentEscalation,
		CurrentDebtMM:        req.CurrentDebtMM,
		DebtRate:             req.DebtRate,
		CurrentEbitdaMM:      req.CurrentEbitdaMM,
		TaxRate:              req.TaxRate,
	}
	if err := inputs.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_TRANSACTION",
				Message: err.Error(),
			},
		})
		return
	}

	points, err := analysis.SweepCapRate(inputs, analysis.SweepParams{
		CapRateMin: req.CapRateMin,
		CapRateMax: req.CapRateMax,
		Steps:      steps,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SWEEP_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	out := make([]models.SensitivityPoint, len(points))
	for i, p := range points {
		out[i] = models.SensitivityPoint{
			Index:   p.Index,
			CapRate: p.CapRate,
			Metrics: metricsPayload(p.Metrics),
		}
	}
	c.JSON(http.StatusOK, models.SensitivityResponse{Points: out})
}
