package handlers

import (
	"net/http"

	"leaseback-model/internal/api/models"

	"github.com/gin-gonic/gin"
)

// MetricsHandler serves the output metric catalog.
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ListMetrics handles GET /api/v1/metrics. The web shell uses this catalog
// to label output fields without hardcoding descriptions client-side.
func (h *MetricsHandler) ListMetrics(c *gin.Context) {
	metrics := []models.MetricInfo{
		{
			Name:        "sale_proceeds_mm",
			Unit:        "mm",
			Description: "Gross proceeds from the property sale (equals the sale price).",
		},
		{
			Name:        "annual_rent_mm",
			Unit:        "mm",
			Description: "First-year rent: property value times the cap rate.",
		},
		{
			Name:        "net_debt_paydown_mm",
			Unit:        "mm",
			Description: "Debt retired with sale proceeds. Zero when proceeds fall short of current debt.",
		},
		{
			Name:        "post_transaction_debt_mm",
			Unit:        "mm",
			Description: "Residual debt after applying proceeds. Zero when proceeds cover current debt.",
		},
		{
			Name:        "rent_coverage_ratio",
			Unit:        "ratio",
			Description: "EBITDA divided by annual rent; ability to service the new lease.",
		},
		{
			Name:        "implied_rent_multiple",
			Unit:        "ratio",
			Description: "Property value divided by annual rent (inverse of the cap rate).",
		},
		{
			Name:        "npv_rent_obligation_mm",
			Unit:        "mm",
			Description: "Rent times lease term with a flat 15% discount; an approximation, not a full DCF.",
		},
		{
			Name:        "ebitdar_mm",
			Unit:        "mm",
			Description: "EBITDA with the new rent added back.",
		},
		{
			Name:        "ebitdar_margin_impact_pct",
			Unit:        "percent",
			Description: "Annual rent as a percentage of EBITDA. Already percent-scaled (13.0 means 13%).",
		},
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}
