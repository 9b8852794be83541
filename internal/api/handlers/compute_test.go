package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leaseback-model/internal/api/models"
	"leaseback-model/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	computeHandler := NewComputeHandler()
	router.POST("/api/v1/compute", computeHandler.RunCompute)
	router.POST("/api/v1/compute/compare", computeHandler.CompareTransactions)
	router.GET("/api/v1/sensitivity", NewSensitivityHandler().RunSweep)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func basePayload() models.TransactionPayload {
	return models.TransactionPayload{
		Name:            "hq",
		PropertyValueMM: 100,
		CapRate:         0.065,
		LeaseTermYears:  20,
		CurrentDebtMM:   80,
		CurrentEbitdaMM: 50,
	}
}

func TestRunCompute(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/compute", models.ComputeRequest{Transaction: basePayload()})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ComputeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "hq", resp.Transaction)
	assert.InDelta(t, 6.5, resp.Metrics.AnnualRentMM, 1e-9)
	assert.InDelta(t, 20, resp.Metrics.NetDebtPaydownMM, 1e-9)
	assert.Equal(t, 0.0, resp.Metrics.PostTransactionDebtMM)
	assert.Equal(t, string(model.OutcomePaydown), resp.Metrics.DebtOutcome)
	assert.Nil(t, resp.Formatted)
	assert.Nil(t, resp.Reconciliation)
}

func TestRunCompute_IncludeFormatted(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/compute", models.ComputeRequest{
		Transaction: basePayload(),
		Options:     models.ComputeOptions{IncludeFormatted: true},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ComputeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Formatted)
	assert.Equal(t, "$6.5M", resp.Formatted.AnnualRent)
	assert.Equal(t, "$110.5M", resp.Formatted.NpvRentObligation)
	assert.Equal(t, "7.7x", resp.Formatted.RentCoverageRatio)
	assert.Equal(t, "13.0%", resp.Formatted.EbitdarMarginImpact)
}

func TestRunCompute_InvalidInput(t *testing.T) {
	router := newTestRouter()

	payload := basePayload()
	payload.CapRate = 0

	w := postJSON(t, router, "/api/v1/compute", models.ComputeRequest{Transaction: payload})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
	assert.Equal(t, "cap_rate", resp.Error.Details["field"])
}

func TestRunCompute_InvalidTransaction(t *testing.T) {
	router := newTestRouter()

	payload := basePayload()
	payload.PropertyValueMM = -10

	w := postJSON(t, router, "/api/v1/compute", models.ComputeRequest{Transaction: payload})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_TRANSACTION", resp.Error.Code)
}

func TestRunCompute_MalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("POST", "/api/v1/compute", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestRunCompute_ReconcileAttachesRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.AnalysisAPIResponse{
			StatusCode: 200,
			Metrics: model.RemoteMetricSet{
				SaleProceedsMM:         100,
				AnnualRentMM:           6.5,
				NetDebtPaydownMM:       20,
				RentCoverageRatio:      7.6923076923,
				ImpliedRentMultiple:    15.3846153846,
				NpvRentObligationMM:    110.5,
				EbitdarMM:              56.5,
				EbitdarMarginImpactPct: 13.0,
			},
		})
	}))
	defer srv.Close()

	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/compute", models.ComputeRequest{
		Transaction: basePayload(),
		Options: models.ComputeOptions{
			Reconcile: models.ReconcileOptions{
				Enabled: true,
				APIKey:  "test-key-1234567890",
				BaseURL: srv.URL,
			},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ComputeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Reconciliation)
	assert.Equal(t, "analysis-api", resp.Reconciliation.Source)
	assert.Empty(t, resp.Warning)
	// Remote agrees with the local engine within float noise.
	assert.Less(t, resp.Reconciliation.MaxAbsDelta, 1e-6)
	// Local metrics are untouched by reconciliation.
	assert.InDelta(t, 6.5, resp.Metrics.AnnualRentMM, 1e-9)
}

func TestRunCompute_ReconcileDegradesToLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/compute", models.ComputeRequest{
		Transaction: basePayload(),
		Options: models.ComputeOptions{
			Reconcile: models.ReconcileOptions{
				Enabled: true,
				APIKey:  "test-key-1234567890",
				BaseURL: srv.URL,
			},
		},
	})
	// Remote failure never fails the request; the local result stands.
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ComputeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Reconciliation)
	assert.Contains(t, resp.Warning, "reconciliation unavailable")
	assert.InDelta(t, 6.5, resp.Metrics.AnnualRentMM, 1e-9)
}

func TestCompareTransactions(t *testing.T) {
	router := newTestRouter()

	// Request order is worst-first; the response must come back ranked by
	// rent coverage, best-first.
	w := postJSON(t, router, "/api/v1/compute/compare", models.CompareRequest{
		Base: basePayload(),
		Variations: []models.Variation{
			{Name: "higher cap rate", Transaction: models.TransactionPayload{CapRate: 0.08}},
			{Name: "as proposed"},
			{Name: "broken", Transaction: models.TransactionPayload{PropertyValueMM: -5}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comparison, 2, "invalid variation must be skipped")

	assert.Equal(t, "as proposed", resp.Comparison[0].Name)
	assert.InDelta(t, 6.5, resp.Comparison[0].Metrics.AnnualRentMM, 1e-9)

	assert.Equal(t, "higher cap rate", resp.Comparison[1].Name)
	assert.InDelta(t, 8.0, resp.Comparison[1].Metrics.AnnualRentMM, 1e-9)
	assert.Less(t, resp.Comparison[1].Metrics.RentCoverageRatio, resp.Comparison[0].Metrics.RentCoverageRatio)
}

func TestRunSweep(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET",
		"/api/v1/sensitivity?property_value_mm=100&lease_term_years=20&current_debt_mm=80&current_ebitda_mm=50&cap_rate_min=0.05&cap_rate_max=0.09&steps=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Points, 5)
	assert.InDelta(t, 0.05, resp.Points[0].CapRate, 1e-12)
	assert.InDelta(t, 0.09, resp.Points[4].CapRate, 1e-12)
}

func TestRunSweep_MissingParams(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/api/v1/sensitivity?property_value_mm=100", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}
