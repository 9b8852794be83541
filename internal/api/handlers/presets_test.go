package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"leaseback-model/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hq_campus.yaml"), []byte(`
transaction:
  name: HQ campus
  property_value_mm: 100
  cap_rate: 0.07
  lease_term_years: 20
`), 0o644))
	t.Setenv("TRANSACTION_DIR", dir)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/transactions", NewTransactionHandler().ListTransactions)

	req := httptest.NewRequest("GET", "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Transactions []models.PresetInfo `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "hq_campus", resp.Transactions[0].ID)
	assert.Equal(t, "HQ campus", resp.Transactions[0].Name)
	assert.Equal(t, 100.0, resp.Transactions[0].Terms.PropertyValueMM)
}

func TestListTransactions_MissingDir(t *testing.T) {
	t.Setenv("TRANSACTION_DIR", filepath.Join(t.TempDir(), "nope"))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/transactions", NewTransactionHandler().ListTransactions)

	req := httptest.NewRequest("GET", "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Transactions []models.PresetInfo `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Transactions)
}

func TestListMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/metrics", NewMetricsHandler().ListMetrics)

	req := httptest.NewRequest("GET", "/api/v1/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Metrics []models.MetricInfo `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Metrics, 9)

	names := map[string]bool{}
	for _, m := range resp.Metrics {
		names[m.Name] = true
		assert.NotEmpty(t, m.Unit)
		assert.NotEmpty(t, m.Description)
	}
	assert.True(t, names["annual_rent_mm"])
	assert.True(t, names["rent_coverage_ratio"])
	assert.True(t, names["ebitdar_margin_impact_pct"])
}
