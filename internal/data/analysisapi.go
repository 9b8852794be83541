package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"leaseback-model/internal/model"
)

// AnalysisClient talks to the external analysis service that also prices
// sale-leaseback transactions. The local engine is always authoritative;
// this client exists so callers can reconcile against the service, never as
// a substitute for the local computation.
type AnalysisClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewAnalysisClient creates a new analysis service client.
// If baseURL is empty, defaults to "https://api.analysis.example.com".
func NewAnalysisClient(apiKey string, baseURL string) *AnalysisClient {
	if baseURL == "" {
		baseURL = "https://api.analysis.example.com"
	}
	return &AnalysisClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// AnalysisAPIError represents an error from the analysis service.
type AnalysisAPIError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // For rate limit errors
}

func (e *AnalysisAPIError) Error() string {
	return e.Message
}

// metricsRequest is the wire shape of the service's leaseback endpoint.
type metricsRequest struct {
	PropertyValueMM      float64 `json:"property_value_mm"`
	CapRate              float64 `json:"cap_rate"`
	LeaseTermYears       float64 `json:"lease_term_years"`
	AnnualRentEscalation float64 `json:"annual_rent_escalation"`
	CurrentDebtMM        float64 `json:"current_debt_mm"`
	DebtRate             float64 `json:"debt_rate"`
	CurrentEbitdaMM      float64 `json:"current_ebitda_mm"`
	TaxRate              float64 `json:"tax_rate"`
}

// ComputeMetrics posts the transaction to the analysis service and decodes
// its metric set.
//
// WARNING: If caching is enabled (ENABLE_ANALYSIS_CACHE=true), responses may
// be cached. Caching is ONLY for LOCAL DEVELOPMENT; it is automatically
// disabled when API_ENV=production.
func (c *AnalysisClient) ComputeMetrics(in model.TransactionInputs) (*model.AnalysisAPIResponse, error) {
	if err := c.validateAPIKey(); err != nil {
		return nil, err
	}

	payload := metricsRequest{
		PropertyValueMM:      in.PropertyValueMM,
		CapRate:              in.CapRate,
		LeaseTermYears:       in.LeaseTermYears,
		AnnualRentEscalation: in.AnnualRentEscalation,
		CurrentDebtMM:        in.CurrentDebtMM,
		DebtRate:             in.DebtRate,
		CurrentEbitdaMM:      in.CurrentEbitdaMM,
		TaxRate:              in.TaxRate,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	// Check cache first (only if enabled for development).
	cache := GetCache()
	cacheKey := GenerateCacheKey(c.BaseURL, body)
	if cache != nil {
		if cached, found := cache.Get(cacheKey); found {
			log.Printf("[AnalysisAPI] Cache hit: Using cached metrics (transaction=%s)", in.Name)
			return cached, nil
		}
	}

	url := c.BaseURL + "/v1/leaseback/metrics"
	req, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Printf("[AnalysisAPI] Request: POST /v1/leaseback/metrics (transaction=%s, property_value=%.1f, cap_rate=%.4f)",
		in.Name, in.PropertyValueMM, in.CapRate)

	startTime := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("[AnalysisAPI] Request failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[AnalysisAPI] Response: %d %s (duration: %v, transaction=%s)",
		resp.StatusCode, resp.Status, duration, in.Name)

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusForbidden:
		log.Printf("[AnalysisAPI] Error: 403 Forbidden - Invalid API key or insufficient permissions (transaction=%s)", in.Name)
		return nil, &AnalysisAPIError{
			StatusCode: resp.StatusCode,
			Code:       "INVALID_API_KEY",
			Message:    "Invalid API key or insufficient permissions",
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		log.Printf("[AnalysisAPI] Error: 429 Rate Limit Exceeded - Retry after: %s (transaction=%s)", retryAfter, in.Name)
		return nil, &AnalysisAPIError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	case http.StatusUnauthorized:
		log.Printf("[AnalysisAPI] Error: 401 Unauthorized - Invalid API key (transaction=%s)", in.Name)
		return nil, &AnalysisAPIError{
			StatusCode: resp.StatusCode,
			Code:       "UNAUTHORIZED",
			Message:    "Unauthorized: Invalid API key",
		}
	default:
		log.Printf("[AnalysisAPI] Error: %d %s (transaction=%s)", resp.StatusCode, resp.Status, in.Name)
		return nil, &AnalysisAPIError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var result model.AnalysisAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[AnalysisAPI] Error decoding response: %v (transaction=%s)", err, in.Name)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if cache := GetCache(); cache != nil {
		cache.Set(cacheKey, &result)
		log.Printf("[AnalysisAPI] Cached response (transaction=%s)", in.Name)
	}

	return &result, nil
}

// validateAPIKey validates that the API key is present and not obviously invalid.
func (c *AnalysisClient) validateAPIKey() error {
	if c.APIKey == "" {
		return &AnalysisAPIError{
			StatusCode: 0,
			Code:       "MISSING_API_KEY",
			Message:    "API key is required",
		}
	}
	// Basic validation: reject obviously bad keys without guessing the format.
	if len(c.APIKey) < 10 {
		return &AnalysisAPIError{
			StatusCode: 0,
			Code:       "INVALID_API_KEY_FORMAT",
			Message:    "API key appears to be invalid (too short)",
		}
	}
	return nil
}
