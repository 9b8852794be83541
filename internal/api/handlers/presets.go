package handlers

import (
	"log"
	"net/http"

	"leaseback-model/internal/api/models"
	"leaseback-model/internal/data"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles preset transaction requests.
type TransactionHandler struct {
	presetDir string
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler() *TransactionHandler {
	dir := data.DefaultPresetDir()
	log.Printf("TransactionHandler: Using preset directory: %s", dir)
	return &TransactionHandler{presetDir: dir}
}

// GetPresetDir returns the preset directory path (for debugging).
func (h *TransactionHandler) GetPresetDir() string {
	return h.presetDir
}

// ListTransactions handles GET /api/v1/transactions.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	out := []models.PresetInfo{}

	presets, err := data.ScanPresets(h.presetDir)
	if err != nil {
		log.Printf("TransactionHandler: Failed to read preset directory %s: %v", h.presetDir, err)
		c.JSON(http.StatusOK, gin.H{"transactions": out})
		return
	}

	for _, p := range presets {
		out = append(out, models.PresetInfo{
			ID:   p.ID,
			Name: p.Transaction.Name,
			File: p.File,
			Terms: models.PresetTerms{
				PropertyValueMM: p.Transaction.PropertyValueMM,
				CapRate:         p.Transaction.CapRate,
				LeaseTermYears:  p.Transaction.LeaseTermYears,
			},
		})
	}

	log.Printf("TransactionHandler: Returning %d presets", len(out))
	c.JSON(http.StatusOK, gin.H{"transactions": out})
}
