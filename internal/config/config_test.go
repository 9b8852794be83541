package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_InlineTransaction(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
transaction:
  name: hq
  property_value_mm: 100
  cap_rate: 0.065
  lease_term_years: 20
  current_debt_mm: 80
  current_ebitda_mm: 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hq", cfg.Transaction.Name)
	assert.Equal(t, 100.0, cfg.Transaction.PropertyValueMM)
	assert.Equal(t, 0.065, cfg.Transaction.CapRate)
}

func TestLoad_TransactionFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hq.yaml", `
transaction:
  name: hq
  property_value_mm: 100
  cap_rate: 0.07
  lease_term_years: 20
  current_debt_mm: 80
  current_ebitda_mm: 50
`)
	// transaction_file resolves relative to the config directory; the inline
	// cap_rate overrides the file's.
	path := writeFile(t, dir, "config.yaml", `
transaction_file: hq.yaml
transaction:
  cap_rate: 0.065
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hq", cfg.Transaction.Name)
	assert.Equal(t, 0.065, cfg.Transaction.CapRate)
	assert.Equal(t, 100.0, cfg.Transaction.PropertyValueMM)
	assert.Equal(t, 20.0, cfg.Transaction.LeaseTermYears)
}

func TestLoad_RejectsInvalidTransaction(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
transaction:
  property_value_mm: -10
  cap_rate: 0.065
  lease_term_years: 20
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingTransactionFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
transaction_file: nope.yaml
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMergeTransaction(t *testing.T) {
	base := TransactionConfig{
		Name:            "base",
		PropertyValueMM: 100,
		CapRate:         0.07,
		LeaseTermYears:  20,
		CurrentDebtMM:   80,
		CurrentEbitdaMM: 50,
	}
	override := TransactionConfig{
		Name:    "variant",
		CapRate: 0.06,
	}

	out := MergeTransaction(base, override)
	assert.Equal(t, "variant", out.Name)
	assert.Equal(t, 0.06, out.CapRate)
	assert.Equal(t, 100.0, out.PropertyValueMM)
	assert.Equal(t, 50.0, out.CurrentEbitdaMM)
}

func TestToModelInputs(t *testing.T) {
	tx := TransactionConfig{
		Name:                 "hq",
		PropertyValueMM:      100,
		CapRate:              0.065,
		LeaseTermYears:       20,
		AnnualRentEscalation: 0.02,
		CurrentDebtMM:        80,
		DebtRate:             0.055,
		CurrentEbitdaMM:      50,
		TaxRate:              0.25,
	}
	in := tx.ToModelInputs()
	assert.Equal(t, tx.Name, in.Name)
	assert.Equal(t, tx.PropertyValueMM, in.PropertyValueMM)
	assert.Equal(t, tx.AnnualRentEscalation, in.AnnualRentEscalation)
	assert.Equal(t, tx.TaxRate, in.TaxRate)
}
