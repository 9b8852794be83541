package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"leaseback-model/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load transaction terms from a separate YAML
	// (e.g. examples/transactions/*.yaml). If both TransactionFile and
	// Transaction are provided, non-zero Transaction fields override the file.
	TransactionFile string            `yaml:"transaction_file"`
	Transaction     TransactionConfig `yaml:"transaction"`
	Sweep           SweepConfig       `yaml:"sweep"`
}

type TransactionConfig struct {
	Name                 string  `yaml:"name"`
	PropertyValueMM      float64 `yaml:"property_value_mm"`
	CapRate              float64 `yaml:"cap_rate"`
	LeaseTermYears       float64 `yaml:"lease_term_years"`
	AnnualRentEscalation float64 `yaml:"annual_rent_escalation"`
	CurrentDebtMM        float64 `yaml:"current_debt_mm"`
	DebtRate             float64 `yaml:"debt_rate"`
	CurrentEbitdaMM      float64 `yaml:"current_ebitda_mm"`
	TaxRate              float64 `yaml:"tax_rate"`
}

// SweepConfig parameterizes the optional cap-rate sensitivity sweep.
type SweepConfig struct {
	CapRateMin float64 `yaml:"cap_rate_min"`
	CapRateMax float64 `yaml:"cap_rate_max"`
	Steps      int     `yaml:"steps"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If transaction_file is set, load it and merge in any explicit overrides
	// from c.Transaction.
	if c.TransactionFile != "" {
		txPath := c.TransactionFile
		if !filepath.IsAbs(txPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), txPath)
			if _, err := os.Stat(cand); err == nil {
				txPath = cand
			}
		}
		loaded, err := LoadTransactionFile(txPath)
		if err != nil {
			return nil, err
		}
		c.Transaction = MergeTransaction(loaded, c.Transaction)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Transaction.ToModelInputs().Validate(); err != nil {
		return fmt.Errorf("transaction config invalid: %w", err)
	}
	return nil
}

func (t TransactionConfig) ToModelInputs() model.TransactionInputs {
	return model.TransactionInputs{
		Name:                 t.Name,
		PropertyValueMM:      t.PropertyValueMM,
		CapRate:              t.CapRate,
		LeaseTermYears:       t.LeaseTermYears,
		AnnualRentEscalation: t.AnnualRentEscalation,
		CurrentDebtMM:        t.CurrentDebtMM,
		DebtRate:             t.DebtRate,
		CurrentEbitdaMM:      t.CurrentEbitdaMM,
		TaxRate:              t.TaxRate,
	}
}

type transactionFileWrapper struct {
	Transaction TransactionConfig `yaml:"transaction"`
}

// LoadTransactionFile reads a standalone transaction YAML
// (the examples/transactions/*.yaml preset shape).
func LoadTransactionFile(path string) (TransactionConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TransactionConfig{}, err
	}
	var w transactionFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return TransactionConfig{}, err
	}
	return w.Transaction, nil
}

// MergeTransaction overlays non-zero fields from override onto base.
// This is used when loading a transaction file and then applying overrides
// from the config or an API request.
func MergeTransaction(base, override TransactionConfig) TransactionConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.PropertyValueMM != 0 {
		out.PropertyValueMM = override.PropertyValueMM
	}
	if override.CapRate != 0 {
		out.CapRate = override.CapRate
	}
	if override.LeaseTermYears != 0 {
		out.LeaseTermYears = override.LeaseTermYears
	}
	if override.AnnualRentEscalation != 0 {
		out.AnnualRentEscalation = override.AnnualRentEscalation
	}
	if override.CurrentDebtMM != 0 {
		out.CurrentDebtMM = override.CurrentDebtMM
	}
	if override.DebtRate != 0 {
		out.DebtRate = override.DebtRate
	}
	if override.CurrentEbitdaMM != 0 {
		out.CurrentEbitdaMM = override.CurrentEbitdaMM
	}
	if override.TaxRate != 0 {
		out.TaxRate = override.TaxRate
	}
	return out
}
