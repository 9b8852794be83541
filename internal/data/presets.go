package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"leaseback-model/internal/config"
)

// Preset is a ready-made transaction shipped as a YAML file under the
// preset directory (default examples/transactions).
type Preset struct {
	ID          string
	File        string
	Transaction config.TransactionConfig
}

// DefaultPresetDir resolves the preset transaction directory:
// TRANSACTION_DIR if set, otherwise <cwd>/examples/transactions.
func DefaultPresetDir() string {
	dir := os.Getenv("TRANSACTION_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "transactions")
		} else {
			dir = "./examples/transactions"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// LoadPreset loads a preset by id (the filename without extension, e.g.
// "hq_campus"), looked up under the preset directory. Ids come from API
// payloads, so anything that would resolve outside the directory is rejected.
func LoadPreset(id string) (config.TransactionConfig, error) {
	if id == "" || id == "." || id == ".." || id != filepath.Base(id) {
		return config.TransactionConfig{}, fmt.Errorf("invalid preset id %q", id)
	}
	path := filepath.Join(DefaultPresetDir(), id+".yaml")
	return config.LoadTransactionFile(path)
}

// ScanPresets lists the preset transactions in dir. Files that fail to parse
// are skipped; a missing directory yields an empty list, not an error, so
// the API can run without shipped presets.
func ScanPresets(dir string) ([]Preset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	presets := make([]Preset, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		tx, err := config.LoadTransactionFile(path)
		if err != nil {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".yaml")
		if tx.Name == "" {
			tx.Name = id
		}
		presets = append(presets, Preset{
			ID:          id,
			File:        path,
			Transaction: tx,
		})
	}
	return presets, nil
}
