// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config holds the runtime configuration of the export subsystem.
// Values come from the environment and are overlaid on built-in defaults;
// nothing here is secret material.
package config

import (
	"os"

	"dario.cat/mergo"
)

// ExportConfig configures the export pipeline wiring.
type ExportConfig struct {
	// StorePath is the SQLite vault store location.
	StorePath string `env:"SIMPLE_VAULT_STORE_PATH"`

	// ScratchDir is the directory for encrypted scratch files. Defaults to
	// the OS temp directory.
	ScratchDir string `env:"SIMPLE_VAULT_SCRATCH_DIR"`

	// ExportedBy is the application label embedded in export metadata.
	ExportedBy string `env:"SIMPLE_VAULT_EXPORTED_BY"`
}

// DefaultConfig returns the built-in defaults used when the corresponding
// environment variables are unset.
func DefaultConfig() ExportConfig {
	return ExportConfig{
		StorePath:  "simple-vault.db",
		ScratchDir: os.TempDir(),
		ExportedBy: "SimpleVault",
	}
}

// Load builds the effective configuration: environment values first,
// defaults filling every field the environment left empty.
func Load() (ExportConfig, error) {
	cfg, err := parseEnv()
	if err != nil {
		return ExportConfig{}, err
	}

	if err = mergo.Merge(&cfg, DefaultConfig()); err != nil {
		return ExportConfig{}, err
	}

	return cfg, nil
}
