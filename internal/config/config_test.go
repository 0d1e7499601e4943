// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SIMPLE_VAULT_STORE_PATH", "")
	t.Setenv("SIMPLE_VAULT_SCRATCH_DIR", "")
	t.Setenv("SIMPLE_VAULT_EXPORTED_BY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "simple-vault.db", cfg.StorePath)
	assert.Equal(t, os.TempDir(), cfg.ScratchDir)
	assert.Equal(t, "SimpleVault", cfg.ExportedBy)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("SIMPLE_VAULT_STORE_PATH", "/var/lib/sv/store.db")
	t.Setenv("SIMPLE_VAULT_SCRATCH_DIR", "/var/tmp/sv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/sv/store.db", cfg.StorePath)
	assert.Equal(t, "/var/tmp/sv", cfg.ScratchDir)
	// поле без переменной окружения берётся из дефолтов
	assert.Equal(t, "SimpleVault", cfg.ExportedBy)
}
