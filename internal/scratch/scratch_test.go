// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scratch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/simple-vault/internal/crypto"
	"github.com/MKhiriev/simple-vault/internal/logger"
	"github.com/MKhiriev/simple-vault/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager(t.TempDir(), crypto.NewEnvelopeService(), logger.Nop())
	require.NoError(t, err)
	return m
}

func TestManager_Allocate_CreatesRestrictedFile(t *testing.T) {
	m := newTestManager(t)

	f, err := m.Allocate(models.FormatJSON, "Personal Vault")
	require.NoError(t, err)
	defer func() { _ = f.Delete() }()

	info, err := os.Stat(f.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	name := filepath.Base(f.Path())
	assert.True(t, strings.HasPrefix(name, "export-json-personal-vault-"), "got %q", name)
	assert.True(t, strings.HasSuffix(name, ".tmp"))
}

func TestManager_Allocate_UniqueNames(t *testing.T) {
	m := newTestManager(t)

	first, err := m.Allocate(models.FormatCSV, "v")
	require.NoError(t, err)
	second, err := m.Allocate(models.FormatCSV, "v")
	require.NoError(t, err)

	assert.NotEqual(t, first.Path(), second.Path())
}

func TestFile_WriteRead_RoundTrip(t *testing.T) {
	m := newTestManager(t)

	f, err := m.Allocate(models.FormatJSON, "vault")
	require.NoError(t, err)
	defer func() { _ = f.Delete() }()

	payload := []byte(`{"accounts":[{"password":"s3cr3t"}]}`)
	require.NoError(t, f.Write(payload))

	// На диске лежит только шифртекст
	raw, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "s3cr3t")
	assert.NotContains(t, string(raw), "accounts")

	got, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFile_Read_OtherManagerCannotDecrypt(t *testing.T) {
	dir := t.TempDir()
	cryptoSvc := crypto.NewEnvelopeService()

	first, err := NewManager(dir, cryptoSvc, logger.Nop())
	require.NoError(t, err)
	second, err := NewManager(dir, cryptoSvc, logger.Nop())
	require.NoError(t, err)

	f, err := first.Allocate(models.FormatJSON, "vault")
	require.NoError(t, err)
	defer func() { _ = f.Delete() }()
	require.NoError(t, f.Write([]byte("payload")))

	// Storage keys are per manager; another manager's key must fail.
	stolen := &File{path: f.Path(), manager: second}
	_, err = stolen.Read()
	assert.Error(t, err)
}

func TestFile_Delete_RemovesFileAndIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	f, err := m.Allocate(models.FormatJSON, "vault")
	require.NoError(t, err)
	require.NoError(t, f.Write([]byte("data")))

	require.NoError(t, f.Delete())
	_, err = os.Stat(f.Path())
	assert.True(t, os.IsNotExist(err))

	// повторное удаление не ошибка
	assert.NoError(t, f.Delete())
}

func Test_sanitizeHint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Personal Vault", "personal-vault"},
		{"../../etc/passwd", "etcpasswd"},
		{"", "vault"},
		{"Работа", "vault"},
		{strings.Repeat("a", 100), strings.Repeat("a", 32)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeHint(tt.in), "input %q", tt.in)
	}
}
