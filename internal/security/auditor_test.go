// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/simple-vault/internal/logger"
	"github.com/MKhiriev/simple-vault/models"
)

// mockVaultStorage implements store.VaultStorage with function fields.
type mockVaultStorage struct {
	getVaultFn    func(ctx context.Context, vaultID string) (models.Vault, error)
	getAccountsFn func(ctx context.Context, vaultID string) ([]models.AccountRecord, error)
	countPlainFn  func(ctx context.Context) (int64, error)
}

func (m *mockVaultStorage) GetVaultByID(ctx context.Context, vaultID string) (models.Vault, error) {
	if m.getVaultFn != nil {
		return m.getVaultFn(ctx, vaultID)
	}
	return models.Vault{}, nil
}

func (m *mockVaultStorage) GetAccountsForVault(ctx context.Context, vaultID string) ([]models.AccountRecord, error) {
	if m.getAccountsFn != nil {
		return m.getAccountsFn(ctx, vaultID)
	}
	return nil, nil
}

func (m *mockVaultStorage) CountPlaintextSecrets(ctx context.Context) (int64, error) {
	if m.countPlainFn != nil {
		return m.countPlainFn(ctx)
	}
	return 0, nil
}

func TestStorageAuditor_AuditStorage_Compliant(t *testing.T) {
	auditor := NewStorageAuditor(&mockVaultStorage{}, logger.Nop())

	report, err := auditor.AuditStorage(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Compliant)
	assert.Empty(t, report.Issues)
}

func TestStorageAuditor_AuditStorage_PlaintextRecordsBlock(t *testing.T) {
	storage := &mockVaultStorage{
		countPlainFn: func(ctx context.Context) (int64, error) { return 2, nil },
	}
	auditor := NewStorageAuditor(storage, logger.Nop())

	report, err := auditor.AuditStorage(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Compliant)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "2 account record(s)")
}

func TestStorageAuditor_AuditStorage_StoreError(t *testing.T) {
	storage := &mockVaultStorage{
		countPlainFn: func(ctx context.Context) (int64, error) { return 0, errors.New("db gone") },
	}
	auditor := NewStorageAuditor(storage, logger.Nop())

	_, err := auditor.AuditStorage(context.Background())
	assert.Error(t, err)
}

func TestStorageAuditor_AuditExportPayload(t *testing.T) {
	auditor := NewStorageAuditor(&mockVaultStorage{}, logger.Nop())

	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{
			name:    "clean payload with account password",
			payload: `{"accounts":[{"title":"Bank","password":"s3cr3t"}]}`,
			want:    true,
		},
		{
			name:    "not json",
			payload: `{"accounts":`,
			want:    false,
		},
		{
			name:    "leaked master password field",
			payload: `{"accounts":[],"masterPassword":"hunter2"}`,
			want:    false,
		},
		{
			name:    "leaked snake_case key field",
			payload: `{"accounts":[{"encryption_key":"AAAA"}]}`,
			want:    false,
		},
		{
			name:    "deny word inside a value is fine",
			payload: `{"accounts":[{"notes":"remember the masterPassword rotation"}]}`,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auditor.AuditExportPayload([]byte(tt.payload)))
		})
	}
}
