// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/simple-vault/internal/logger"
	"github.com/MKhiriev/simple-vault/internal/store"
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
	return models.Vault{ID: vaultID, Name: "Personal"}, nil
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

func quietCtx() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func fullRecord(id, vaultID string) models.AccountRecord {
	created := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 1, 20, 9, 15, 0, 0, time.UTC)

	return models.AccountRecord{
		ID:               id,
		VaultID:          vaultID,
		Title:            "My Bank",
		Username:         "user@example.com",
		Password:         "s3cr3t",
		URL:              "https://bank.example",
		Notes:            "main account",
		Category:         "finance",
		TagsJSON:         `["money","personal"]`,
		TOTPSecret:       "JBSWY3DPEHPK3PXP",
		TOTPIssuer:       "Bank",
		TOTPAccountName:  "user@example.com",
		TOTPDigits:       6,
		TOTPPeriod:       30,
		TOTPAlgorithm:    "SHA1",
		CustomFieldsJSON: `[{"name":"PIN","value":"1234","type":"password"}]`,
		MetadataJSON:     `{"source":"import"}`,
		CreatedAt:        &created,
		UpdatedAt:        &updated,
		Encrypted:        true,
	}
}

func TestCollector_Collect_NormalizesRecords(t *testing.T) {
	storage := &mockVaultStorage{
		getAccountsFn: func(_ context.Context, vaultID string) ([]models.AccountRecord, error) {
			return []models.AccountRecord{fullRecord("a1", vaultID)}, nil
		},
	}

	accounts, skipped := NewCollector(storage).Collect(quietCtx(), []string{"v1"})
	require.Empty(t, skipped)
	require.Len(t, accounts, 1)

	account := accounts[0]
	assert.Equal(t, "a1", account.ID)
	assert.Equal(t, "My Bank", account.Title)
	assert.Equal(t, "s3cr3t", account.Password)
	assert.Equal(t, "v1", account.VaultID)
	assert.Equal(t, "Personal", account.VaultName)
	assert.Equal(t, []string{"money", "personal"}, account.Tags)
	assert.Equal(t, []models.CustomField{{Name: "PIN", Value: "1234", Type: "password"}}, account.CustomFields)
	assert.Equal(t, map[string]string{"source": "import"}, account.Metadata)
	require.NotNil(t, account.CreatedAt)
	require.NotNil(t, account.ModifiedAt)

	require.NotNil(t, account.TOTP)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", account.TOTP.Secret)
	assert.Equal(t, "Bank", account.TOTP.Issuer)
	assert.Equal(t, 6, account.TOTP.Digits)
}

func TestCollector_Collect_UnknownVaultNameFallback(t *testing.T) {
	storage := &mockVaultStorage{
		getVaultFn: func(_ context.Context, vaultID string) (models.Vault, error) {
			return models.Vault{}, store.ErrVaultNotFound
		},
		getAccountsFn: func(_ context.Context, vaultID string) ([]models.AccountRecord, error) {
			return []models.AccountRecord{fullRecord("a1", vaultID)}, nil
		},
	}

	accounts, skipped := NewCollector(storage).Collect(quietCtx(), []string{"ghost"})
	require.Empty(t, skipped)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Unknown Vault", accounts[0].VaultName)
}

func TestCollector_Collect_FetchFailureSkipsVault(t *testing.T) {
	storage := &mockVaultStorage{
		getAccountsFn: func(_ context.Context, vaultID string) ([]models.AccountRecord, error) {
			if vaultID == "vb" {
				return nil, errors.New("db timeout")
			}
			return []models.AccountRecord{fullRecord("a1", vaultID), fullRecord("a2", vaultID)}, nil
		},
	}

	// Сбой одного хранилища не прерывает сбор остальных
	accounts, skipped := NewCollector(storage).Collect(quietCtx(), []string{"va", "vb", "vc"})

	assert.Equal(t, []string{"vb"}, skipped)
	require.Len(t, accounts, 4)
	assert.Equal(t, "va", accounts[0].VaultID)
	assert.Equal(t, "vc", accounts[2].VaultID)
}

func TestCollector_Collect_MalformedColumnsIgnored(t *testing.T) {
	record := fullRecord("a1", "v1")
	record.TagsJSON = "not-json"
	record.CustomFieldsJSON = `{"broken":`

	storage := &mockVaultStorage{
		getAccountsFn: func(_ context.Context, vaultID string) ([]models.AccountRecord, error) {
			return []models.AccountRecord{record}, nil
		},
	}

	accounts, skipped := NewCollector(storage).Collect(quietCtx(), []string{"v1"})
	require.Empty(t, skipped)
	require.Len(t, accounts, 1)

	assert.Empty(t, accounts[0].Tags)
	assert.Empty(t, accounts[0].CustomFields)
	assert.Equal(t, map[string]string{"source": "import"}, accounts[0].Metadata)
}

func TestCollector_Collect_NoTOTPWhenSecretEmpty(t *testing.T) {
	record := fullRecord("a1", "v1")
	record.TOTPSecret = ""

	storage := &mockVaultStorage{
		getAccountsFn: func(_ context.Context, vaultID string) ([]models.AccountRecord, error) {
			return []models.AccountRecord{record}, nil
		},
	}

	accounts, _ := NewCollector(storage).Collect(quietCtx(), []string{"v1"})
	require.Len(t, accounts, 1)
	assert.Nil(t, accounts[0].TOTP)
}
