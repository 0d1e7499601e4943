// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/simple-vault/internal/logger"
	"github.com/MKhiriev/simple-vault/internal/store"
	"github.com/MKhiriev/simple-vault/models"
)

// unknownVaultName labels accounts whose vault lookup failed.
const unknownVaultName = "Unknown Vault"

// Collector pulls account records per selected vault and normalizes them
// into the format-agnostic ExportedAccount projection. Collection is
// best-effort: a fetch failure skips that vault and the rest continue.
type Collector struct {
	store store.VaultStorage
}

// NewCollector constructs a Collector reading through storage.
func NewCollector(storage store.VaultStorage) *Collector {
	return &Collector{store: storage}
}

// Collect gathers the accounts of vaultIDs in request order. The second
// return value lists the vault ids whose account fetch failed and which are
// therefore absent from the result.
func (c *Collector) Collect(ctx context.Context, vaultIDs []string) ([]models.ExportedAccount, []string) {
	log := logger.FromContext(ctx)

	var accounts []models.ExportedAccount
	var skipped []string

	for _, vaultID := range vaultIDs {
		name := unknownVaultName
		vault, err := c.store.GetVaultByID(ctx, vaultID)
		if err != nil {
			log.Warn().Err(err).Str("vault_id", vaultID).Msg("vault lookup failed, using fallback name")
		} else {
			name = vault.Name
		}

		records, err := c.store.GetAccountsForVault(ctx, vaultID)
		if err != nil {
			log.Err(err).Str("vault_id", vaultID).Msg("account fetch failed, vault skipped")
			skipped = append(skipped, vaultID)
			continue
		}

		for _, record := range records {
			accounts = append(accounts, normalizeRecord(ctx, record, name))
		}
	}

	return accounts, skipped
}

// normalizeRecord projects a raw store row onto ExportedAccount, decoding
// the JSON-typed columns. A malformed column is logged and left empty; one
// bad column must not sink the whole account.
func normalizeRecord(ctx context.Context, record models.AccountRecord, vaultName string) models.ExportedAccount {
	log := logger.FromContext(ctx)

	account := models.ExportedAccount{
		ID:         record.ID,
		Title:      record.Title,
		Username:   record.Username,
		Password:   record.Password,
		URL:        record.URL,
		Notes:      record.Notes,
		Category:   record.Category,
		VaultID:    record.VaultID,
		VaultName:  vaultName,
		CreatedAt:  record.CreatedAt,
		ModifiedAt: record.UpdatedAt,
	}

	if record.TagsJSON != "" {
		if err := json.Unmarshal([]byte(record.TagsJSON), &account.Tags); err != nil {
			log.Warn().Err(err).Str("account_id", record.ID).Msg("malformed tags column ignored")
		}
	}
	if record.CustomFieldsJSON != "" {
		if err := json.Unmarshal([]byte(record.CustomFieldsJSON), &account.CustomFields); err != nil {
			log.Warn().Err(err).Str("account_id", record.ID).Msg("malformed custom fields column ignored")
		}
	}
	if record.MetadataJSON != "" {
		if err := json.Unmarshal([]byte(record.MetadataJSON), &account.Metadata); err != nil {
			log.Warn().Err(err).Str("account_id", record.ID).Msg("malformed metadata column ignored")
		}
	}

	if record.TOTPSecret != "" {
		account.TOTP = &models.ExportedTOTPData{
			Secret:      record.TOTPSecret,
			Issuer:      record.TOTPIssuer,
			AccountName: record.TOTPAccountName,
			Digits:      record.TOTPDigits,
			Period:      record.TOTPPeriod,
			Algorithm:   record.TOTPAlgorithm,
		}
	}

	return account
}
