// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/simple-vault/internal/logger"
	"github.com/MKhiriev/simple-vault/models"
)

// vaultRepository is the SQLite-backed implementation of [VaultStorage].
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultStorage] over db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultStorage {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

func (v *vaultRepository) GetVaultByID(ctx context.Context, vaultID string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultQuery(vaultID)
	if err != nil {
		return models.Vault{}, fmt.Errorf("build vault query: %w", err)
	}

	var vault models.Vault
	var createdAt, updatedAt sql.NullTime
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(
		&vault.ID,
		&vault.Name,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vault{}, ErrVaultNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.GetVaultByID").
			Str("vault_id", vaultID).
			Msg("failed to query vault")
		return models.Vault{}, fmt.Errorf("failed to query vault %s: %w", vaultID, err)
	}

	if createdAt.Valid {
		vault.CreatedAt = &createdAt.Time
	}
	if updatedAt.Valid {
		vault.UpdatedAt = &updatedAt.Time
	}

	return vault, nil
}

func (v *vaultRepository) GetAccountsForVault(ctx context.Context, vaultID string) ([]models.AccountRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(vaultID)
	if err != nil {
		return nil, fmt.Errorf("build accounts query: %w", err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.GetAccountsForVault").
			Str("vault_id", vaultID).
			Msg("failed to query vault accounts")
		return nil, fmt.Errorf("failed to query accounts for vault %s: %w", vaultID, err)
	}
	defer rows.Close()

	var records []models.AccountRecord
	for rows.Next() {
		record, scanErr := scanAccountRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultRepository.GetAccountsForVault").
				Str("vault_id", vaultID).
				Msg("failed to scan account row")
			return nil, fmt.Errorf("failed to scan account row: %w", scanErr)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}

	return records, nil
}

func (v *vaultRepository) CountPlaintextSecrets(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountPlaintextQuery()
	if err != nil {
		return 0, fmt.Errorf("build plaintext count query: %w", err)
	}

	var count int64
	if err = v.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.CountPlaintextSecrets").
			Msg("failed to count plaintext records")
		return 0, fmt.Errorf("failed to count plaintext records: %w", err)
	}

	return count, nil
}

// scanAccountRecord maps one accounts row onto models.AccountRecord in the
// accountColumns order.
func scanAccountRecord(rows *sql.Rows) (models.AccountRecord, error) {
	var record models.AccountRecord
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&record.ID,
		&record.VaultID,
		&record.Title,
		&record.Username,
		&record.Password,
		&record.URL,
		&record.Notes,
		&record.Category,
		&record.TagsJSON,
		&record.TOTPSecret,
		&record.TOTPIssuer,
		&record.TOTPAccountName,
		&record.TOTPDigits,
		&record.TOTPPeriod,
		&record.TOTPAlgorithm,
		&record.CustomFieldsJSON,
		&record.MetadataJSON,
		&createdAt,
		&updatedAt,
		&record.Encrypted,
	)
	if err != nil {
		return models.AccountRecord{}, err
	}

	if createdAt.Valid {
		record.CreatedAt = &createdAt.Time
	}
	if updatedAt.Valid {
		record.UpdatedAt = &updatedAt.Time
	}

	return record, nil
}
