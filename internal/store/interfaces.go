// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/simple-vault/models"
)

// VaultStorage is the read accessor the export pipeline consumes. The
// pipeline never writes through it: exports are read-only with respect to
// vault records.
type VaultStorage interface {
	// GetVaultByID resolves a vault and its display name.
	// Returns ErrVaultNotFound if no such vault exists.
	GetVaultByID(ctx context.Context, vaultID string) (models.Vault, error)

	// GetAccountsForVault returns all non-deleted account records of a vault
	// in stable (insertion) order.
	GetAccountsForVault(ctx context.Context, vaultID string) ([]models.AccountRecord, error)

	// CountPlaintextSecrets reports how many account records are persisted
	// without at-rest encryption. A non-zero count fails the pre-export
	// storage audit.
	CountPlaintextSecrets(ctx context.Context) (int64, error)
}
