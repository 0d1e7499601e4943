// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package security implements the pre-export compliance checks: an audit of
// the vault store's at-rest hygiene and a defensive scan of serialized
// export payloads.
package security

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/simple-vault/internal/logger"
	"github.com/MKhiriev/simple-vault/internal/store"
)

// Report is the outcome of a storage audit.
type Report struct {
	// Compliant is true when the store holds no data in a state that
	// forbids export.
	Compliant bool

	// Issues lists the human-readable findings behind a non-compliant
	// verdict. Empty when Compliant.
	Issues []string
}

// leakedKeyNames are JSON field names that identify internal key material.
// None of them belongs in any export payload; their presence means a
// filtering defect upstream, not a user mistake.
var leakedKeyNames = []string{
	"masterpassword",
	"master_password",
	"encryptionkey",
	"encryption_key",
	"storagekey",
	"storage_key",
	"privatekey",
	"private_key",
	"dek",
	"kek",
}

// StorageAuditor is the default auditor over the SQLite vault store.
type StorageAuditor struct {
	store  store.VaultStorage
	logger *logger.Logger
}

// NewStorageAuditor constructs a StorageAuditor reading through storage.
func NewStorageAuditor(storage store.VaultStorage, log *logger.Logger) *StorageAuditor {
	return &StorageAuditor{
		store:  storage,
		logger: log,
	}
}

// AuditStorage checks the store's current hygiene. Account records persisted
// without at-rest encryption make the store non-compliant: exporting would
// read plaintext secrets from disk.
func (a *StorageAuditor) AuditStorage(ctx context.Context) (Report, error) {
	count, err := a.store.CountPlaintextSecrets(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("audit storage: %w", err)
	}

	if count > 0 {
		a.logger.Warn().
			Int64("plaintext_records", count).
			Msg("storage audit found unencrypted records")
		return Report{
			Compliant: false,
			Issues:    []string{fmt.Sprintf("%d account record(s) stored without encryption", count)},
		}, nil
	}

	return Report{Compliant: true}, nil
}

// AuditExportPayload reports whether a serialized export payload is safe to
// write out. The payload must be well-formed JSON and must not contain any
// field carrying internal key material. Legitimately included account
// passwords pass; this check catches filtering defects, not policy choices.
func (a *StorageAuditor) AuditExportPayload(payload []byte) bool {
	var probe any
	if err := json.Unmarshal(payload, &probe); err != nil {
		return false
	}

	lowered := strings.ToLower(string(payload))
	for _, name := range leakedKeyNames {
		if strings.Contains(lowered, `"`+name+`":`) {
			a.logger.Error().
				Str("field", name).
				Msg("export payload contains internal key material")
			return false
		}
	}

	return true
}
