// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package format

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/simple-vault/models"
)

// encodeEncrypted renders the proprietary encrypted envelope. The inner
// payload (version, format tag, export metadata, vault index, accounts) is
// serialized to JSON and sealed by the envelope service; only the header
// stays readable without the passphrase.
func (e *Encoder) encodeEncrypted(accounts []models.ExportedAccount, opts models.ExportOptions, now time.Time) ([]byte, error) {
	vaults := make(map[string]models.VaultSummary)
	for _, account := range accounts {
		summary := vaults[account.VaultID]
		summary.ID = account.VaultID
		summary.Name = account.VaultName
		summary.AccountCount++
		vaults[account.VaultID] = summary
	}

	payload := models.EncryptedPayload{
		Version: models.EnvelopeVersion,
		Format:  string(models.FormatEncrypted),
		Metadata: models.ExportMetadata{
			ExportedAt:          now.UTC().Format(time.RFC3339),
			ExportedBy:          e.exportedBy,
			AccountCount:        len(accounts),
			VaultCount:          len(vaults),
			IncludePasswords:    opts.IncludePasswords,
			IncludeTOTP:         opts.IncludeTOTP,
			IncludeCustomFields: opts.IncludeCustomFields,
			IncludeMetadata:     opts.IncludeMetadata,
		},
		Vaults:   vaults,
		Accounts: accounts,
	}

	envelope, err := e.envelope.EncryptPayload(payload, opts.Password)
	if err != nil {
		return nil, fmt.Errorf("encrypt export payload: %w", err)
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return data, nil
}
