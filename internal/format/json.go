// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package format

import (
	"encoding/json"
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/simple-vault/models"
)

// jsonExport is the plain SimpleVault JSON document.
type jsonExport struct {
	Metadata map[string]any `json:"metadata"`
	Accounts []jsonAccount  `json:"accounts"`
}

// jsonAccount wraps ExportedAccount so the TOTP block can carry the derived
// otpauth URI next to the raw seed parameters.
type jsonAccount struct {
	models.ExportedAccount
	TOTP *jsonTOTP `json:"totp,omitempty"`
}

type jsonTOTP struct {
	models.ExportedTOTPData
	OTPAuthURL string `json:"otpAuthUrl"`
}

// encodeJSON renders the plain JSON export. The metadata block merges the
// encoder's caller-supplied map over the standard fields; standard fields
// win on key collisions.
func (e *Encoder) encodeJSON(accounts []models.ExportedAccount, now time.Time) ([]byte, error) {
	metadata := map[string]any{
		"exportedAt":   now.UTC().Format(time.RFC3339),
		"exportedBy":   e.exportedBy,
		"format":       string(models.FormatJSON),
		"accountCount": len(accounts),
		"vaultCount":   len(distinctVaults(accounts)),
	}
	if e.extraMetadata != nil {
		if err := mergo.Merge(&metadata, e.extraMetadata); err != nil {
			return nil, fmt.Errorf("merge export metadata: %w", err)
		}
	}

	out := jsonExport{
		Metadata: metadata,
		Accounts: make([]jsonAccount, 0, len(accounts)),
	}
	for _, account := range accounts {
		entry := jsonAccount{ExportedAccount: account}
		if account.TOTP != nil {
			entry.ExportedAccount.TOTP = nil
			entry.TOTP = &jsonTOTP{
				ExportedTOTPData: *account.TOTP,
				OTPAuthURL:       account.TOTP.OTPAuthURL(),
			}
		}
		out.Accounts = append(out.Accounts, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json export: %w", err)
	}
	return data, nil
}
