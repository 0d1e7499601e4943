// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/simple-vault/models"

// applySecurityFilter returns a filtered copy of accounts according to the
// inclusion flags. The input slice is never mutated.
//
// The encrypted variant keeps real passwords regardless of IncludePasswords:
// its output is opaque ciphertext, and redacting inside the archive would
// only corrupt it. All other flags apply to every variant. Tags and category
// are never filtered.
func applySecurityFilter(accounts []models.ExportedAccount, opts models.ExportOptions) []models.ExportedAccount {
	keepPasswords := opts.IncludePasswords || opts.Format == models.FormatEncrypted

	filtered := make([]models.ExportedAccount, len(accounts))
	for i, account := range accounts {
		if !keepPasswords {
			account.Password = models.RedactionMarker
		}
		if !opts.IncludeTOTP {
			account.TOTP = nil
		}
		if !opts.IncludeCustomFields {
			account.CustomFields = nil
		}
		if !opts.IncludeMetadata {
			account.CreatedAt = nil
			account.ModifiedAt = nil
			account.Metadata = nil
		}
		filtered[i] = account
	}

	return filtered
}
