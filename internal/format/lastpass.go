// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package format

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/simple-vault/models"
)

// lastPassHeader is the fixed LastPass import column set.
var lastPassHeader = []string{"url", "username", "password", "extra", "name", "grouping", "fav"}

// encodeLastPass renders the LastPass-compatible CSV export. LastPass has no
// dedicated columns for notes, tags, TOTP or custom fields; everything folds
// into the extra column as newline-joined labeled lines. The grouping column
// carries the vault display name and fav is always "0".
func (e *Encoder) encodeLastPass(accounts []models.ExportedAccount, opts models.ExportOptions) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(lastPassHeader); err != nil {
		return nil, fmt.Errorf("write lastpass header: %w", err)
	}

	for _, account := range accounts {
		password := ""
		if opts.IncludePasswords {
			password = account.Password
		}

		row := []string{
			account.URL,
			account.Username,
			password,
			lastPassExtra(account, opts),
			account.Title,
			account.VaultName,
			"0",
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write lastpass row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush lastpass csv: %w", err)
	}
	return buf.Bytes(), nil
}

// lastPassExtra folds everything without a dedicated column into labeled
// lines: free-form notes first, then tags/category, custom fields as
// "name: value", the TOTP provisioning URI, and timestamps.
func lastPassExtra(account models.ExportedAccount, opts models.ExportOptions) string {
	var lines []string

	if account.Notes != "" {
		lines = append(lines, account.Notes)
	}
	if len(account.Tags) > 0 {
		lines = append(lines, "Tags: "+strings.Join(account.Tags, ", "))
	}
	if account.Category != "" {
		lines = append(lines, "Category: "+account.Category)
	}
	for _, field := range account.CustomFields {
		lines = append(lines, field.Name+": "+field.Value)
	}
	if opts.IncludeTOTP && account.TOTP != nil {
		lines = append(lines, "TOTP: "+account.TOTP.OTPAuthURL())
	}
	if account.CreatedAt != nil {
		lines = append(lines, "Created: "+account.CreatedAt.UTC().Format(time.RFC3339))
	}
	if account.ModifiedAt != nil {
		lines = append(lines, "Modified: "+account.ModifiedAt.UTC().Format(time.RFC3339))
	}

	return strings.Join(lines, "\n")
}
