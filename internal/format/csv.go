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

// encodeCSV renders the generic CSV export. The column set depends on the
// options, but within one export every row has the same column count:
// accounts without TOTP data get empty placeholder cells, never a shorter
// row. Quoting and quote-doubling follow RFC 4180 via encoding/csv.
func (e *Encoder) encodeCSV(accounts []models.ExportedAccount, opts models.ExportOptions) ([]byte, error) {
	header := []string{"Title", "Username"}
	if opts.IncludePasswords {
		header = append(header, "Password") // column 3, present only on request
	}
	header = append(header, "URL", "Notes", "Tags", "Category", "Vault")
	if opts.IncludeTOTP {
		header = append(header, "TOTP Secret", "TOTP Issuer", "TOTP URL")
	}
	if opts.IncludeMetadata {
		header = append(header, "Created", "Modified")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, account := range accounts {
		row := []string{account.Title, account.Username}
		if opts.IncludePasswords {
			row = append(row, account.Password)
		}
		row = append(row,
			account.URL,
			account.Notes,
			strings.Join(account.Tags, ", "),
			account.Category,
			account.VaultName,
		)
		if opts.IncludeTOTP {
			if account.TOTP != nil {
				row = append(row, account.TOTP.Secret, account.TOTP.Issuer, account.TOTP.OTPAuthURL())
			} else {
				row = append(row, "", "", "")
			}
		}
		if opts.IncludeMetadata {
			row = append(row, formatCSVTime(account.CreatedAt), formatCSVTime(account.ModifiedAt))
		}

		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatCSVTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
