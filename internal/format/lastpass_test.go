// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/simple-vault/models"
)

func TestEncoder_LastPass_Header(t *testing.T) {
	out, err := newTestEncoder().Encode(testAccounts(), allOptions(models.FormatLastPass), testNow)
	require.NoError(t, err)

	rows := parseCSV(t, out)
	assert.Equal(t, []string{"url", "username", "password", "extra", "name", "grouping", "fav"}, rows[0])
}

func TestEncoder_LastPass_RowLayout(t *testing.T) {
	out, err := newTestEncoder().Encode(testAccounts(), allOptions(models.FormatLastPass), testNow)
	require.NoError(t, err)

	rows := parseCSV(t, out)
	require.Len(t, rows, 3)

	row := rows[1]
	assert.Equal(t, "https://bank.example", row[0])
	assert.Equal(t, "user@example.com", row[1])
	assert.Equal(t, "s3cr3t", row[2])
	assert.Equal(t, "My Bank", row[4])
	assert.Equal(t, "Personal", row[5], "grouping uses the vault display name")
	assert.Equal(t, "0", row[6], "fav is always 0")
}

func TestEncoder_LastPass_ExtraFoldsEverythingElse(t *testing.T) {
	out, err := newTestEncoder().Encode(testAccounts(), allOptions(models.FormatLastPass), testNow)
	require.NoError(t, err)

	extra := parseCSV(t, out)[1][3]
	lines := strings.Split(extra, "\n")

	assert.Equal(t, "main account", lines[0])
	assert.Contains(t, lines, "Tags: money, personal")
	assert.Contains(t, lines, "Category: finance")
	assert.Contains(t, lines, "PIN: 1234")
	assert.Contains(t, lines, "Created: 2026-01-10T08:00:00Z")
	assert.Contains(t, lines, "Modified: 2026-01-20T09:15:00Z")

	var totpLine string
	for _, line := range lines {
		if strings.HasPrefix(line, "TOTP: ") {
			totpLine = line
		}
	}
	require.NotEmpty(t, totpLine, "extra must carry the TOTP line")
	assert.True(t, strings.HasPrefix(strings.TrimPrefix(totpLine, "TOTP: "), "otpauth://totp/"))
}

func TestEncoder_LastPass_PasswordBlankedWhenNotRequested(t *testing.T) {
	opts := allOptions(models.FormatLastPass)
	opts.IncludePasswords = false

	out, err := newTestEncoder().Encode(testAccounts(), opts, testNow)
	require.NoError(t, err)

	rows := parseCSV(t, out)
	for _, row := range rows[1:] {
		assert.Equal(t, "", row[2])
	}
	assert.NotContains(t, string(out), "s3cr3t")
}

func TestEncoder_LastPass_NoTOTPLineWhenExcluded(t *testing.T) {
	opts := allOptions(models.FormatLastPass)
	opts.IncludeTOTP = false

	out, err := newTestEncoder().Encode(testAccounts(), opts, testNow)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "otpauth://")
}
