// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/simple-vault/models"
)

func filterInput() []models.ExportedAccount {
	created := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	modified := time.Date(2026, 1, 20, 9, 15, 0, 0, time.UTC)

	return []models.ExportedAccount{
		{
			ID:         "a1",
			Title:      "My Bank",
			Username:   "user@example.com",
			Password:   "s3cr3t",
			Category:   "finance",
			Tags:       []string{"money", "personal"},
			VaultID:    "v1",
			VaultName:  "Personal",
			CreatedAt:  &created,
			ModifiedAt: &modified,
			TOTP: &models.ExportedTOTPData{
				Secret: "JBSWY3DPEHPK3PXP",
				Issuer: "Bank",
			},
			CustomFields: []models.CustomField{{Name: "PIN", Value: "1234", Type: "password"}},
			Metadata:     map[string]string{"source": "import"},
		},
	}
}

func allIncluded(f models.ExportFormat) models.ExportOptions {
	return models.ExportOptions{
		Format:              f,
		VaultIDs:            []string{"v1"},
		IncludePasswords:    true,
		IncludeTOTP:         true,
		IncludeCustomFields: true,
		IncludeMetadata:     true,
	}
}

func TestApplySecurityFilter_RedactsPasswords(t *testing.T) {
	opts := allIncluded(models.FormatJSON)
	opts.IncludePasswords = false

	filtered := applySecurityFilter(filterInput(), opts)
	require.Len(t, filtered, 1)
	assert.Equal(t, models.RedactionMarker, filtered[0].Password)
}

func TestApplySecurityFilter_EncryptedVariantKeepsPasswords(t *testing.T) {
	opts := allIncluded(models.FormatEncrypted)
	opts.IncludePasswords = false
	opts.Password = "pass"

	filtered := applySecurityFilter(filterInput(), opts)
	assert.Equal(t, "s3cr3t", filtered[0].Password)
}

func TestApplySecurityFilter_FlagsClearTheirOwnFieldsOnly(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(*models.ExportOptions)
		check func(t *testing.T, account models.ExportedAccount)
	}{
		{
			name:  "totp excluded",
			tweak: func(o *models.ExportOptions) { o.IncludeTOTP = false },
			check: func(t *testing.T, account models.ExportedAccount) {
				assert.Nil(t, account.TOTP)
				assert.NotEmpty(t, account.CustomFields)
				assert.NotNil(t, account.CreatedAt)
			},
		},
		{
			name:  "custom fields excluded",
			tweak: func(o *models.ExportOptions) { o.IncludeCustomFields = false },
			check: func(t *testing.T, account models.ExportedAccount) {
				assert.Empty(t, account.CustomFields)
				assert.NotNil(t, account.TOTP)
			},
		},
		{
			name:  "metadata excluded",
			tweak: func(o *models.ExportOptions) { o.IncludeMetadata = false },
			check: func(t *testing.T, account models.ExportedAccount) {
				assert.Nil(t, account.CreatedAt)
				assert.Nil(t, account.ModifiedAt)
				assert.Nil(t, account.Metadata)
				assert.NotNil(t, account.TOTP)
				assert.NotEmpty(t, account.CustomFields)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := allIncluded(models.FormatJSON)
			tt.tweak(&opts)

			filtered := applySecurityFilter(filterInput(), opts)
			require.Len(t, filtered, 1)
			tt.check(t, filtered[0])
		})
	}
}

func TestApplySecurityFilter_TagsAndCategoryNeverFiltered(t *testing.T) {
	opts := models.ExportOptions{Format: models.FormatJSON, VaultIDs: []string{"v1"}}

	filtered := applySecurityFilter(filterInput(), opts)
	assert.Equal(t, []string{"money", "personal"}, filtered[0].Tags)
	assert.Equal(t, "finance", filtered[0].Category)
}

func TestApplySecurityFilter_InputNotMutated(t *testing.T) {
	input := filterInput()
	opts := models.ExportOptions{Format: models.FormatJSON, VaultIDs: []string{"v1"}}

	_ = applySecurityFilter(input, opts)

	assert.Equal(t, "s3cr3t", input[0].Password)
	assert.NotNil(t, input[0].TOTP)
	assert.NotEmpty(t, input[0].CustomFields)
	assert.NotNil(t, input[0].CreatedAt)
}
