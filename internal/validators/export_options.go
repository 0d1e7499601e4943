// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/simple-vault/models"
)

// Field name constants used to specify which checks should run.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldFormat targets the export format tag.
	FieldFormat = "format"

	// FieldVaultIDs targets the selected vault identifier list.
	FieldVaultIDs = "vault_ids"

	// FieldPassword enforces the encrypted-variant passphrase rule.
	FieldPassword = "password"
)

// allowedFormats is the exhaustive set of ExportFormat values accepted by
// the validator. Any format not present here is considered invalid.
var allowedFormats = []models.ExportFormat{
	models.FormatJSON,
	models.FormatCSV,
	models.FormatBitwarden,
	models.FormatLastPass,
	models.Format1Password,
	models.FormatEncrypted,
}

// ExportOptionsValidator implements [Validator] for models.ExportOptions.
// It supports both value and pointer forms and optional field-level scoping
// via variadic field name arguments.
type ExportOptionsValidator struct {
}

// NewExportOptionsValidator constructs a new ExportOptionsValidator
// and returns it as the Validator interface.
func NewExportOptionsValidator() Validator {
	return &ExportOptionsValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.ExportOptions / *models.ExportOptions
//
// Returns ErrUnsupportedType for anything else.
func (v *ExportOptionsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ExportOptions:
		return v.validateExportOptions(ctx, value, fields...)
	case *models.ExportOptions:
		return v.validateExportOptions(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// isValidFormat reports whether f is one of the recognized formats
// defined in allowedFormats.
func isValidFormat(f models.ExportFormat) bool {
	for _, allowed := range allowedFormats {
		if f == allowed {
			return true
		}
	}
	return false
}

// validateExportOptions validates a single ExportOptions request.
//
// Default validated fields (when none specified): Format, VaultIDs, Password.
//
// Rules: the format tag must be known; VaultIDs must be non-empty with no
// blank entries; the encrypted variant requires a non-empty password. All
// other flag combinations are accepted for every format.
func (v *ExportOptionsValidator) validateExportOptions(ctx context.Context, options models.ExportOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormat, FieldVaultIDs, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFormat:
			if !isValidFormat(options.Format) {
				return ErrUnknownFormat
			}
		case FieldVaultIDs:
			if len(options.VaultIDs) == 0 {
				return ErrNoVaultsSelected
			}
			for _, vaultID := range options.VaultIDs {
				if vaultID == "" {
					return ErrEmptyVaultID
				}
			}
		case FieldPassword:
			if options.Format == models.FormatEncrypted && options.Password == "" {
				return ErrMissingPassphrase
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
