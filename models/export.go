// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExportFormat identifies one of the interchange formats the export
// pipeline can produce. The set is closed: encoders are dispatched through
// a per-format table, not open-ended subtyping.
type ExportFormat string

const (
	// FormatJSON is the plain SimpleVault JSON export.
	FormatJSON ExportFormat = "json"

	// FormatCSV is the generic spreadsheet-friendly CSV export.
	FormatCSV ExportFormat = "csv"

	// FormatBitwarden is the Bitwarden-compatible unencrypted JSON export.
	FormatBitwarden ExportFormat = "bitwarden"

	// FormatLastPass is the LastPass-compatible CSV export.
	FormatLastPass ExportFormat = "lastpass"

	// Format1Password is the simplified 1Password JSON export.
	Format1Password ExportFormat = "1password"

	// FormatEncrypted is the proprietary AES-256-GCM encrypted envelope.
	// The value doubles as the format tag inside the envelope header.
	FormatEncrypted ExportFormat = "simple_vault_encrypted"
)

// RedactionMarker is the literal substituted for a secret value when the
// corresponding inclusion flag on ExportOptions is false.
const RedactionMarker = "***REDACTED***"

// ExportOptions is the immutable request describing one export call.
type ExportOptions struct {
	// Format selects the target interchange format.
	Format ExportFormat `json:"format"`

	// VaultIDs is the non-empty ordered set of vaults to export.
	VaultIDs []string `json:"vaultIds"`

	// IncludePasswords keeps real passwords in the output. When false,
	// non-encrypted outputs carry RedactionMarker instead.
	IncludePasswords bool `json:"includePasswords"`

	// IncludeTOTP keeps TOTP seeds and otpauth URIs in the output.
	IncludeTOTP bool `json:"includeTOTP"`

	// IncludeCustomFields keeps user-defined custom fields in the output.
	IncludeCustomFields bool `json:"includeCustomFields"`

	// IncludeMetadata keeps timestamps and free-form metadata in the output.
	IncludeMetadata bool `json:"includeMetadata"`

	// Password is the envelope passphrase. Required and non-empty iff
	// Format is FormatEncrypted; ignored otherwise.
	Password string `json:"-"`
}

// ExportResult is the single terminal outcome of an export call. Exactly one
// of the success fields (FilePath, ExportedCount) or ErrorMessage is
// meaningful; no partial state is observable by the caller.
type ExportResult struct {
	// Success reports whether the export completed and the file was written.
	Success bool `json:"success"`

	// FilePath is the destination file on success.
	FilePath string `json:"filePath,omitempty"`

	// ExportedCount is the number of accounts written on success.
	ExportedCount int `json:"exportedCount,omitempty"`

	// Format echoes the requested format for both outcomes.
	Format ExportFormat `json:"format"`

	// ErrorMessage is the single human-readable failure reason.
	ErrorMessage string `json:"errorMessage,omitempty"`

	// SkippedVaultIDs lists vaults whose account fetch failed and which are
	// therefore absent from the output. Best-effort exports still succeed
	// with a reduced count; this field makes the reduction visible.
	SkippedVaultIDs []string `json:"skippedVaultIds,omitempty"`
}
