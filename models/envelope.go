// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope format identifiers. These values are part of the on-disk layout
// of encrypted exports and must not change between releases.
const (
	EnvelopeVersion       = "1.0.0"
	EnvelopeEncryption    = "AES-256-GCM"
	EnvelopeKeyDerivation = "PBKDF2"
	EnvelopeIterations    = 100000
)

// CryptoEnvelope is the persisted container of an encrypted export: a
// plaintext header describing the packaging plus a base64 ciphertext that
// alone carries account secrets. It is constructed once per export call,
// written to the destination file, and never retained afterwards.
type CryptoEnvelope struct {
	Header EnvelopeHeader `json:"header"`

	// Data is base64(salt ‖ nonce ‖ ciphertext ‖ tag).
	Data string `json:"data"`
}

// EnvelopeHeader is the unencrypted envelope preamble.
type EnvelopeHeader struct {
	Version       string `json:"version"`
	Format        string `json:"format"`
	Encryption    string `json:"encryption"`
	KeyDerivation string `json:"keyDerivation"`
	Iterations    int    `json:"iterations"`

	// ExportedAt is the ISO-8601 timestamp of the export.
	ExportedAt string `json:"exportedAt"`
}

// EncryptedPayload is the inner JSON document of an encrypted export,
// serialized and encrypted as a whole. It exists in memory only for the
// duration of one export or import call.
type EncryptedPayload struct {
	Version  string                  `json:"version"`
	Format   string                  `json:"format"`
	Metadata ExportMetadata          `json:"metadata"`
	Vaults   map[string]VaultSummary `json:"vaults"`
	Accounts []ExportedAccount       `json:"accounts"`
}

// ExportMetadata records the shape of an export for import tooling.
type ExportMetadata struct {
	ExportedAt          string `json:"exportedAt"`
	ExportedBy          string `json:"exportedBy"`
	AccountCount        int    `json:"accountCount"`
	VaultCount          int    `json:"vaultCount"`
	IncludePasswords    bool   `json:"includePasswords"`
	IncludeTOTP         bool   `json:"includeTOTP"`
	IncludeCustomFields bool   `json:"includeCustomFields"`
	IncludeMetadata     bool   `json:"includeMetadata"`
}

// VaultSummary is the per-vault entry of the inner payload's vault index.
type VaultSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AccountCount int    `json:"accountCount"`
}
