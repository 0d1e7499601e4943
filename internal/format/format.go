// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package format turns a normalized account list into one of the six
// interchange representations. Encoders are pure: no I/O, no globals, and
// deterministic output given identical inputs and the same injected clock.
//
// The format set is closed. Dispatch goes through a per-tag table rather
// than open-ended subtyping, and the per-format capability flags live in a
// constant table next to it.
package format

import (
	"fmt"
	"time"

	"github.com/MKhiriev/simple-vault/internal/crypto"
	"github.com/MKhiriev/simple-vault/models"
)

// Capabilities describes what a format can represent. Encoders silently
// drop data their format cannot carry; callers use these flags to warn
// users up front.
type Capabilities struct {
	SupportsEncryption   bool
	SupportsCustomFields bool
	SupportsTOTP         bool
}

// capabilities is the per-tag constant table backing CapabilitiesFor.
var capabilities = map[models.ExportFormat]Capabilities{
	models.FormatJSON:      {SupportsEncryption: false, SupportsCustomFields: true, SupportsTOTP: true},
	models.FormatCSV:       {SupportsEncryption: false, SupportsCustomFields: false, SupportsTOTP: true},
	models.FormatBitwarden: {SupportsEncryption: false, SupportsCustomFields: true, SupportsTOTP: true},
	models.FormatLastPass:  {SupportsEncryption: false, SupportsCustomFields: true, SupportsTOTP: true},
	models.Format1Password: {SupportsEncryption: false, SupportsCustomFields: false, SupportsTOTP: false},
	models.FormatEncrypted: {SupportsEncryption: true, SupportsCustomFields: true, SupportsTOTP: true},
}

// CapabilitiesFor returns the capability flags of a format and whether the
// format is known at all.
func CapabilitiesFor(f models.ExportFormat) (Capabilities, bool) {
	c, ok := capabilities[f]
	return c, ok
}

// Encoder dispatches encoding across the closed format set. It is cheap to
// construct and safe for concurrent use; all per-call state lives in
// arguments.
type Encoder struct {
	envelope   crypto.EnvelopeService
	exportedBy string

	// extraMetadata is a caller-supplied map merged into the plain JSON
	// export's metadata block.
	extraMetadata map[string]any
}

// NewEncoder constructs an Encoder. envelope is only exercised by the
// encrypted variant; exportedBy labels export metadata.
func NewEncoder(envelope crypto.EnvelopeService, exportedBy string) *Encoder {
	return &Encoder{
		envelope:   envelope,
		exportedBy: exportedBy,
	}
}

// WithMetadata returns a copy of the Encoder that merges extra into the
// plain JSON export's metadata block.
func (e *Encoder) WithMetadata(extra map[string]any) *Encoder {
	clone := *e
	clone.extraMetadata = extra
	return &clone
}

// Encode produces the final representation of accounts in opts.Format.
// now is injected so that two calls within the same wall-clock second are
// byte-identical; it is the only timestamp embedded by any encoder.
func (e *Encoder) Encode(accounts []models.ExportedAccount, opts models.ExportOptions, now time.Time) ([]byte, error) {
	switch opts.Format {
	case models.FormatJSON:
		return e.encodeJSON(accounts, now)
	case models.FormatCSV:
		return e.encodeCSV(accounts, opts)
	case models.FormatBitwarden:
		return e.encodeBitwarden(accounts, opts)
	case models.FormatLastPass:
		return e.encodeLastPass(accounts, opts)
	case models.Format1Password:
		return e.encode1Password(accounts, now)
	case models.FormatEncrypted:
		return e.encodeEncrypted(accounts, opts, now)
	default:
		return nil, fmt.Errorf("unknown export format %q", opts.Format)
	}
}

// distinctVaults returns the distinct (vaultID, vaultName) pairs of accounts
// in first-seen order.
func distinctVaults(accounts []models.ExportedAccount) []models.Vault {
	seen := make(map[string]bool, len(accounts))
	var vaults []models.Vault
	for _, account := range accounts {
		if seen[account.VaultID] {
			continue
		}
		seen[account.VaultID] = true
		vaults = append(vaults, models.Vault{ID: account.VaultID, Name: account.VaultName})
	}
	return vaults
}
