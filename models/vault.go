// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Vault is a named logical grouping of account records, the unit of
// selective export.
type Vault struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// AccountRecord is a raw vault store row. List-valued columns (tags, custom
// fields, metadata) are stored as JSON text and decoded by the data
// collector during normalization; the record itself is never exported.
type AccountRecord struct {
	ID       string
	VaultID  string
	Title    string
	Username string
	Password string
	URL      string
	Notes    string
	Category string

	// TagsJSON is a JSON array of strings, e.g. `["work","email"]`.
	TagsJSON string

	TOTPSecret      string
	TOTPIssuer      string
	TOTPAccountName string
	TOTPDigits      int
	TOTPPeriod      int
	TOTPAlgorithm   string

	// CustomFieldsJSON is a JSON array of CustomField objects.
	CustomFieldsJSON string

	// MetadataJSON is a JSON object of free-form string attributes.
	MetadataJSON string

	CreatedAt *time.Time
	UpdatedAt *time.Time

	// Encrypted reports whether the secret columns are stored encrypted at
	// rest. Rows with Encrypted == false fail the pre-export storage audit.
	Encrypted bool
}
