// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ExportedAccount is the normalized, format-agnostic projection of a stored
// credential. It is created by the data collector, consumed read-only by the
// security filter and the format encoders, and never persisted.
type ExportedAccount struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`

	URL      string `json:"url,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Category string `json:"category,omitempty"`

	// Tags is an ordered sequence; order is preserved through every encoder.
	Tags []string `json:"tags,omitempty"`

	VaultID   string `json:"vaultId"`
	VaultName string `json:"vaultName"`

	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`

	TOTP *ExportedTOTPData `json:"totp,omitempty"`

	CustomFields []CustomField `json:"customFields,omitempty"`

	// Metadata carries free-form non-secret attributes of the record.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// CustomField is a user-defined field attached to an account.
type CustomField struct {
	// Name is the display name of the field.
	Name string `json:"name"`

	// Value is the field content.
	Value string `json:"value"`

	// Type is the semantic type of the field ("text", "password", "boolean").
	Type string `json:"type"`
}

// ExportedTOTPData describes a time-based one-time password seed.
type ExportedTOTPData struct {
	// Secret is the base32-encoded shared secret.
	Secret string `json:"secret"`

	Issuer      string `json:"issuer,omitempty"`
	AccountName string `json:"accountName,omitempty"`

	// Digits is the code length; 0 means the default of 6.
	Digits int `json:"digits,omitempty"`

	// Period is the step in seconds; 0 means the default of 30.
	Period int `json:"period,omitempty"`

	// Algorithm is the HMAC hash ("SHA1", "SHA256", "SHA512"); empty means SHA1.
	Algorithm string `json:"algorithm,omitempty"`
}

// OTPAuthURL derives the standard otpauth://totp/ URI for the seed, suitable
// for QR provisioning and for authenticator-app import columns.
func (t *ExportedTOTPData) OTPAuthURL() string {
	label := t.AccountName
	if t.Issuer != "" {
		label = t.Issuer + ":" + t.AccountName
	}

	q := url.Values{}
	q.Set("secret", t.Secret)
	if t.Issuer != "" {
		q.Set("issuer", t.Issuer)
	}
	if t.Digits > 0 {
		q.Set("digits", strconv.Itoa(t.Digits))
	}
	if t.Period > 0 {
		q.Set("period", strconv.Itoa(t.Period))
	}
	if t.Algorithm != "" {
		q.Set("algorithm", t.Algorithm)
	}

	return fmt.Sprintf("otpauth://totp/%s?%s", url.PathEscape(label), q.Encode())
}
