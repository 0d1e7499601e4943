// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package format

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/simple-vault/models"
)

// Bitwarden import expects these constants: item type 1 marks a login entry,
// field types are 0 text, 1 hidden/password, 2 boolean.
const (
	bitwardenTypeLogin = 1

	bitwardenFieldText    = 0
	bitwardenFieldHidden  = 1
	bitwardenFieldBoolean = 2
)

type bitwardenExport struct {
	Encrypted bool              `json:"encrypted"`
	Folders   []bitwardenFolder `json:"folders"`
	Items     []bitwardenItem   `json:"items"`
}

type bitwardenFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type bitwardenItem struct {
	ID       string           `json:"id"`
	FolderID string           `json:"folderId"`
	Type     int              `json:"type"`
	Name     string           `json:"name"`
	Notes    string           `json:"notes,omitempty"`
	Favorite bool             `json:"favorite"`
	Fields   []bitwardenField `json:"fields,omitempty"`
	Login    bitwardenLogin   `json:"login"`
}

type bitwardenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  int    `json:"type"`
}

type bitwardenLogin struct {
	URIs     []bitwardenURI `json:"uris,omitempty"`
	Username string         `json:"username"`
	Password string         `json:"password,omitempty"`
	TOTP     string         `json:"totp,omitempty"`
}

type bitwardenURI struct {
	URI string `json:"uri"`
}

// encodeBitwarden renders the Bitwarden-compatible unencrypted JSON export.
// Folders are derived from the distinct (vaultID, vaultName) pairs across
// the included accounts; the human-facing folder name is the vault display
// name, the id stays the vault identifier.
func (e *Encoder) encodeBitwarden(accounts []models.ExportedAccount, opts models.ExportOptions) ([]byte, error) {
	vaults := distinctVaults(accounts)

	out := bitwardenExport{
		Encrypted: false,
		Folders:   make([]bitwardenFolder, 0, len(vaults)),
		Items:     make([]bitwardenItem, 0, len(accounts)),
	}
	for _, vault := range vaults {
		out.Folders = append(out.Folders, bitwardenFolder{ID: vault.ID, Name: vault.Name})
	}

	for _, account := range accounts {
		item := bitwardenItem{
			ID:       account.ID,
			FolderID: account.VaultID,
			Type:     bitwardenTypeLogin,
			Name:     account.Title,
			Notes:    account.Notes,
			Login: bitwardenLogin{
				Username: account.Username,
			},
		}

		if account.URL != "" {
			item.Login.URIs = []bitwardenURI{{URI: account.URL}}
		}
		if opts.IncludePasswords {
			item.Login.Password = account.Password
		}
		if account.TOTP != nil {
			item.Login.TOTP = account.TOTP.Secret
		}
		for _, field := range account.CustomFields {
			item.Fields = append(item.Fields, bitwardenField{
				Name:  field.Name,
				Value: field.Value,
				Type:  bitwardenFieldType(field.Type),
			})
		}

		out.Items = append(out.Items, item)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal bitwarden export: %w", err)
	}
	return data, nil
}

func bitwardenFieldType(fieldType string) int {
	switch fieldType {
	case "password":
		return bitwardenFieldHidden
	case "boolean":
		return bitwardenFieldBoolean
	default:
		return bitwardenFieldText
	}
}
