// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package format

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/simple-vault/models"
)

type onePasswordExport struct {
	Accounts []onePasswordAccount `json:"accounts"`
}

type onePasswordAccount struct {
	UUID         string              `json:"uuid"`
	CreatedAt    int64               `json:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt"`
	State        string              `json:"state"`
	CategoryUUID string              `json:"categoryUuid"`
	Details      onePasswordDetails  `json:"details"`
	Overview     onePasswordOverview `json:"overview"`
}

type onePasswordDetails struct {
	LoginFields []onePasswordField `json:"loginFields"`
}

type onePasswordField struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Value       string `json:"value"`
	Designation string `json:"designation,omitempty"`
}

type onePasswordOverview struct {
	Title string   `json:"title"`
	URL   string   `json:"url,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// encode1Password renders the simplified 1Password JSON export. TOTP and
// custom fields are not modeled by this format (capability flags false);
// the password login field is always present, carrying whatever value the
// filtering stage left in place. Timestamps become whole-second epochs,
// zero when the record has none.
func (e *Encoder) encode1Password(accounts []models.ExportedAccount, now time.Time) ([]byte, error) {
	out := onePasswordExport{
		Accounts: make([]onePasswordAccount, 0, len(accounts)),
	}

	for _, account := range accounts {
		id := account.ID
		if id == "" {
			id = uuid.NewString()
		}

		entry := onePasswordAccount{
			UUID:         id,
			CreatedAt:    epochSeconds(account.CreatedAt, now),
			UpdatedAt:    epochSeconds(account.ModifiedAt, now),
			State:        "active",
			CategoryUUID: "login",
			Details: onePasswordDetails{
				LoginFields: []onePasswordField{
					{ID: "username", Name: "username", Value: account.Username, Designation: "username"},
					{ID: "password", Name: "password", Value: account.Password, Designation: "password"},
				},
			},
			Overview: onePasswordOverview{
				Title: account.Title,
				URL:   account.URL,
				Tags:  account.Tags,
			},
		}

		out.Accounts = append(out.Accounts, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal 1password export: %w", err)
	}
	return data, nil
}

// epochSeconds converts an optional timestamp to a whole-second epoch,
// falling back to the export clock when the record has none.
func epochSeconds(t *time.Time, fallback time.Time) int64 {
	if t == nil {
		return fallback.UTC().Unix()
	}
	return t.UTC().Unix()
}
