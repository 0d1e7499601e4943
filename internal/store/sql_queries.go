// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

// accountColumns is the fixed column order scanned by scanAccountRecord.
var accountColumns = []string{
	"id",
	"vault_id",
	"title",
	"username",
	"password",
	"url",
	"notes",
	"category",
	"tags",
	"totp_secret",
	"totp_issuer",
	"totp_account_name",
	"totp_digits",
	"totp_period",
	"totp_algorithm",
	"custom_fields",
	"metadata",
	"created_at",
	"updated_at",
	"encrypted",
}

// SQLite uses ? placeholders, same as squirrel's default Question format.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSelectVaultQuery builds the lookup of a single vault by id.
func buildSelectVaultQuery(vaultID string) (string, []any, error) {
	return builder.
		Select("id", "name", "created_at", "updated_at").
		From("vaults").
		Where(sq.Eq{"id": vaultID}).
		ToSql()
}

// buildSelectAccountsQuery builds the listing of all live account records of
// one vault, in insertion order.
func buildSelectAccountsQuery(vaultID string) (string, []any, error) {
	return builder.
		Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"vault_id": vaultID}).
		Where(sq.Eq{"deleted": false}).
		OrderBy("rowid").
		ToSql()
}

// buildCountPlaintextQuery builds the storage-audit count of live records
// persisted without at-rest encryption.
func buildCountPlaintextQuery() (string, []any, error) {
	return builder.
		Select("COUNT(*)").
		From("accounts").
		Where(sq.Eq{"encrypted": false}).
		Where(sq.Eq{"deleted": false}).
		ToSql()
}
