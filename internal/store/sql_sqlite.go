// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps *sql.DB so repositories can embed it and call the database/sql
// API directly.
type DB struct {
	*sql.DB
}

// NewSQLiteDB opens (or creates) the SQLite database at dbPath and verifies
// the connection. Use ":memory:" for an ephemeral database in tests.
func NewSQLiteDB(dbPath string) (*DB, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return &DB{db}, nil
}
