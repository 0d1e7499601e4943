// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scratch manages the short-lived staging files of the export
// pipeline. Every scratch file is access-restricted (0600), encrypted at
// rest under a storage-local key that is unrelated to any user passphrase,
// and owned by exactly one export call. The orchestrator guarantees deletion
// on every exit path; this package only has to make deletion possible and
// idempotent.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/simple-vault/internal/crypto"
	"github.com/MKhiriev/simple-vault/internal/logger"
	"github.com/MKhiriev/simple-vault/models"
)

// maxHintLen caps the diagnosability hint embedded in scratch file names.
const maxHintLen = 32

// Manager allocates scratch files inside one directory, all encrypted under
// a single per-manager storage key generated at construction time.
type Manager struct {
	dir    string
	key    []byte
	crypto crypto.EnvelopeService
	logger *logger.Logger
}

// NewManager constructs a Manager writing into dir (the OS temp directory
// when dir is empty). A fresh random storage key is generated per manager;
// scratch files from one process run are unreadable by any other.
func NewManager(dir string, cryptoSvc crypto.EnvelopeService, log *logger.Logger) (*Manager, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	key, err := cryptoSvc.GenerateStorageKey()
	if err != nil {
		return nil, fmt.Errorf("generate scratch storage key: %w", err)
	}

	return &Manager{
		dir:    dir,
		key:    key,
		crypto: cryptoSvc,
		logger: log,
	}, nil
}

// Allocate creates a uniquely named scratch file for one export call, tagged
// with the export format and a sanitized vault-name hint. The hint is for
// diagnosability only and must never contain secret material; Allocate
// strips everything but letters, digits, '-' and '_' as a second line of
// defence.
func (m *Manager) Allocate(format models.ExportFormat, hint string) (*File, error) {
	name := fmt.Sprintf("export-%s-%s-%s.tmp", format, sanitizeHint(hint), uuid.NewString())
	path := filepath.Join(m.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("allocate scratch file: %w", err)
	}
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("close scratch file: %w", err)
	}

	m.logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Msg("scratch file allocated")

	return &File{path: path, manager: m}, nil
}

// File is one scratch file. It is exclusively owned by the export call that
// allocated it and must be deleted before the call returns.
type File struct {
	path    string
	manager *Manager
}

// Path returns the scratch file location.
func (f *File) Path() string {
	return f.path
}

// Write encrypts data under the manager's storage key and persists it.
// The plaintext never reaches the filesystem.
func (f *File) Write(data []byte) error {
	blob, err := f.manager.crypto.EncryptBytes(data, f.manager.key)
	if err != nil {
		return fmt.Errorf("encrypt scratch payload: %w", err)
	}

	if err = os.WriteFile(f.path, blob, 0o600); err != nil {
		return fmt.Errorf("write scratch file: %w", err)
	}

	return nil
}

// Read loads and decrypts the staged payload.
func (f *File) Read() ([]byte, error) {
	blob, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read scratch file: %w", err)
	}

	data, err := f.manager.crypto.DecryptBytes(blob, f.manager.key)
	if err != nil {
		return nil, fmt.Errorf("decrypt scratch payload: %w", err)
	}

	return data, nil
}

// Delete removes the scratch file. Deleting an already-deleted file is not
// an error, so cleanup paths can call Delete unconditionally.
func (f *File) Delete() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete scratch file: %w", err)
	}
	return nil
}

// sanitizeHint reduces hint to a short, filesystem- and log-safe token.
func sanitizeHint(hint string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(hint) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}

	s := b.String()
	if s == "" {
		s = "vault"
	}
	if len(s) > maxHintLen {
		s = s[:maxHintLen]
	}
	return s
}
