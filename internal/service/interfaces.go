// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/simple-vault/internal/scratch"
	"github.com/MKhiriev/simple-vault/internal/security"
	"github.com/MKhiriev/simple-vault/models"
)

// AuthResult is the outcome of an authentication gate invocation.
type AuthResult struct {
	Success      bool
	ErrorMessage string
}

// Authenticator is the opaque device authentication gate. The mechanism
// (biometrics, device credentials) is outside this subsystem; the pipeline
// only needs pass/fail plus an optional user-facing message.
type Authenticator interface {
	// Authenticate prompts the user to approve the named operation.
	Authenticate(ctx context.Context, operation string) AuthResult
}

// SecurityAuditor gates export eligibility and double-checks outgoing
// payloads. Implemented by security.StorageAuditor.
type SecurityAuditor interface {
	// AuditStorage checks the vault store's at-rest hygiene.
	AuditStorage(ctx context.Context) (security.Report, error)

	// AuditExportPayload reports whether a serialized payload is safe to
	// write out.
	AuditExportPayload(payload []byte) bool
}

// ScratchFile is one staging file, exclusively owned by a single export
// call. Satisfied by *scratch.File.
type ScratchFile interface {
	Path() string
	Write(data []byte) error
	Read() ([]byte, error)
	Delete() error
}

// ScratchAllocator hands out scratch files for export staging.
type ScratchAllocator interface {
	Allocate(format models.ExportFormat, hint string) (ScratchFile, error)
}

// PayloadEncoder produces the final representation of a filtered account
// list. Satisfied by *format.Encoder.
type PayloadEncoder interface {
	Encode(accounts []models.ExportedAccount, opts models.ExportOptions, now time.Time) ([]byte, error)
}

// scratchAllocator adapts *scratch.Manager to the ScratchAllocator seam.
type scratchAllocator struct {
	manager *scratch.Manager
}

// NewScratchAllocator wraps a scratch manager for use by the orchestrator.
func NewScratchAllocator(manager *scratch.Manager) ScratchAllocator {
	return scratchAllocator{manager: manager}
}

func (a scratchAllocator) Allocate(format models.ExportFormat, hint string) (ScratchFile, error) {
	file, err := a.manager.Allocate(format, hint)
	if err != nil {
		return nil, err
	}
	return file, nil
}
