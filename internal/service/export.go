// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service hosts the export pipeline: the data collector, the
// security filter, and the orchestrator sequencing authentication,
// validation, audit, collection, encoding and the final write. All failure
// modes are encoded in models.ExportResult; no error or panic crosses the
// package boundary.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/simple-vault/internal/logger"
	"github.com/MKhiriev/simple-vault/internal/store"
	"github.com/MKhiriev/simple-vault/internal/validators"
	"github.com/MKhiriev/simple-vault/models"
)

// exportOperationLabel is the prompt shown by the authentication gate.
const exportOperationLabel = "Confirm export of vault data"

// User-facing failure messages. Each export call yields exactly one of
// these, or the authentication gate's own message.
const (
	msgInvalidOptions   = "Invalid export options"
	msgAuditUnavailable = "Security audit could not be completed"
	msgAuditBlocked     = "Export blocked by security audit"
	msgScratchFailure   = "Could not allocate secure scratch storage"
	msgPayloadUnsafe    = "Export data contains unencrypted sensitive information"
	msgEncodingFailed   = "Export encoding failed"
	msgStorageFailure   = "Could not write export file"
)

// ExportService is the top-level orchestrator. It owns the in-flight
// account list and the scratch file for the duration of one Export call;
// nothing else may reference either after the call returns.
type ExportService struct {
	auth      Authenticator
	validator validators.Validator
	auditor   SecurityAuditor
	scratch   ScratchAllocator
	collector *Collector
	encoder   PayloadEncoder
	logger    *logger.Logger

	// now is the export clock, injectable for deterministic tests.
	now func() time.Time
}

// NewExportService wires the orchestrator with its collaborators.
func NewExportService(
	auth Authenticator,
	validator validators.Validator,
	auditor SecurityAuditor,
	scratchStorage ScratchAllocator,
	storage store.VaultStorage,
	encoder PayloadEncoder,
	log *logger.Logger,
) *ExportService {
	return &ExportService{
		auth:      auth,
		validator: validator,
		auditor:   auditor,
		scratch:   scratchStorage,
		collector: NewCollector(storage),
		encoder:   encoder,
		logger:    log,
		now:       time.Now,
	}
}

// Export runs the full pipeline and writes the encoded representation to
// destinationPath. It aborts on the first failing step and always deletes
// the scratch file before returning, on every exit path.
func (s *ExportService) Export(ctx context.Context, destinationPath string, options models.ExportOptions) models.ExportResult {
	log := s.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	log.Info().
		Str("format", string(options.Format)).
		Int("vault_count", len(options.VaultIDs)).
		Bool("include_passwords", options.IncludePasswords).
		Bool("include_totp", options.IncludeTOTP).
		Bool("include_custom_fields", options.IncludeCustomFields).
		Bool("include_metadata", options.IncludeMetadata).
		Msg("export attempt")

	if auth := s.auth.Authenticate(ctx, exportOperationLabel); !auth.Success {
		log.Warn().Err(ErrAuthenticationFailed).Msg("authentication gate rejected export")
		message := auth.ErrorMessage
		if message == "" {
			message = "Authentication failed"
		}
		return failure(options.Format, message)
	}

	if err := s.validator.Validate(ctx, options); err != nil {
		log.Warn().Err(errors.Join(ErrInvalidOptions, err)).Msg("export options rejected")
		return failure(options.Format, msgInvalidOptions)
	}
	if destinationPath == "" {
		log.Warn().Err(errors.Join(ErrInvalidOptions, validators.ErrMissingDestination)).Msg("export options rejected")
		return failure(options.Format, msgInvalidOptions)
	}

	report, err := s.auditor.AuditStorage(ctx)
	if err != nil {
		log.Err(err).Msg("storage audit failed to run")
		return failure(options.Format, msgAuditUnavailable)
	}
	if !report.Compliant {
		log.Warn().Err(ErrSecurityAuditBlocked).Strs("issues", report.Issues).Msg("storage audit blocked export")
		return failure(options.Format, msgAuditBlocked+": "+strings.Join(report.Issues, "; "))
	}

	// Vault ids are non-secret identifiers, safe as a file-name hint.
	file, err := s.scratch.Allocate(options.Format, options.VaultIDs[0])
	if err != nil {
		log.Err(errors.Join(ErrStorageIO, err)).Msg("scratch allocation failed")
		return failure(options.Format, msgScratchFailure)
	}
	defer func() {
		if err := file.Delete(); err != nil {
			log.Warn().Err(err).Str("path", file.Path()).Msg("scratch cleanup failed")
		}
	}()

	accounts, skipped := s.collector.Collect(ctx, options.VaultIDs)
	filtered := applySecurityFilter(accounts, options)

	probe, err := json.Marshal(filtered)
	if err != nil {
		log.Err(errors.Join(ErrEncodingFailed, err)).Msg("payload serialization failed")
		return failure(options.Format, msgEncodingFailed)
	}
	if !s.auditor.AuditExportPayload(probe) {
		log.Error().Err(ErrPayloadSecurityCheck).Msg("payload safety check rejected export")
		return failure(options.Format, msgPayloadUnsafe)
	}

	encoded, err := s.encoder.Encode(filtered, options, s.now())
	if err != nil {
		log.Err(errors.Join(ErrEncodingFailed, err)).Msg("encoding failed")
		return failure(options.Format, msgEncodingFailed)
	}

	if err = file.Write(encoded); err != nil {
		log.Err(errors.Join(ErrStorageIO, err)).Msg("scratch write failed")
		return failure(options.Format, msgStorageFailure)
	}
	staged, err := file.Read()
	if err != nil {
		log.Err(errors.Join(ErrStorageIO, err)).Msg("scratch read-back failed")
		return failure(options.Format, msgStorageFailure)
	}
	if err = os.WriteFile(destinationPath, staged, 0o600); err != nil {
		log.Err(errors.Join(ErrStorageIO, err)).Str("path", destinationPath).Msg("destination write failed")
		return failure(options.Format, msgStorageFailure)
	}

	log.Info().
		Str("path", destinationPath).
		Int("exported", len(filtered)).
		Int("bytes", len(encoded)).
		Strs("skipped_vaults", skipped).
		Msg("export completed")

	return models.ExportResult{
		Success:         true,
		FilePath:        destinationPath,
		ExportedCount:   len(filtered),
		Format:          options.Format,
		SkippedVaultIDs: skipped,
	}
}

func failure(format models.ExportFormat, message string) models.ExportResult {
	return models.ExportResult{Format: format, ErrorMessage: message}
}
