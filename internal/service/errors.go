// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Pipeline failure classes. The orchestrator never lets an error value cross
// its boundary (every failure becomes an ExportResult), so these sentinels
// classify log events rather than returned errors.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidOptions       = errors.New("invalid export options")
	ErrSecurityAuditBlocked = errors.New("export blocked by security audit")
	ErrPayloadSecurityCheck = errors.New("export payload failed security check")
	ErrEncodingFailed       = errors.New("export encoding failed")
	ErrStorageIO            = errors.New("export storage failure")
)
