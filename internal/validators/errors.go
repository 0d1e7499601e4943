// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown validation field")

	ErrUnknownFormat      = errors.New("unknown export format")
	ErrNoVaultsSelected   = errors.New("no vaults selected for export")
	ErrEmptyVaultID       = errors.New("empty vault id in selection")
	ErrMissingPassphrase  = errors.New("encrypted export requires a non-empty password")
	ErrMissingDestination = errors.New("no destination path provided")
)
