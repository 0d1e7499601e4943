// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	ErrVaultNotFound = errors.New("vault not found")
)
