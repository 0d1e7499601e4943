// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Validator checks domain objects before they enter the export pipeline.
// Optional field names restrict validation to a subset of checks
// (field-level scoping); when omitted, a sensible default set is validated.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
