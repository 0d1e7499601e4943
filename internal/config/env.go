// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates an ExportConfig from environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` tags.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv() (ExportConfig, error) {
	var cfg ExportConfig
	if err := env.Parse(&cfg); err != nil {
		return ExportConfig{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}
