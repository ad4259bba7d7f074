// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment. Struct fields are
// mapped via their `env` and `envPrefix` tags on [StructuredConfig].
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, os.Environ())
}

// parseEnvFrom reads "KEY=value" pairs instead of the process environment.
func parseEnvFrom(cfg any, environ []string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: env.ToMap(environ)})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
