// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ApplyEnv overrides chart settings from STOCKAXES_* environment variables.
// Variables which are not set leave the configuration unchanged.
// Overrides are applied to copies only, they are never written to the configuration file.
func ApplyEnv(c *ChartConfig) error {
	err := env.ParseWithOptions(c, env.Options{Prefix: envOverridesPrefix})
	if err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	c.Sanitize()
	return nil
}
