// Package config loads process configuration for portfolio commands.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from PORTFOLIO_* environment variables, applying
// envDefault tags for unset keys.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
