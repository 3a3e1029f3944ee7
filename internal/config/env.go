package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via caarlos0/env,
// mapping fields through the `env` and `envPrefix` tags declared on
// [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing env variables: %w", err)
	}
	return nil
}
