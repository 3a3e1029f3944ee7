package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies
// the invariants the application depends on at startup. Defaults have
// already been applied, so empty required fields mean a source
// explicitly blanked them.
func (cfg *StructuredConfig) validate() error {
	if !strings.Contains(cfg.App.AdminEmail, "@") {
		return fmt.Errorf("%w: admin email %q", ErrInvalidConfig, cfg.App.AdminEmail)
	}
	if cfg.Jobs.BaseURL == "" {
		return fmt.Errorf("%w: jobs base URL is empty", ErrInvalidConfig)
	}
	return nil
}
