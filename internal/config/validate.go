package config

import (
	"fmt"

	"tap/internal/faults"
	"tap/internal/logging"
)

// Validate ensures the configuration is usable. Every failure wraps
// faults.ErrConfiguration.
func (c *Config) Validate() error {
	if _, err := c.Pipeline(); err != nil {
		return err
	}
	if _, _, err := c.Render(); err != nil {
		return err
	}
	if c.Batch.Workers <= 0 {
		return invalid("batch.workers must be positive")
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return invalid("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", faults.ErrConfiguration, fmt.Sprintf(format, args...))
}
