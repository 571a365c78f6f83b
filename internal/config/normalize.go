package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeProcessing()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if c.Batch.Workers <= 0 {
		c.Batch.Workers = defaultWorkers
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeProcessing() {
	c.Processing.Merge = strings.ToLower(strings.TrimSpace(c.Processing.Merge))
	if c.Processing.Merge == "" {
		c.Processing.Merge = defaultMerge
	}
	c.Width.Numbers = normalizeWidth(c.Width.Numbers)
	c.Width.Letters = normalizeWidth(c.Width.Letters)
	if c.CJKSpacing.SpaceChar == "" {
		c.CJKSpacing.SpaceChar = Default().CJKSpacing.SpaceChar
	}
}

func normalizeWidth(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return defaultWidth
	}
	return strings.ReplaceAll(value, "-", "_")
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.Output.Format)), ".")
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	if value, ok := os.LookupEnv(EnvOutputDir); ok && strings.TrimSpace(value) != "" {
		c.Output.Dir = strings.TrimSpace(value)
	}
	var err error
	if c.Output.Dir, err = expandPath(strings.TrimSpace(c.Output.Dir)); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(EnvStateDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.StateDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	var err error
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
