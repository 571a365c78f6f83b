package testsupport

import (
	"path/filepath"
	"testing"

	"tap/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Output.Dir = filepath.Join(base, "out")
	cfgVal.Batch.Workers = 2

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithOutputFormat overrides the output format on the test config.
func WithOutputFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WithMerge overrides the merge strategy on the test config.
func WithMerge(strategy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Processing.Merge = strategy
	}
}

// WithInterjectionFilter toggles the interjection filter.
func WithInterjectionFilter(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Processing.FilterInterjections = enabled
	}
}

// WithInPlaceOutput clears the output dir so results land next to inputs.
func WithInPlaceOutput() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Dir = ""
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
