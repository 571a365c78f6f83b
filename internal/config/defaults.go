package config

import (
	"tap/internal/repetition"
	"tap/internal/textnorm"
)

const (
	defaultConfigPath   = "~/.config/tap/config.toml"
	projectConfigName   = "tap.toml"
	defaultStateDir     = "~/.local/share/tap"
	defaultMerge        = "auto"
	defaultWidth        = "half"
	defaultOutputFormat = "txt"
	defaultWorkers      = 4
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Environment overrides, also read from a .env file by the CLI.
const (
	EnvLogLevel  = "TAP_LOG_LEVEL"
	EnvOutputDir = "TAP_OUTPUT_DIR"
	EnvStateDir  = "TAP_STATE_DIR"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Processing: Processing{
			Merge:               defaultMerge,
			FilterInterjections: true,
		},
		Width: Width{
			Numbers:             defaultWidth,
			Letters:             defaultWidth,
			ConvertHalfKatakana: true,
		},
		CJKSpacing: CJKSpacing{
			SpaceChar: textnorm.DefaultSpaceChar,
		},
		Repetition: Repetition{
			Enabled:   true,
			Connector: repetition.DefaultConnector,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Batch: Batch{
			Workers: defaultWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
