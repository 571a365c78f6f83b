package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Processing contains the stage toggles.
type Processing struct {
	Merge               string `toml:"merge"`
	FilterInterjections bool   `toml:"filter_interjections"`
}

// Width contains the character width conversion strategies.
type Width struct {
	Numbers             string `toml:"numbers"`
	Letters             string `toml:"letters"`
	ConvertHalfKatakana bool   `toml:"convert_half_katakana"`
}

// CJKSpacing controls spacing between Japanese and Latin text.
type CJKSpacing struct {
	Enabled   bool   `toml:"enabled"`
	SpaceChar string `toml:"space_char"`
}

// Repetition controls stutter collapsing.
type Repetition struct {
	Enabled   bool   `toml:"enabled"`
	Connector string `toml:"connector"`
}

// Rule is one ordered substitution.
type Rule struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Mapping holds user substitution tables. Literal rules run before regex
// rules, each in file order.
type Mapping struct {
	Text  []Rule `toml:"text"`
	Regex []Rule `toml:"regex"`
}

// Output contains serializer settings.
type Output struct {
	Format      string `toml:"format"`
	Dir         string `toml:"dir"`
	ShowSpeaker bool   `toml:"show_speaker"`
	Ending      string `toml:"ending"`
	PauseTip    int    `toml:"pause_tip"`
}

// Paths contains directory configuration.
type Paths struct {
	StateDir string `toml:"state_dir"`
}

// Batch contains batch driver settings.
type Batch struct {
	Workers int `toml:"workers"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for tap.
//
// Configuration sections by subsystem:
//   - Processing: merge strategy and interjection filtering
//   - Width: digit/letter width strategies and halfwidth katakana
//   - CJKSpacing: spacing between Japanese and Latin runs
//   - Repetition: stutter collapsing
//   - Mapping: user literal and regex substitutions
//   - Output: format, destination and presentation
//   - Paths: state directory for history and the run lock
//   - Batch: parallel workers
//   - Logging: log format and level
type Config struct {
	Processing Processing `toml:"processing"`
	Width      Width      `toml:"width"`
	CJKSpacing CJKSpacing `toml:"cjk_spacing"`
	Repetition Repetition `toml:"repetition"`
	Mapping    Mapping    `toml:"mapping"`
	Output     Output     `toml:"output"`
	Paths      Paths      `toml:"paths"`
	Batch      Batch      `toml:"batch"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, invalid("parse %s: %v", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state directory used by the history store
// and the run lock.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.StateDir, err)
	}
	return nil
}

// HistoryPath returns the SQLite history database location.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// LockPath returns the batch run lock location.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, "tap.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sample returns the embedded sample configuration.
func Sample() string {
	return sampleConfig
}
