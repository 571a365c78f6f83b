package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Fingerprint hashes the settings that shape processed output. Paths, batch
// and logging settings are left out so moving the state directory or
// changing the worker count does not invalidate history.
func (c *Config) Fingerprint() (string, error) {
	shaping := struct {
		Processing Processing `toml:"processing"`
		Width      Width      `toml:"width"`
		CJKSpacing CJKSpacing `toml:"cjk_spacing"`
		Repetition Repetition `toml:"repetition"`
		Mapping    Mapping    `toml:"mapping"`
		Format     string     `toml:"format"`
		Speaker    bool       `toml:"show_speaker"`
		Ending     string     `toml:"ending"`
		PauseTip   int        `toml:"pause_tip"`
	}{
		Processing: c.Processing,
		Width:      c.Width,
		CJKSpacing: c.CJKSpacing,
		Repetition: c.Repetition,
		Mapping:    c.Mapping,
		Format:     c.Output.Format,
		Speaker:    c.Output.ShowSpeaker,
		Ending:     c.Output.Ending,
		PauseTip:   c.Output.PauseTip,
	}
	data, err := toml.Marshal(shaping)
	if err != nil {
		return "", fmt.Errorf("encode settings fingerprint: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
