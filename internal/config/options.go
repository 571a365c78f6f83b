package config

import (
	"tap/internal/merge"
	"tap/internal/pipeline"
	"tap/internal/render"
	"tap/internal/textnorm"
)

// Pipeline builds the typed processing options.
func (c *Config) Pipeline() (pipeline.Options, error) {
	strategy, err := merge.ParseStrategy(c.Processing.Merge)
	if err != nil {
		return pipeline.Options{}, invalid("processing.merge: %v", err)
	}
	digits, err := textnorm.ParseWidthStrategy(c.Width.Numbers)
	if err != nil {
		return pipeline.Options{}, invalid("width.numbers: %v", err)
	}
	letters, err := textnorm.ParseWidthStrategy(c.Width.Letters)
	if err != nil {
		return pipeline.Options{}, invalid("width.letters: %v", err)
	}
	subs, err := textnorm.NewSubstitutions(rules(c.Mapping.Text), rules(c.Mapping.Regex))
	if err != nil {
		return pipeline.Options{}, invalid("mapping.regex: %v", err)
	}
	return pipeline.Options{
		Merge:               strategy,
		FilterInterjections: c.Processing.FilterInterjections,
		Digits:              digits,
		Letters:             letters,
		ConvertHalfKatakana: c.Width.ConvertHalfKatakana,
		CJKSpacing:          c.CJKSpacing.Enabled,
		SpaceChar:           c.CJKSpacing.SpaceChar,
		AdjustRepetition:    c.Repetition.Enabled,
		Connector:           c.Repetition.Connector,
		Substitutions:       subs,
	}, nil
}

// Render builds the output format and serializer options.
func (c *Config) Render() (render.Format, render.Options, error) {
	format, err := render.ParseFormat(c.Output.Format)
	if err != nil {
		return 0, render.Options{}, invalid("output.format: %v", err)
	}
	if c.Output.PauseTip < 0 {
		return 0, render.Options{}, invalid("output.pause_tip must not be negative")
	}
	return format, render.Options{
		ShowSpeaker: c.Output.ShowSpeaker,
		Ending:      c.Output.Ending,
		PauseTip:    c.Output.PauseTip,
	}, nil
}

func rules(in []Rule) []textnorm.Replacement {
	out := make([]textnorm.Replacement, 0, len(in))
	for _, r := range in {
		out = append(out, textnorm.Replacement{From: r.From, To: r.To})
	}
	return out
}
