package pipeline

import (
	"tap/internal/merge"
	"tap/internal/repetition"
	"tap/internal/textnorm"
)

// Options is the validated processing configuration for one run. Build it
// once and share it read-only between documents.
type Options struct {
	Merge               merge.Strategy
	FilterInterjections bool

	Digits              textnorm.WidthStrategy
	Letters             textnorm.WidthStrategy
	ConvertHalfKatakana bool

	CJKSpacing bool
	SpaceChar  string

	AdjustRepetition bool
	Connector        string

	Substitutions textnorm.Substitutions
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		Merge:               merge.Auto,
		FilterInterjections: true,
		Digits:              textnorm.WidthHalf,
		Letters:             textnorm.WidthHalf,
		ConvertHalfKatakana: true,
		SpaceChar:           textnorm.DefaultSpaceChar,
		AdjustRepetition:    true,
		Connector:           repetition.DefaultConnector,
	}
}
