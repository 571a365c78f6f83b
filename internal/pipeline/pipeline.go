// Package pipeline runs the caption processing stages over a parsed
// document, from width normalization through speaker attribution to merging.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"tap/internal/caption"
	"tap/internal/interjection"
	"tap/internal/logging"
	"tap/internal/merge"
	"tap/internal/repetition"
	"tap/internal/speaker"
	"tap/internal/textnorm"
)

// Stage names used in log records.
const (
	StageNormalize    = "normalize"
	StageStrip        = "strip"
	StageAttribute    = "attribute"
	StageCleanup      = "cleanup"
	StageInterjection = "interjection"
	StageRepetition   = "repetition"
	StageMerge        = "merge"
	StageSpacing      = "spacing"
	StageSubstitute   = "substitute"
	StageWestern      = "western"
)

// Processor applies a fixed set of Options to documents. It holds no
// per-document state and is safe for concurrent use.
type Processor struct {
	opts   Options
	logger *slog.Logger
}

// Result summarizes one Process call.
type Result struct {
	Input    int
	Output   int
	Dropped  int
	Merged   int
	Speakers speaker.Result
	Elapsed  time.Duration
}

// New builds a Processor.
func New(opts Options, logger *slog.Logger) *Processor {
	if opts.SpaceChar == "" {
		opts.SpaceChar = textnorm.DefaultSpaceChar
	}
	return &Processor{opts: opts, logger: logging.NewComponentLogger(logger, "pipeline")}
}

// Options returns the options the processor was built with.
func (p *Processor) Options() Options {
	return p.opts
}

// Process rewrites doc in place. The context only carries logging fields.
func (p *Processor) Process(ctx context.Context, doc *caption.Document) Result {
	logger := logging.WithContext(ctx, p.logger)
	started := time.Now()
	result := Result{Input: len(doc.Events)}

	p.each(doc, func(text string) string {
		text = textnorm.ConvertDigits(text, p.opts.Digits)
		text = textnorm.ConvertLetters(text, p.opts.Letters)
		text = textnorm.NormalizePunctuation(text)
		if p.opts.ConvertHalfKatakana {
			text = textnorm.ConvertHalfKatakana(text)
		}
		return text
	})
	stageDone(logger, StageNormalize, doc)

	p.each(doc, func(text string) string {
		return textnorm.StripGaiji(textnorm.StripIcons(text))
	})
	stageDone(logger, StageStrip, doc)

	result.Speakers = speaker.Attribute(doc, logger)
	stageDone(logger, StageAttribute, doc, logging.Int("unknown", result.Speakers.Unknown))

	speaker.Cleanup(doc)
	dropped := doc.RemoveEmpty()
	result.Dropped += dropped
	stageDone(logger, StageCleanup, doc, logging.Int("dropped", dropped))

	if p.opts.FilterInterjections {
		p.each(doc, interjection.Filter)
		dropped = doc.RemoveEmpty()
		result.Dropped += dropped
		stageDone(logger, StageInterjection, doc, logging.Int("dropped", dropped))
	}

	if p.opts.AdjustRepetition {
		p.each(doc, func(text string) string {
			return repetition.Adjust(text, p.opts.Connector)
		})
		stageDone(logger, StageRepetition, doc)
	}

	before := len(doc.Events)
	doc.Events = merge.Apply(doc.Events, p.opts.Merge)
	result.Merged = before - len(doc.Events)
	stageDone(logger, StageMerge, doc,
		logging.String("strategy", p.opts.Merge.String()),
		logging.Int("merged", result.Merged),
	)

	if p.opts.CJKSpacing {
		p.each(doc, func(text string) string {
			return textnorm.AddCJKSpacing(text, p.opts.SpaceChar)
		})
		stageDone(logger, StageSpacing, doc)
	}

	if !p.opts.Substitutions.Empty() {
		p.each(doc, p.opts.Substitutions.Apply)
		stageDone(logger, StageSubstitute, doc, logging.Int("rules", p.opts.Substitutions.Len()))
	}

	p.each(doc, textnorm.FixWesternSpacing)
	stageDone(logger, StageWestern, doc)

	result.Output = len(doc.Events)
	result.Elapsed = time.Since(started)
	logger.Info("caption processing completed",
		logging.Int("events_in", result.Input),
		logging.Int("events_out", result.Output),
		logging.Int("speakers", len(doc.Speakers())),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result
}

func (p *Processor) each(doc *caption.Document, fn func(string) string) {
	for _, event := range doc.Events {
		event.Text = fn(event.Text)
	}
}

func stageDone(logger *slog.Logger, stage string, doc *caption.Document, attrs ...logging.Attr) {
	attrs = append([]logging.Attr{
		logging.String(logging.FieldStage, stage),
		logging.Int("events", len(doc.Events)),
	}, attrs...)
	logger.Info("stage completed", logging.Args(attrs...)...)
}
