package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tap/internal/caption"
	"tap/internal/config"
	"tap/internal/faults"
	"tap/internal/fileutil"
	"tap/internal/history"
	"tap/internal/logging"
	"tap/internal/pipeline"
	"tap/internal/render"
)

// Options adjusts a single run without touching the loaded config.
type Options struct {
	// Force reprocesses inputs that history says are unchanged.
	Force bool
	// OutputFile names the destination when exactly one input is processed.
	OutputFile string
	// NoHistory disables the history store for the run.
	NoHistory bool
}

// Runner processes caption files with a shared configuration.
type Runner struct {
	cfg         *config.Config
	opts        Options
	processor   *pipeline.Processor
	format      render.Format
	renderOpts  render.Options
	fingerprint string
	logger      *slog.Logger
}

// NewRunner validates cfg and prepares a runner. Invalid settings are
// reported as configuration errors.
func NewRunner(cfg *config.Config, opts Options, logger *slog.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "batch", "init", "config is required", nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pipelineOpts, err := cfg.Pipeline()
	if err != nil {
		return nil, err
	}
	format, renderOpts, err := cfg.Render()
	if err != nil {
		return nil, err
	}
	fingerprint, err := cfg.Fingerprint()
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "batch", "fingerprint", "", err)
	}
	logger = logging.NewComponentLogger(logger, "batch")
	return &Runner{
		cfg:         cfg,
		opts:        opts,
		processor:   pipeline.New(pipelineOpts, logger),
		format:      format,
		renderOpts:  renderOpts,
		fingerprint: fingerprint,
		logger:      logger,
	}, nil
}

// Run processes inputs with at most cfg.Batch.Workers files in flight. Every
// input gets a FileResult; the returned error joins the per-file failures.
func (r *Runner) Run(ctx context.Context, inputs []string) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()
	report := &Report{RunID: uuid.NewString()}
	ctx = logging.WithRunID(ctx, report.RunID)
	logger := logging.WithContext(ctx, r.logger)

	if err := r.cfg.EnsureDirectories(); err != nil {
		return report, faults.Wrap(faults.ErrState, "batch", "prepare", "", err)
	}
	lock := flock.New(r.cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return report, faults.Wrap(faults.ErrState, "batch", "lock", "acquire run lock", err)
	}
	if !ok {
		return report, faults.Wrap(faults.ErrState, "batch", "lock", "another tap run is using "+r.cfg.Paths.StateDir, nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	var store *history.Store
	if !r.opts.NoHistory {
		store, err = history.Open(r.cfg.HistoryPath())
		if err != nil {
			logger.Warn("history unavailable; every input will be processed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "unchanged inputs are not skipped"),
				logging.String(logging.FieldErrorHint, "delete "+r.cfg.HistoryPath()+" to reset history"),
			)
			store = nil
		} else {
			defer store.Close()
		}
	}

	report.Files = make([]FileResult, len(inputs))
	logger.Info("batch run started",
		logging.Int("inputs", len(inputs)),
		logging.Int("workers", r.cfg.Batch.Workers),
		logging.String("format", r.format.String()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Batch.Workers)
	for i, input := range inputs {
		g.Go(func() error {
			report.Files[i] = r.processFile(gctx, store, input, len(inputs) == 1)
			return nil
		})
	}
	_ = g.Wait()
	report.Elapsed = time.Since(started)

	var errs []error
	for _, file := range report.Files {
		if file.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file.Input, file.Err))
		}
	}
	logger.Info("batch run completed",
		logging.Int("processed", report.Count(faults.StatusProcessed)),
		logging.Int("skipped", report.Count(faults.StatusSkipped)),
		logging.Int("failed", report.Failed()),
		logging.Duration("elapsed", report.Elapsed),
	)
	return report, errors.Join(errs...)
}

func (r *Runner) processFile(ctx context.Context, store *history.Store, input string, single bool) FileResult {
	started := time.Now()
	logger := logging.WithContext(ctx, r.logger).With(logging.String(logging.FieldInput, input))
	result := FileResult{Input: input, Output: r.outputPath(input, single)}
	finish := func(err error) FileResult {
		result.Err = err
		result.Status = faults.Status(err)
		result.Elapsed = time.Since(started)
		if err != nil {
			logger.Error("caption file failed",
				logging.String("status", result.Status),
				logging.Error(err),
			)
		}
		return result
	}

	if err := ctx.Err(); err != nil {
		return finish(err)
	}

	sum, err := fileutil.HashFile(input)
	if err != nil {
		return finish(faults.Wrap(faults.ErrInput, "batch", "hash", "", err))
	}

	if store != nil && !r.opts.Force {
		if previous, lookupErr := store.Lookup(ctx, input); lookupErr != nil {
			logger.Warn("history lookup failed", logging.Error(lookupErr))
		} else if r.unchanged(previous, sum, result.Output) {
			result.Events = previous.Events
			result.Speakers = previous.Speakers
			result.Status = faults.StatusSkipped
			result.Elapsed = time.Since(started)
			logger.Info("caption file unchanged; skipping",
				logging.String("output", result.Output),
				logging.String("processed_at", previous.ProcessedAt.Format(time.RFC3339)),
			)
			return result
		}
	}

	doc, err := caption.Load(input, logger)
	if err != nil {
		return finish(faults.Wrap(faults.ErrInput, "batch", "parse", "", err))
	}
	processed := r.processor.Process(ctx, doc)
	result.Events = processed.Output
	result.Speakers = len(doc.Speakers())

	if err := render.Save(result.Output, doc, r.format, r.renderOpts); err != nil {
		return finish(faults.Wrap(faults.ErrOutput, "batch", "save", "", err))
	}
	logger.Info("caption file written",
		logging.String("output", result.Output),
		logging.Int("events", result.Events),
		logging.Int("speakers", result.Speakers),
	)

	if store != nil {
		runID, _ := logging.RunIDFromContext(ctx)
		_, recordErr := store.Record(ctx, history.Entry{
			InputPath:    input,
			InputSHA256:  sum,
			SettingsHash: r.fingerprint,
			OutputPath:   result.Output,
			Format:       r.format.String(),
			Events:       result.Events,
			Speakers:     result.Speakers,
			RunID:        runID,
		})
		if recordErr != nil {
			logger.Warn("failed to record history",
				logging.Error(recordErr),
				logging.String(logging.FieldImpact, "file will be reprocessed next run"),
			)
		}
	}
	return finish(nil)
}

func (r *Runner) unchanged(previous *history.Entry, sum, output string) bool {
	if !previous.Matches(sum, r.fingerprint) || previous.OutputPath != output {
		return false
	}
	_, err := os.Stat(output)
	return err == nil
}

func (r *Runner) outputPath(input string, single bool) string {
	if single && r.opts.OutputFile != "" {
		return r.opts.OutputFile
	}
	return render.OutputPath(input, r.cfg.Output.Dir, r.format)
}
