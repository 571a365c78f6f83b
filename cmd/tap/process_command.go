package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tap/internal/batch"
	"tap/internal/config"
	"tap/internal/faults"
	"tap/internal/render"
)

type processFlags struct {
	format    string
	output    string
	speaker   bool
	merge     string
	noClean   bool
	space     bool
	workers   int
	force     bool
	noHistory bool
}

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var flags processFlags

	cmd := &cobra.Command{
		Use:   "process <paths...>",
		Short: "Process caption files or directories of captions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			inputs := batch.Collect(args, logger)
			if len(inputs) == 0 {
				return errors.New("no caption files found in the given paths")
			}

			effective := *cfg
			opts, err := flags.apply(cmd, &effective, len(inputs))
			if err != nil {
				return err
			}

			runner, err := batch.NewRunner(&effective, opts, logger)
			if err != nil {
				return err
			}
			report, runErr := runner.Run(cmd.Context(), inputs)
			if report == nil || len(report.Files) == 0 {
				return runErr
			}
			printReport(cmd, report)
			if runErr != nil {
				return fmt.Errorf("%d of %d files failed: %w", report.Failed(), len(report.Files), runErr)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.format, "format", "", "Output format (ass, srt, txt)")
	f.StringVarP(&flags.output, "output", "o", "", "Output directory, or output file when processing a single input")
	f.BoolVarP(&flags.speaker, "speaker", "a", false, "Show speaker names in the output")
	f.StringVar(&flags.merge, "merge", "", "Merge strategy for lines sharing a timestamp (none, auto, force)")
	f.BoolVar(&flags.noClean, "no-clean", false, "Keep interjections and filler")
	f.BoolVar(&flags.space, "space", false, "Insert spaces between Japanese and Latin text")
	f.IntVar(&flags.workers, "workers", 0, "Files processed in parallel")
	f.BoolVar(&flags.force, "force", false, "Reprocess files even when history says they are unchanged")
	f.BoolVar(&flags.noHistory, "no-history", false, "Neither consult nor update the history store")
	return cmd
}

// apply layers explicitly set flags over cfg. A single input with an output
// path ending in a known caption extension names the output file and, unless
// --format was given, its format.
func (f processFlags) apply(cmd *cobra.Command, cfg *config.Config, inputs int) (batch.Options, error) {
	changed := cmd.Flags().Changed
	opts := batch.Options{Force: f.force, NoHistory: f.noHistory}

	if changed("format") {
		cfg.Output.Format = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(f.format)), ".")
	}
	if changed("speaker") {
		cfg.Output.ShowSpeaker = f.speaker
	}
	if changed("merge") {
		cfg.Processing.Merge = strings.ToLower(strings.TrimSpace(f.merge))
	}
	if changed("no-clean") {
		cfg.Processing.FilterInterjections = !f.noClean
	}
	if changed("space") {
		cfg.CJKSpacing.Enabled = f.space
	}
	if changed("workers") {
		cfg.Batch.Workers = f.workers
	}

	if output := strings.TrimSpace(f.output); output != "" {
		expanded, err := config.ExpandPath(output)
		if err != nil {
			return opts, fmt.Errorf("resolve output path: %w", err)
		}
		if format, err := render.ParseFormat(filepath.Ext(expanded)); err == nil && inputs == 1 {
			opts.OutputFile = expanded
			if !changed("format") {
				cfg.Output.Format = format.String()
			}
		} else {
			cfg.Output.Dir = expanded
		}
	}
	return opts, nil
}

func printReport(cmd *cobra.Command, report *batch.Report) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	rows := make([][]string, 0, len(report.Files))
	for _, file := range report.Files {
		output := file.Output
		if file.Err != nil {
			output = file.Err.Error()
		}
		rows = append(rows, []string{
			filepath.Base(file.Input),
			renderStatus(file.Status, colorize),
			strconv.Itoa(file.Events),
			strconv.Itoa(file.Speakers),
			output,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"File", "Status", "Lines", "Speakers", "Output"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	))
	fmt.Fprintf(out, "Run %s: %d processed, %d skipped, %d failed in %s\n",
		report.RunID,
		report.Count(faults.StatusProcessed),
		report.Count(faults.StatusSkipped),
		report.Failed(),
		report.Elapsed.Round(time.Millisecond),
	)
}
