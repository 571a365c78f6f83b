package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tap/internal/caption"
	"tap/internal/config"
	"tap/internal/faults"
	"tap/internal/pipeline"
)

func newSpeakersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "speakers <file.ass>",
		Short: "Show which speaker each caption colour was attributed to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			doc, err := caption.Load(path, logger)
			if err != nil {
				return faults.Wrap(faults.ErrInput, "cli", "speakers", "", err)
			}
			opts, err := cfg.Pipeline()
			if err != nil {
				return err
			}
			result := pipeline.New(opts, logger).Process(cmd.Context(), doc)

			rows := make([][]string, 0, len(result.Speakers.Colors))
			for _, speaker := range result.Speakers.Colors {
				rows = append(rows, []string{
					speaker.Color.String(),
					speaker.Name,
					strings.Join(speaker.Candidates, ", "),
					strconv.Itoa(speaker.Events),
				})
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No coloured captions found")
			} else {
				fmt.Fprintln(out, renderTable(
					[]string{"Color", "Speaker", "Candidates", "Lines"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
				))
			}
			fmt.Fprintf(out, "Speakers: %s\n", strings.Join(doc.Speakers(), ", "))
			fmt.Fprintf(out, "Unknown labels assigned: %d\n", result.Speakers.Unknown)
			return nil
		},
	}
}
