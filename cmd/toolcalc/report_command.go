package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cnc-toolcalc/internal/engine"
	"github.com/piwi3910/cnc-toolcalc/internal/export"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var sessionFlag string
	var outFlag string
	var titleFlag string

	cmd := &cobra.Command{
		Use:   "report [catalogue-file...]",
		Short: "Write a PDF comparison report with QR-coded tool labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := buildComparison(cmd, ctx, args, sessionFlag)
			if err != nil {
				return err
			}
			if agg.Len() == 0 {
				return errors.New("no tools to report on; pass a catalogue file or --session")
			}

			var savings *engine.Savings
			if s, err := agg.Savings(); err == nil {
				savings = &s
			}

			if err := export.ExportPDF(outFlag, titleFlag, agg.Entries(), savings); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outFlag)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionFlag, "session", "", "Load tools from a saved session file")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "toolcalc-report.pdf", "Output PDF path")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Report title")

	return cmd
}
