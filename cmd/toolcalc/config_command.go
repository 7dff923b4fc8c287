package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cnc-toolcalc/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize the defaults file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.cfg
			fmt.Fprintln(cmd.OutOrStdout(), kvTable("Defaults", [][2]string{
				{"Currency", cfg.Currency},
				{"Hourly rate", fmt.Sprintf("%.2f", cfg.HourlyRate)},
				{"Batch size", fmt.Sprintf("%d", cfg.BatchSize)},
				{"Defect rate", fmt.Sprintf("%.1f %%", cfg.OEE.DefectRatePercent)},
				{"Unplanned downtime", fmt.Sprintf("%.2f h/shift", cfg.OEE.UnplannedDowntimeHours)},
				{"Tool change loss", fmt.Sprintf("%.1f min", cfg.OEE.ToolChangeTimeLoss)},
				{"Parts per year", fmt.Sprintf("%.0f", cfg.OEE.PartsPerYear)},
			}))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write an annotated sample config to the default location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if err := config.WriteSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sample config written to %s\n", path)
			return nil
		},
	})

	return cmd
}
