package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cnc-toolcalc/internal/catalog"
	"github.com/piwi3910/cnc-toolcalc/internal/engine"
	"github.com/piwi3910/cnc-toolcalc/internal/project"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var sessionFlag string
	var saveFlag string

	cmd := &cobra.Command{
		Use:   "compare [catalogue-file...]",
		Short: "Compare tool configurations and compute savings",
		Long: `Compare tool configurations imported from CSV/Excel catalogues or a
saved session. Prints a ranking and, with two or more tools, the
potential savings between the cheapest and most expensive option.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := buildComparison(cmd, ctx, args, sessionFlag)
			if err != nil {
				return err
			}
			if agg.Len() == 0 {
				return errors.New("no tools to compare; pass a catalogue file or --session")
			}

			printComparison(cmd, agg, ctx.cfg.Currency)

			if saveFlag != "" {
				if err := project.Save(saveFlag, project.FromAggregator("comparison", agg)); err != nil {
					return fmt.Errorf("save session: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Session saved to %s\n", saveFlag)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionFlag, "session", "", "Load tools from a saved session file")
	cmd.Flags().StringVar(&saveFlag, "save", "", "Save the comparison set to a session file")

	return cmd
}

// buildComparison assembles an aggregator from a saved session and/or
// imported catalogue files. Rows that fail validation are reported and
// skipped; missing cost fields are filled from the config defaults.
func buildComparison(cmd *cobra.Command, ctx *commandContext, files []string, sessionPath string) (*engine.Aggregator, error) {
	agg := engine.NewAggregator()

	if sessionPath != "" {
		s, err := project.Load(sessionPath)
		if err != nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
		restored, errs := s.Restore()
		for _, e := range errs {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", e)
		}
		agg = restored
	}

	for _, file := range files {
		result := catalog.ImportFile(file)
		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s: %s\n", file, w)
		}
		for _, e := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %s\n", file, e)
		}
		for _, tool := range result.Tools {
			cost := tool.Cost
			if cost.HourlyRate <= 0 {
				cost.HourlyRate = ctx.cfg.HourlyRate
			}
			if cost.BatchSize < 1 {
				cost.BatchSize = ctx.cfg.BatchSize
			}
			if _, err := agg.Add(tool.Cutting, cost); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: tool %q: %v\n", file, tool.Cutting.Name, err)
			}
		}
	}

	return agg, nil
}

func printComparison(cmd *cobra.Command, agg *engine.Aggregator, currency string) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, agg.Len())
	for _, e := range agg.Entries() {
		rows = append(rows, []string{
			e.ID,
			e.Name,
			fmt.Sprintf("%d", e.ToolLifeMinutes),
			fmt.Sprintf("%s%.4f", currency, e.CostResult.TotalCostPerPart),
			fmt.Sprintf("%.0f", e.MRR),
			fmt.Sprintf("%d", e.CostResult.PartsPerToolLife),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"ID", "Tool", "Life (min)", "Cost/part", "MRR (mm³/min)", "Parts/life"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
	))

	if best, ok := agg.BestBy(engine.MetricCost); ok {
		fmt.Fprintf(out, "Cheapest:      %s (%s%.4f per part)\n",
			best.Name, currency, best.CostResult.TotalCostPerPart)
	}
	if best, ok := agg.BestBy(engine.MetricToolLife); ok {
		fmt.Fprintf(out, "Longest life:  %s (%d min)\n", best.Name, best.ToolLifeMinutes)
	}
	if best, ok := agg.BestBy(engine.MetricMRR); ok {
		fmt.Fprintf(out, "Highest MRR:   %s (%.0f mm³/min)\n", best.Name, best.MRR)
	}

	savings, err := agg.Savings()
	if err != nil {
		if errors.Is(err, engine.ErrNotEnoughEntries) {
			fmt.Fprintln(out, "\nSavings: add a second tool to compare savings")
		}
		return
	}

	fmt.Fprintln(out, kvTable("Potential Savings", [][2]string{
		{"Cheapest tool", savings.Cheapest},
		{"Most expensive tool", savings.MostExpensive},
		{"Per part", fmt.Sprintf("%s%.4f (%.2f%%)", currency, savings.CostDifference, savings.SavingsPercent)},
		{"Per batch", fmt.Sprintf("%s%.2f", currency, savings.BatchSavings)},
		{"Per 100 parts", fmt.Sprintf("%s%.2f", currency, savings.SavingsPer100Parts)},
		{"Projected annual", fmt.Sprintf("%s%.2f", currency, savings.AnnualSavings)},
	}))
}
