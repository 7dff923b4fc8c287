package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cnc-toolcalc/internal/catalog"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <catalogue-file>",
		Short: "Parse a tool catalogue and show what would be imported",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := catalog.ImportFile(args[0])
			out := cmd.OutOrStdout()

			if len(result.Tools) > 0 {
				rows := make([][]string, 0, len(result.Tools))
				for i, t := range result.Tools {
					name := t.Cutting.Name
					if name == "" {
						name = fmt.Sprintf("Tool %d", i+1)
					}
					rows = append(rows, []string{
						name,
						string(t.Cutting.Material),
						string(t.Cutting.ToolMaterial),
						string(t.Cutting.Coating),
						fmt.Sprintf("%.1f", t.Cutting.ToolDiameter),
						fmt.Sprintf("%d", t.Cutting.Teeth),
						fmt.Sprintf("%.0f", t.Cutting.CuttingSpeed),
						fmt.Sprintf("%.3f", t.Cutting.FeedPerTooth),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Tool", "Material", "Substrate", "Coating", "D (mm)", "Z", "vc (m/min)", "fz (mm)"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
				))
			}

			for _, w := range result.Warnings {
				fmt.Fprintln(out, "Warning:", w)
			}
			for _, e := range result.Errors {
				fmt.Fprintln(out, "Error:", e)
			}
			fmt.Fprintf(out, "%d tool(s) imported, %d error(s), %d warning(s)\n",
				len(result.Tools), len(result.Errors), len(result.Warnings))

			if len(result.Tools) == 0 && len(result.Errors) > 0 {
				return fmt.Errorf("import failed")
			}
			return nil
		},
	}
	return cmd
}
