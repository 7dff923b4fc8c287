package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cnc-toolcalc/internal/engine"
	"github.com/piwi3910/cnc-toolcalc/internal/export"
	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

func newCalcCommand(ctx *commandContext) *cobra.Command {
	var f paramFlags
	var jsonOut bool
	var textOut bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Evaluate a single tool configuration",
		Long: `Evaluate a single tool configuration: tool life, cutting physics,
cost per part, OEE decomposition, and tuning recommendations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &f, ctx.cfg)

			ev, err := engine.Evaluate(f.cutting(), f.cost(), f.oee(ctx.cfg))
			if err != nil {
				return describeEvaluationError(err)
			}

			switch {
			case jsonOut:
				return export.WriteJSON(cmd.OutOrStdout(), ev)
			case textOut:
				return export.WriteText(cmd.OutOrStdout(), ev)
			default:
				printEvaluation(cmd, ev, ctx.cfg.Currency)
				return nil
			}
		},
	}

	addCuttingFlags(cmd, &f)
	addCostFlags(cmd, &f)
	addOEEFlags(cmd, &f)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the full evaluation as JSON")
	cmd.Flags().BoolVar(&textOut, "text", false, "Emit a plain-text report")

	return cmd
}

// describeEvaluationError expands a validation error into one line per
// violated constraint so every offending field is visible at once.
func describeEvaluationError(err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		for _, v := range verr.Violations {
			fmt.Fprintln(os.Stderr, "  -", v)
		}
		return fmt.Errorf("%d input constraint(s) violated", len(verr.Violations))
	}
	return err
}

func printEvaluation(cmd *cobra.Command, ev engine.Evaluation, currency string) {
	out := cmd.OutOrStdout()
	money := func(v float64) string { return fmt.Sprintf("%s%.4f", currency, v) }

	fmt.Fprintln(out, kvTable("Cutting Physics", [][2]string{
		{"Spindle speed", fmt.Sprintf("%.0f RPM", ev.Physics.SpindleSpeed)},
		{"Feed rate", fmt.Sprintf("%.0f mm/min", ev.Physics.FeedRate)},
		{"Feed per revolution", fmt.Sprintf("%.3f mm", ev.Physics.FeedPerRevolution)},
		{"Material removal rate", fmt.Sprintf("%.0f mm³/min", ev.Physics.MRR)},
		{"Chip thickness", fmt.Sprintf("%.4f mm", ev.Physics.ChipThickness)},
		{"Specific cutting force", fmt.Sprintf("%.0f N/mm²", ev.Physics.SpecificCuttingForce)},
		{"Cutting force", fmt.Sprintf("%.0f N", ev.Physics.CuttingForce)},
		{"Power", fmt.Sprintf("%.2f kW", ev.Physics.Power)},
		{"Torque", fmt.Sprintf("%.2f Nm", ev.Physics.Torque)},
		{"Surface finish", fmt.Sprintf("%.2f µm Ra", ev.Physics.SurfaceFinish)},
		{"MRR per kW", fmt.Sprintf("%.2f cm³/min/kW", ev.Physics.MRRPerPower)},
	}))

	fmt.Fprintln(out, kvTable("Tool Life & Cost", [][2]string{
		{"Tool life", fmt.Sprintf("%d min", ev.ToolLifeMinutes)},
		{"Parts per tool life", fmt.Sprintf("%d", ev.CostResult.PartsPerToolLife)},
		{"Tool cost per part", money(ev.CostResult.ToolCostPerPart)},
		{"Tool change cost per part", money(ev.CostResult.ToolChangeCostPerPart)},
		{"Machining cost per part", money(ev.CostResult.MachiningCostPerPart)},
		{"Total cost per part", money(ev.CostResult.TotalCostPerPart)},
		{fmt.Sprintf("Batch total (%d)", ev.CostResult.BatchSize),
			fmt.Sprintf("%s%.2f", currency, ev.CostResult.TotalBatchCost)},
	}))

	fmt.Fprintln(out, kvTable("OEE", [][2]string{
		{"OEE", fmt.Sprintf("%.1f %%", ev.OEE.OEE)},
		{"Availability", fmt.Sprintf("%.1f %%", ev.OEE.Availability)},
		{"Performance", fmt.Sprintf("%.1f %%", ev.OEE.Performance)},
		{"Quality", fmt.Sprintf("%.1f %%", ev.OEE.Quality)},
		{"Ideal cycle time", fmt.Sprintf("%.2f min", ev.OEE.IdealCycleTime)},
		{"Actual cycle time", fmt.Sprintf("%.2f min", ev.OEE.ActualCycleTime)},
		{"Downtime per part", fmt.Sprintf("%.2f min", ev.OEE.DowntimePerPart)},
	}))

	if len(ev.Recommendations) > 0 {
		rows := make([][]string, 0, len(ev.Recommendations))
		for _, r := range ev.Recommendations {
			rows = append(rows, []string{string(r.Type), r.Message})
		}
		fmt.Fprintln(out, renderTable([]string{"Advice", "Recommendation"}, rows,
			[]columnAlignment{alignLeft, alignLeft}))
	}
}
