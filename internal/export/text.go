package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/piwi3910/cnc-toolcalc/internal/engine"
)

// WriteJSON writes the evaluation as indented JSON.
func WriteJSON(w io.Writer, ev engine.Evaluation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ev)
}

// WriteText writes a plain-text report of a single evaluation. The
// records are embedded as computed; nothing is rederived here.
func WriteText(w io.Writer, ev engine.Evaluation) error {
	p := func(format string, args ...any) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	p("Tool Evaluation")
	p("===============")
	p("Material:            %s", ev.Cutting.Material)
	p("Tool:                %s, %s coating, D%.1f mm, %d teeth",
		ev.Cutting.ToolMaterial, ev.Cutting.Coating, ev.Cutting.ToolDiameter, ev.Cutting.Teeth)
	p("")
	p("Physics")
	p("  Spindle speed:     %.0f RPM", ev.Physics.SpindleSpeed)
	p("  Feed rate:         %.0f mm/min", ev.Physics.FeedRate)
	p("  MRR:               %.0f mm3/min", ev.Physics.MRR)
	p("  Cutting force:     %.0f N", ev.Physics.CuttingForce)
	p("  Power:             %.2f kW", ev.Physics.Power)
	p("  Torque:            %.2f Nm", ev.Physics.Torque)
	p("  Surface finish:    %.2f um Ra", ev.Physics.SurfaceFinish)
	p("")
	p("Tool life:           %d min (%d parts, %d changes)",
		ev.ToolLifeMinutes, ev.CostResult.PartsPerToolLife, ev.CostResult.ToolChangesPerToolLife)
	p("")
	p("Cost per part")
	p("  Tool:              %.4f", ev.CostResult.ToolCostPerPart)
	p("  Tool change:       %.4f", ev.CostResult.ToolChangeCostPerPart)
	p("  Machining:         %.4f", ev.CostResult.MachiningCostPerPart)
	p("  Total:             %.4f", ev.CostResult.TotalCostPerPart)
	p("  Batch (%d):        %.2f", ev.CostResult.BatchSize, ev.CostResult.TotalBatchCost)
	p("")
	p("OEE                  %.1f%%", ev.OEE.OEE)
	p("  Availability:      %.1f%%", ev.OEE.Availability)
	p("  Performance:       %.1f%%", ev.OEE.Performance)
	p("  Quality:           %.1f%%", ev.OEE.Quality)

	if len(ev.Recommendations) > 0 {
		p("")
		p("Recommendations")
		for _, r := range ev.Recommendations {
			p("  - %s", r.Message)
		}
	}
	return nil
}
