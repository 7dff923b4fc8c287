// Package export renders computed evaluations and comparison sets into
// PDF, text, and JSON reports. The report layer embeds the engine's
// records verbatim; it formats, it never recomputes.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/cnc-toolcalc/internal/engine"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	contentWidth = pageWidth - marginLeft - marginRight

	rowHeight   = 6.0
	labelColW   = 80.0
	sectionSkip = 4.0
)

// ExportPDF writes a comparison report: one page per tool with the
// full cost and tool life breakdown, a ranking summary page, and a
// sheet of QR-coded tool labels. savings may be nil when fewer than
// two entries exist.
func ExportPDF(path, title string, entries []engine.Entry, savings *engine.Savings) error {
	if len(entries) == 0 {
		return fmt.Errorf("no tools to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)

	for i, e := range entries {
		pdf.AddPage()
		renderToolPage(pdf, e, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, title, entries, savings)

	if err := renderLabelPages(pdf, entries); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// renderToolPage draws one tool's parameters and results.
func renderToolPage(pdf *fpdf.Fpdf, e engine.Entry, num int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Tool %d: %s", num, e.Name)
	pdf.CellFormat(contentWidth, headerHeight, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	subtitle := fmt.Sprintf("%s | %s | %s coating",
		e.Cutting.Material, e.Cutting.ToolMaterial, e.Cutting.Coating)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 5, subtitle, "", 1, "L", false, 0, "")
	pdf.Ln(sectionSkip)

	renderSection(pdf, "Cutting Conditions", [][2]string{
		{"Cutting speed", fmt.Sprintf("%.1f m/min", e.Cutting.CuttingSpeed)},
		{"Feed per tooth", fmt.Sprintf("%.3f mm", e.Cutting.FeedPerTooth)},
		{"Depth of cut (ap)", fmt.Sprintf("%.2f mm", e.Cutting.DepthOfCut)},
		{"Width of cut (ae)", fmt.Sprintf("%.2f mm", e.Cutting.WidthOfCut)},
		{"Tool diameter", fmt.Sprintf("%.2f mm", e.Cutting.ToolDiameter)},
		{"Teeth", fmt.Sprintf("%d", e.Cutting.Teeth)},
	})

	renderSection(pdf, "Tool Life", [][2]string{
		{"Estimated tool life", fmt.Sprintf("%d min", e.ToolLifeMinutes)},
		{"Parts per tool life", fmt.Sprintf("%d", e.CostResult.PartsPerToolLife)},
		{"Tool changes per life", fmt.Sprintf("%d", e.CostResult.ToolChangesPerToolLife)},
		{"Material removal rate", fmt.Sprintf("%.0f mm3/min", e.MRR)},
	})

	renderSection(pdf, "Cost per Part", [][2]string{
		{"Tool cost", fmt.Sprintf("%.4f", e.CostResult.ToolCostPerPart)},
		{"Tool change cost", fmt.Sprintf("%.4f", e.CostResult.ToolChangeCostPerPart)},
		{"Machining cost", fmt.Sprintf("%.4f", e.CostResult.MachiningCostPerPart)},
		{"Total", fmt.Sprintf("%.4f", e.CostResult.TotalCostPerPart)},
		{fmt.Sprintf("Batch total (%d parts)", e.CostResult.BatchSize),
			fmt.Sprintf("%.2f", e.CostResult.TotalBatchCost)},
	})
}

// renderSummaryPage draws the comparison table and the savings block.
func renderSummaryPage(pdf *fpdf.Fpdf, title string, entries []engine.Entry, savings *engine.Savings) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	if title == "" {
		title = "Tool Comparison"
	}
	pdf.CellFormat(contentWidth, headerHeight, title, "", 1, "L", false, 0, "")
	pdf.Ln(sectionSkip)

	// Comparison table header
	cols := []struct {
		label string
		width float64
	}{
		{"Tool", 60}, {"Life (min)", 30}, {"Cost/part", 30},
		{"MRR (mm3/min)", 35}, {"Parts/life", 25},
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetX(marginLeft)
	for _, c := range cols {
		pdf.CellFormat(c.width, rowHeight, c.label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range entries {
		pdf.SetX(marginLeft)
		pdf.CellFormat(cols[0].width, rowHeight, e.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1].width, rowHeight, fmt.Sprintf("%d", e.ToolLifeMinutes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[2].width, rowHeight, fmt.Sprintf("%.4f", e.CostResult.TotalCostPerPart), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[3].width, rowHeight, fmt.Sprintf("%.0f", e.MRR), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[4].width, rowHeight, fmt.Sprintf("%d", e.CostResult.PartsPerToolLife), "1", 1, "R", false, 0, "")
	}

	if savings == nil {
		return
	}

	pdf.Ln(sectionSkip * 2)
	renderSection(pdf, "Potential Savings", [][2]string{
		{"Cheapest tool", savings.Cheapest},
		{"Most expensive tool", savings.MostExpensive},
		{"Saving per part", fmt.Sprintf("%.4f (%.2f%%)", savings.CostDifference, savings.SavingsPercent)},
		{"Saving per batch", fmt.Sprintf("%.2f", savings.BatchSavings)},
		{"Saving per 100 parts", fmt.Sprintf("%.2f", savings.SavingsPer100Parts)},
		{"Projected annual saving", fmt.Sprintf("%.2f", savings.AnnualSavings)},
	})
}

// renderSection draws a titled two-column key/value block.
func renderSection(pdf *fpdf.Fpdf, title string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		pdf.SetX(marginLeft)
		pdf.CellFormat(labelColW, rowHeight, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth-labelColW, rowHeight, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(sectionSkip)
}
