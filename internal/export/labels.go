package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/cnc-toolcalc/internal/engine"
)

// LabelInfo holds the data encoded into each tool label's QR code, so
// a scanned label recalls the tool's setup at the machine.
type LabelInfo struct {
	Name         string  `json:"name"`
	Material     string  `json:"material"`
	ToolMaterial string  `json:"tool_material"`
	Coating      string  `json:"coating"`
	Diameter     float64 `json:"diameter_mm"`
	Teeth        int     `json:"teeth"`
	CuttingSpeed float64 `json:"speed_m_min"`
	FeedPerTooth float64 `json:"feed_mm_tooth"`
	DepthOfCut   float64 `json:"ap_mm"`
	WidthOfCut   float64 `json:"ae_mm"`
	ToolLife     int     `json:"tool_life_min"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns,
// 10 rows per page). Each label cell is approximately 66.7mm x 25.4mm
// on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	labelPadding    = 2.0
	qrSize          = 20.0 // QR code size in mm
)

// renderLabelPages appends QR-coded label pages to an open PDF, one
// label per comparison entry.
func renderLabelPages(pdf *fpdf.Fpdf, entries []engine.Entry) error {
	for i, e := range entries {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, collectLabelInfo(e), e.ID); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", e.Name, err)
		}
	}
	return nil
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo, id string) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", id)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	name := info.Name
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	geo := fmt.Sprintf("D%.1f Z%d %s", info.Diameter, info.Teeth, info.ToolMaterial)
	pdf.CellFormat(textW, 3.5, geo, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	cut := fmt.Sprintf("vc %.0f  fz %.3f  ap %.1f", info.CuttingSpeed, info.FeedPerTooth, info.DepthOfCut)
	pdf.CellFormat(textW, 3, cut, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.CellFormat(textW, 3, fmt.Sprintf("life %d min", info.ToolLife), "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// collectLabelInfo extracts label data from a comparison entry for use
// in label rendering or alternative export formats.
func collectLabelInfo(e engine.Entry) LabelInfo {
	return LabelInfo{
		Name:         e.Name,
		Material:     string(e.Cutting.Material),
		ToolMaterial: string(e.Cutting.ToolMaterial),
		Coating:      string(e.Cutting.Coating),
		Diameter:     e.Cutting.ToolDiameter,
		Teeth:        e.Cutting.Teeth,
		CuttingSpeed: e.Cutting.CuttingSpeed,
		FeedPerTooth: e.Cutting.FeedPerTooth,
		DepthOfCut:   e.Cutting.DepthOfCut,
		WidthOfCut:   e.Cutting.WidthOfCut,
		ToolLife:     e.ToolLifeMinutes,
	}
}
