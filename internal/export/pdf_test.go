package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/cnc-toolcalc/internal/engine"
	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

func sampleEntries(t *testing.T) ([]engine.Entry, *engine.Savings) {
	t.Helper()
	agg := engine.NewAggregator()

	p := model.CuttingParameters{
		Name:         "EconoMill 4F",
		Material:     model.MaterialSteel,
		ToolMaterial: model.ToolCoatedCarbide,
		Coating:      model.CoatingTiN,
		ToolDiameter: 10,
		Teeth:        4,
		CuttingSpeed: 100,
		FeedPerTooth: 0.1,
		DepthOfCut:   2,
		WidthOfCut:   5,
	}
	c := model.CostParameters{
		ToolCost:       50,
		ProcessingTime: 10,
		ToolChangeTime: 2,
		ToolChangeCost: 75,
		HourlyRate:     50,
	}
	if _, err := agg.Add(p, c); err != nil {
		t.Fatal(err)
	}

	p.Name = "PremiumCut X"
	p.ToolMaterial = model.ToolHSS
	p.Coating = model.CoatingNone
	c.ToolCost = 120
	if _, err := agg.Add(p, c); err != nil {
		t.Fatal(err)
	}

	s, err := agg.Savings()
	if err != nil {
		t.Fatal(err)
	}
	return agg.Entries(), &s
}

func TestExportPDFWritesFile(t *testing.T) {
	entries, savings := sampleEntries(t)
	path := filepath.Join(t.TempDir(), "report.pdf")

	if err := ExportPDF(path, "Tool comparison", entries, savings); err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestExportPDFNilSavings(t *testing.T) {
	entries, _ := sampleEntries(t)
	path := filepath.Join(t.TempDir(), "single.pdf")

	if err := ExportPDF(path, "Single tool", entries[:1], nil); err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestExportPDFNoEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportPDF(path, "Empty", nil, nil); err == nil {
		t.Fatal("expected error for empty entry list")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("no file should be written on error")
	}
}

func TestWriteTextIncludesKeyResults(t *testing.T) {
	entries, _ := sampleEntries(t)
	ev := engine.Evaluation{
		Cutting:         entries[0].Cutting,
		Cost:            entries[0].Cost,
		Physics:         engine.Physics{SpindleSpeed: 3183, Power: 0.33},
		ToolLifeMinutes: entries[0].ToolLifeMinutes,
		CostResult:      entries[0].CostResult,
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, ev); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Steel", "195 min", "Total:", "OEE"} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	entries, _ := sampleEntries(t)
	ev := engine.Evaluation{
		Cutting:         entries[0].Cutting,
		ToolLifeMinutes: entries[0].ToolLifeMinutes,
		CostResult:      entries[0].CostResult,
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, ev); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"tool_life_minutes": 195`) {
		t.Errorf("JSON output missing tool life:\n%s", buf.String())
	}
}
