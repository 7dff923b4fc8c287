package engine

import (
	"math"
	"testing"

	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

func referenceCost() model.CostParameters {
	return model.CostParameters{
		ToolCost:       50,
		ProcessingTime: 10,
		ToolChangeTime: 2,
		ToolChangeCost: 5,
		HourlyRate:     50,
		BatchSize:      1,
	}
}

func TestCostPerPartReferenceScenario(t *testing.T) {
	r := CostPerPart(referenceCost(), 195)

	if r.TimePerPart != 12 {
		t.Errorf("TimePerPart = %v, want 12", r.TimePerPart)
	}
	if r.PartsPerToolLife != 16 {
		t.Errorf("PartsPerToolLife = %d, want 16", r.PartsPerToolLife)
	}
	if r.ToolChangesPerToolLife != 15 {
		t.Errorf("ToolChangesPerToolLife = %d, want 15", r.ToolChangesPerToolLife)
	}
	if !almostEqual(r.ToolChangeCostPerPart, 75.0/16) {
		t.Errorf("ToolChangeCostPerPart = %v, want %v", r.ToolChangeCostPerPart, 75.0/16)
	}
	if !almostEqual(r.ToolCostPerPart, 50.0/195) {
		t.Errorf("ToolCostPerPart = %v, want %v", r.ToolCostPerPart, 50.0/195)
	}
	if !almostEqual(r.MachiningCostPerPart, 10) {
		t.Errorf("MachiningCostPerPart = %v, want 10", r.MachiningCostPerPart)
	}
	want := 50.0/195 + 75.0/16 + 10
	if !almostEqual(r.TotalCostPerPart, want) {
		t.Errorf("TotalCostPerPart = %v, want %v", r.TotalCostPerPart, want)
	}
	if math.Abs(r.TotalCostPerPart-14.944) > 0.001 {
		t.Errorf("TotalCostPerPart = %v, want ≈14.944", r.TotalCostPerPart)
	}
}

func TestCostAdditiveIdentity(t *testing.T) {
	cases := []struct {
		name string
		cost model.CostParameters
		life int
	}{
		{"reference", referenceCost(), 195},
		{"short life", referenceCost(), 5},
		{"no change cost", model.CostParameters{ToolCost: 20, ProcessingTime: 3, HourlyRate: 80}, 100},
		{"override time", model.CostParameters{ToolCost: 20, ProcessingTime: 3, MachiningTime: 7, HourlyRate: 80}, 60},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			r := CostPerPart(tt.cost, tt.life)
			sum := r.ToolCostPerPart + r.ToolChangeCostPerPart + r.MachiningCostPerPart
			if !almostEqual(r.TotalCostPerPart, sum) {
				t.Errorf("TotalCostPerPart = %v, parts sum to %v", r.TotalCostPerPart, sum)
			}
		})
	}
}

func TestBatchScalingIsExactlyLinear(t *testing.T) {
	for _, batch := range []int{1, 2, 10, 500} {
		c := referenceCost()
		c.BatchSize = batch
		r := CostPerPart(c, 195)
		if !almostEqual(r.TotalBatchCost, r.TotalCostPerPart*float64(batch)) {
			t.Errorf("batch %d: TotalBatchCost = %v, want %v",
				batch, r.TotalBatchCost, r.TotalCostPerPart*float64(batch))
		}
	}
}

func TestMachiningTimeOverrideDrivesMachiningCost(t *testing.T) {
	c := referenceCost()
	c.MachiningTime = 30
	r := CostPerPart(c, 195)

	if r.TimePerPart != 30 {
		t.Errorf("TimePerPart = %v, want 30", r.TimePerPart)
	}
	// (30/60)*50 = 25, not the (10+2)-derived 10.
	if !almostEqual(r.MachiningCostPerPart, 25) {
		t.Errorf("MachiningCostPerPart = %v, want 25", r.MachiningCostPerPart)
	}
	// Processing cost still reflects pure cutting time.
	if !almostEqual(r.ProcessingCostPerPart, 50.0/6) {
		t.Errorf("ProcessingCostPerPart = %v, want %v", r.ProcessingCostPerPart, 50.0/6)
	}
}

func TestZeroTimePerPartSoftDegrades(t *testing.T) {
	c := model.CostParameters{ToolCost: 50, HourlyRate: 50}
	r := CostPerPart(c, 195)

	if r.PartsPerToolLife != 0 {
		t.Errorf("PartsPerToolLife = %d, want 0", r.PartsPerToolLife)
	}
	if r.ToolChangesPerToolLife != 0 {
		t.Errorf("ToolChangesPerToolLife = %d, want 0", r.ToolChangesPerToolLife)
	}
	if r.ToolChangeCostPerPart != 0 {
		t.Errorf("ToolChangeCostPerPart = %v, want 0", r.ToolChangeCostPerPart)
	}
	if math.IsNaN(r.TotalCostPerPart) || math.IsInf(r.TotalCostPerPart, 0) {
		t.Error("TotalCostPerPart must stay finite")
	}
}

func TestToolLifeShorterThanPartTimeSoftDegrades(t *testing.T) {
	c := referenceCost() // 12 min per part
	r := CostPerPart(c, 5)

	if r.PartsPerToolLife != 0 {
		t.Errorf("PartsPerToolLife = %d, want 0", r.PartsPerToolLife)
	}
	if r.ToolChangeCostPerPart != 0 {
		t.Errorf("ToolChangeCostPerPart = %v, want 0", r.ToolChangeCostPerPart)
	}
}

func TestResidualValueReducesToolCost(t *testing.T) {
	c := referenceCost()
	c.ToolResidualValue = 10
	r := CostPerPart(c, 195)
	if !almostEqual(r.ToolCostPerPart, 40.0/195) {
		t.Errorf("ToolCostPerPart = %v, want %v", r.ToolCostPerPart, 40.0/195)
	}
}

func TestSinglePartToolLifeHasNoChanges(t *testing.T) {
	// Exactly one part fits: no change after the very last part.
	c := referenceCost()
	r := CostPerPart(c, 12)
	if r.PartsPerToolLife != 1 {
		t.Fatalf("PartsPerToolLife = %d, want 1", r.PartsPerToolLife)
	}
	if r.ToolChangesPerToolLife != 0 {
		t.Errorf("ToolChangesPerToolLife = %d, want 0", r.ToolChangesPerToolLife)
	}
	if r.ToolChangeCostPerPart != 0 {
		t.Errorf("ToolChangeCostPerPart = %v, want 0", r.ToolChangeCostPerPart)
	}
}
