package engine

import (
	"math"
	"testing"

	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

func referenceOEE() (model.OEEParameters, CostResult, int) {
	cost := CostPerPart(referenceCost(), 195)
	return model.DefaultOEEParameters(), cost, 195
}

func TestOEEProductIdentity(t *testing.T) {
	p, cost, life := referenceOEE()
	r := OEE(p, cost, life)

	product := (r.Availability / 100) * (r.Performance / 100) * (r.Quality / 100) * 100
	if math.Abs(r.OEE-product) > 1e-9 {
		t.Fatalf("OEE = %v, availability×performance×quality = %v", r.OEE, product)
	}
}

func TestOEEComponentsWithinRange(t *testing.T) {
	p, cost, life := referenceOEE()
	r := OEE(p, cost, life)

	for name, v := range map[string]float64{
		"oee": r.OEE, "availability": r.Availability,
		"performance": r.Performance, "quality": r.Quality,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s = %v, must be within [0, 100]", name, v)
		}
	}
}

func TestOEEReferenceBreakdown(t *testing.T) {
	p, cost, life := referenceOEE()
	r := OEE(p, cost, life)

	// 16 parts per life: 1/16 changes per part at 5 min each.
	if !almostEqual(r.ToolChangeImpact.ChangesPerPart, 1.0/16) {
		t.Errorf("ChangesPerPart = %v, want %v", r.ToolChangeImpact.ChangesPerPart, 1.0/16)
	}
	if !almostEqual(r.ToolChangeImpact.DowntimePerPart, 5.0/16) {
		t.Errorf("tool change downtime = %v, want %v", r.ToolChangeImpact.DowntimePerPart, 5.0/16)
	}

	// 0.5 h/shift distributed over 4000/365 parts per day.
	wantUnplanned := (0.5 * 60) / (4000.0 / 365)
	wantTotal := 5.0/16 + wantUnplanned
	if !almostEqual(r.DowntimePerPart, wantTotal) {
		t.Errorf("DowntimePerPart = %v, want %v", r.DowntimePerPart, wantTotal)
	}

	if r.IdealCycleTime != 10 {
		t.Errorf("IdealCycleTime = %v, want processing time 10", r.IdealCycleTime)
	}
	if !almostEqual(r.ActualCycleTime, 12+wantTotal) {
		t.Errorf("ActualCycleTime = %v, want %v", r.ActualCycleTime, 12+wantTotal)
	}

	wantAvailability := (1 - wantTotal/(12+wantTotal)) * 100
	if !almostEqual(r.Availability, wantAvailability) {
		t.Errorf("Availability = %v, want %v", r.Availability, wantAvailability)
	}
	if !almostEqual(r.Quality, 98) {
		t.Errorf("Quality = %v, want 98", r.Quality)
	}
}

func TestOEELossesAreComplements(t *testing.T) {
	p, cost, life := referenceOEE()
	r := OEE(p, cost, life)

	if !almostEqual(r.Availability+r.AvailabilityLoss, 100) {
		t.Errorf("availability + loss = %v, want 100", r.Availability+r.AvailabilityLoss)
	}
	if !almostEqual(r.Performance+r.PerformanceLoss, 100) {
		t.Errorf("performance + loss = %v, want 100", r.Performance+r.PerformanceLoss)
	}
	if !almostEqual(r.Quality+r.QualityLoss, 100) {
		t.Errorf("quality + loss = %v, want 100", r.Quality+r.QualityLoss)
	}
}

func TestOEEZeroPartsPerLifeHasNoToolChangeDowntime(t *testing.T) {
	p := model.DefaultOEEParameters()
	cost := CostPerPart(model.CostParameters{ToolCost: 50, HourlyRate: 50}, 195)
	r := OEE(p, cost, 195)

	if r.ToolChangeImpact.ChangesPerPart != 0 {
		t.Errorf("ChangesPerPart = %v, want 0", r.ToolChangeImpact.ChangesPerPart)
	}
	if math.IsNaN(r.OEE) {
		t.Error("OEE must not be NaN")
	}
}

func TestOEEDefectRateClamps(t *testing.T) {
	p, cost, life := referenceOEE()
	p.DefectRatePercent = 150
	r := OEE(p, cost, life)
	if r.Quality != 0 {
		t.Errorf("Quality = %v, want clamp to 0", r.Quality)
	}
	if r.OEE != 0 {
		t.Errorf("OEE = %v, want 0 with zero quality", r.OEE)
	}
}

func TestOEEZeroPartsPerYearSkipsUnplannedDistribution(t *testing.T) {
	p, cost, life := referenceOEE()
	p.PartsPerYear = 0
	r := OEE(p, cost, life)
	if !almostEqual(r.DowntimePerPart, r.ToolChangeImpact.DowntimePerPart) {
		t.Errorf("DowntimePerPart = %v, want tool change downtime only %v",
			r.DowntimePerPart, r.ToolChangeImpact.DowntimePerPart)
	}
}
