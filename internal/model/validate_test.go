package model

import (
	"strings"
	"testing"
)

func validCutting() CuttingParameters {
	return CuttingParameters{
		Material:     MaterialSteel,
		ToolMaterial: ToolCarbide,
		Coating:      CoatingTiN,
		CuttingSpeed: 100,
		FeedPerTooth: 0.1,
		DepthOfCut:   2,
		WidthOfCut:   5,
		ToolDiameter: 10,
		Teeth:        4,
		Hardness:     30,
	}
}

func validCost() CostParameters {
	return CostParameters{
		ToolCost:       50,
		ProcessingTime: 10,
		ToolChangeTime: 2,
		ToolChangeCost: 5,
		HourlyRate:     50,
		BatchSize:      1,
	}
}

func TestValidInputsPass(t *testing.T) {
	if err := ValidateInputs(validCutting(), validCost()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateReportsAllViolationsAtOnce(t *testing.T) {
	p := validCutting()
	p.CuttingSpeed = 0
	p.FeedPerTooth = -1
	p.ToolDiameter = 0
	p.Teeth = 0

	err := p.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Violations) != 4 {
		t.Errorf("expected 4 violations, got %d: %v", len(verr.Violations), verr.Violations)
	}
}

func TestValidateInputsMergesBothRecords(t *testing.T) {
	p := validCutting()
	p.DepthOfCut = 0
	c := validCost()
	c.ToolCost = 0
	c.HourlyRate = 0

	err := ValidateInputs(p, c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	verr := err.(*ValidationError)
	if len(verr.Violations) != 3 {
		t.Errorf("expected 3 violations, got %d: %v", len(verr.Violations), verr.Violations)
	}
	if !strings.Contains(err.Error(), "tool cost") {
		t.Errorf("error should mention tool cost: %v", err)
	}
}

func TestTimePerPartPrefersExplicitOverride(t *testing.T) {
	c := validCost()
	if got := c.TimePerPart(); got != 12 {
		t.Errorf("TimePerPart = %v, want 12", got)
	}
	c.MachiningTime = 15
	if got := c.TimePerPart(); got != 15 {
		t.Errorf("TimePerPart with override = %v, want 15", got)
	}
}

func TestEffectiveHardnessDefaults(t *testing.T) {
	p := CuttingParameters{}
	if got := p.EffectiveHardness(); got != DefaultHardness {
		t.Errorf("EffectiveHardness = %v, want %v", got, DefaultHardness)
	}
	p.Hardness = 45
	if got := p.EffectiveHardness(); got != 45 {
		t.Errorf("EffectiveHardness = %v, want 45", got)
	}
}
