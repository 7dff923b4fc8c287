package model

import (
	"fmt"
	"strings"
)

// ValidationError reports every violated input constraint at once so a
// caller can surface all offending fields in a single pass.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameters: %s", strings.Join(e.Violations, "; "))
}

// Validate checks the cutting parameters and returns a *ValidationError
// listing all violations, or nil when the record is usable.
func (p CuttingParameters) Validate() error {
	var violations []string
	if p.CuttingSpeed <= 0 {
		violations = append(violations, "cutting speed must be > 0")
	}
	if p.FeedPerTooth <= 0 {
		violations = append(violations, "feed per tooth must be > 0")
	}
	if p.DepthOfCut <= 0 {
		violations = append(violations, "depth of cut must be > 0")
	}
	if p.WidthOfCut <= 0 {
		violations = append(violations, "width of cut must be > 0")
	}
	if p.ToolDiameter <= 0 {
		violations = append(violations, "tool diameter must be > 0")
	}
	if p.Teeth < 1 {
		violations = append(violations, "number of teeth must be >= 1")
	}
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// Validate checks the cost parameters and returns a *ValidationError
// listing all violations, or nil when the record is usable.
func (c CostParameters) Validate() error {
	var violations []string
	if c.ToolCost <= 0 {
		violations = append(violations, "tool cost must be > 0")
	}
	if c.HourlyRate <= 0 {
		violations = append(violations, "machine hourly rate must be > 0")
	}
	if c.ProcessingTime < 0 || c.ToolChangeTime < 0 || c.MachiningTime < 0 {
		violations = append(violations, "times must not be negative")
	}
	if c.BatchSize < 0 {
		violations = append(violations, "batch size must not be negative")
	}
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// ValidateInputs validates a full parameter bundle, merging all
// violations from both records into a single error.
func ValidateInputs(p CuttingParameters, c CostParameters) error {
	var violations []string
	if err := p.Validate(); err != nil {
		violations = append(violations, err.(*ValidationError).Violations...)
	}
	if err := c.Validate(); err != nil {
		violations = append(violations, err.(*ValidationError).Violations...)
	}
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
