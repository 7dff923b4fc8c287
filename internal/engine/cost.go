package engine

import (
	"math"

	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

// CostResult holds the per-part and per-batch cost breakdown for one
// tool configuration. All currency fields are non-negative for valid
// inputs; batch figures are the per-part figures scaled linearly by the
// batch size.
type CostResult struct {
	ToolCostPerPart       float64 `json:"tool_cost_per_part"`
	ToolChangeCostPerPart float64 `json:"tool_change_cost_per_part"`
	ProcessingCostPerPart float64 `json:"processing_cost_per_part"`
	MachiningCostPerPart  float64 `json:"machining_cost_per_part"`
	TotalCostPerPart      float64 `json:"total_cost_per_part"`

	TotalBatchCost             float64 `json:"total_batch_cost"`
	TotalToolCostForBatch      float64 `json:"total_tool_cost_for_batch"`
	TotalMachiningCostForBatch float64 `json:"total_machining_cost_for_batch"`

	TimePerPart            float64 `json:"time_per_part"`   // min
	ProcessingTime         float64 `json:"processing_time"` // min, pure cutting time per part
	PartsPerToolLife       int     `json:"parts_per_tool_life"`
	ToolChangesPerToolLife int     `json:"tool_changes_per_tool_life"`
	BatchSize              int     `json:"batch_size"`
}

// CostPerPart amortizes tool cost, tool change cost and machine time
// over the tool's life. toolLifeMinutes comes from ToolLife and is
// always >= 1.
//
// When the effective time per part is zero, or the tool outlasts any
// single part by less than one part's time, PartsPerToolLife floors to
// zero and the tool change terms vanish; this expresses "effectively
// unlimited tool life relative to the operation" rather than an error.
func CostPerPart(c model.CostParameters, toolLifeMinutes int) CostResult {
	life := float64(toolLifeMinutes)
	timePerPart := c.TimePerPart()

	partsPerLife := 0
	if timePerPart > 0 {
		partsPerLife = int(math.Floor(life / timePerPart))
	}
	// The tool is not changed after its very last part.
	changesPerLife := partsPerLife - 1
	if changesPerLife < 0 {
		changesPerLife = 0
	}

	toolCostPerPart := (c.ToolCost - c.ToolResidualValue) / life

	toolChangeCostPerPart := 0.0
	if partsPerLife > 0 {
		toolChangeCostPerPart = float64(changesPerLife) * c.ToolChangeCost / float64(partsPerLife)
	}

	processingCostPerPart := c.ProcessingTime / 60 * c.HourlyRate
	machiningCostPerPart := timePerPart / 60 * c.HourlyRate

	totalCostPerPart := toolCostPerPart + toolChangeCostPerPart + machiningCostPerPart

	batchSize := c.EffectiveBatchSize()
	batch := float64(batchSize)

	return CostResult{
		ToolCostPerPart:       toolCostPerPart,
		ToolChangeCostPerPart: toolChangeCostPerPart,
		ProcessingCostPerPart: processingCostPerPart,
		MachiningCostPerPart:  machiningCostPerPart,
		TotalCostPerPart:      totalCostPerPart,

		TotalBatchCost:             totalCostPerPart * batch,
		TotalToolCostForBatch:      (toolCostPerPart + toolChangeCostPerPart) * batch,
		TotalMachiningCostForBatch: machiningCostPerPart * batch,

		TimePerPart:            timePerPart,
		ProcessingTime:         c.ProcessingTime,
		PartsPerToolLife:       partsPerLife,
		ToolChangesPerToolLife: changesPerLife,
		BatchSize:              batchSize,
	}
}
