package engine

import "github.com/piwi3910/cnc-toolcalc/internal/model"

// OEEResult decomposes equipment effectiveness into availability,
// performance and quality, all reported as percentages together with
// their complementary loss percentages.
//
// This is a per-part heuristic approximation of classic OEE, not a
// shop-floor-measured value: the shift-level unplanned downtime budget
// is distributed across the annual part volume's implied daily rate.
type OEEResult struct {
	OEE          float64 `json:"oee"`          // %
	Availability float64 `json:"availability"` // %
	Performance  float64 `json:"performance"`  // %
	Quality      float64 `json:"quality"`      // %

	AvailabilityLoss float64 `json:"availability_loss"` // %
	PerformanceLoss  float64 `json:"performance_loss"`  // %
	QualityLoss      float64 `json:"quality_loss"`      // %

	IdealCycleTime  float64 `json:"ideal_cycle_time"`  // min
	ActualCycleTime float64 `json:"actual_cycle_time"` // min
	DowntimePerPart float64 `json:"downtime_per_part"` // min

	ToolChangeImpact ToolChangeImpact `json:"tool_change_impact"`
	SpeedImpact      SpeedImpact      `json:"speed_impact"`
	ToolLifeImpact   ToolLifeImpact   `json:"tool_life_impact"`
}

// ToolChangeImpact breaks down how tool changes eat into effectiveness.
type ToolChangeImpact struct {
	ChangesPerPart  float64 `json:"changes_per_part"`
	DowntimePerPart float64 `json:"downtime_per_part"` // min
	CostPerPart     float64 `json:"cost_per_part"`
}

// SpeedImpact reports how far the actual cycle is from the ideal one.
type SpeedImpact struct {
	IdealCycleTime       float64 `json:"ideal_cycle_time"`        // min
	ActualCycleTime      float64 `json:"actual_cycle_time"`       // min
	CycleTimeIncreasePct float64 `json:"cycle_time_increase_pct"` // %
}

// ToolLifeImpact reports the tool life figures driving the downtime.
type ToolLifeImpact struct {
	ToolLifeMinutes  int     `json:"tool_life_minutes"`
	PartsPerToolLife int     `json:"parts_per_tool_life"`
	ToolCostPerPart  float64 `json:"tool_cost_per_part"`
}

// OEE computes the effectiveness decomposition from the OEE assumptions,
// the cost breakdown and the estimated tool life.
func OEE(p model.OEEParameters, cost CostResult, toolLifeMinutes int) OEEResult {
	timePerPart := cost.TimePerPart

	changesPerPart := 0.0
	if cost.PartsPerToolLife > 0 {
		changesPerPart = 1 / float64(cost.PartsPerToolLife)
	}
	toolChangeDowntime := changesPerPart * p.ToolChangeTimeLoss

	unplannedDowntime := 0.0
	if p.PartsPerYear > 0 {
		partsPerDay := p.PartsPerYear / 365
		unplannedDowntime = (p.UnplannedDowntimeHours * 60) / partsPerDay
	}

	totalDowntime := toolChangeDowntime + unplannedDowntime

	// The ideal cycle is pure cutting time, excluding all downtime and
	// tool change overhead.
	idealCycle := cost.ProcessingTime
	actualCycle := timePerPart + totalDowntime

	availability := 0.0
	performance := 0.0
	if actualCycle > 0 {
		availability = clamp01(1 - totalDowntime/actualCycle)
		performance = clamp01(idealCycle / actualCycle)
	}
	quality := clamp01(1 - p.DefectRatePercent/100)

	oee := availability * performance * quality

	cycleIncrease := 0.0
	if idealCycle > 0 {
		cycleIncrease = (actualCycle - idealCycle) / idealCycle * 100
	}

	return OEEResult{
		OEE:          oee * 100,
		Availability: availability * 100,
		Performance:  performance * 100,
		Quality:      quality * 100,

		AvailabilityLoss: (1 - availability) * 100,
		PerformanceLoss:  (1 - performance) * 100,
		QualityLoss:      (1 - quality) * 100,

		IdealCycleTime:  idealCycle,
		ActualCycleTime: actualCycle,
		DowntimePerPart: totalDowntime,

		ToolChangeImpact: ToolChangeImpact{
			ChangesPerPart:  changesPerPart,
			DowntimePerPart: toolChangeDowntime,
			CostPerPart:     cost.ToolChangeCostPerPart,
		},
		SpeedImpact: SpeedImpact{
			IdealCycleTime:       idealCycle,
			ActualCycleTime:      actualCycle,
			CycleTimeIncreasePct: cycleIncrease,
		},
		ToolLifeImpact: ToolLifeImpact{
			ToolLifeMinutes:  toolLifeMinutes,
			PartsPerToolLife: cost.PartsPerToolLife,
			ToolCostPerPart:  cost.ToolCostPerPart,
		},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
