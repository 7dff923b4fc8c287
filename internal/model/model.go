package model

// WorkpieceMaterial identifies the material being machined.
type WorkpieceMaterial string

const (
	MaterialSteel     WorkpieceMaterial = "steel"
	MaterialCastIron  WorkpieceMaterial = "cast_iron"
	MaterialAluminum  WorkpieceMaterial = "aluminum"
	MaterialStainless WorkpieceMaterial = "stainless"
	MaterialTitanium  WorkpieceMaterial = "titanium"
	MaterialBrass     WorkpieceMaterial = "brass"
)

func (m WorkpieceMaterial) String() string {
	switch m {
	case MaterialCastIron:
		return "Cast Iron"
	case MaterialAluminum:
		return "Aluminum"
	case MaterialStainless:
		return "Stainless Steel"
	case MaterialTitanium:
		return "Titanium"
	case MaterialBrass:
		return "Brass"
	case MaterialSteel:
		return "Steel"
	default:
		return string(m)
	}
}

// ToolMaterial identifies the cutting tool substrate.
type ToolMaterial string

const (
	ToolHSS           ToolMaterial = "hss"
	ToolCarbide       ToolMaterial = "carbide"
	ToolCoatedCarbide ToolMaterial = "coated_carbide"
	ToolCeramic       ToolMaterial = "ceramic"
	ToolDiamond       ToolMaterial = "diamond"
)

func (t ToolMaterial) String() string {
	switch t {
	case ToolCarbide:
		return "Carbide"
	case ToolCoatedCarbide:
		return "Coated Carbide"
	case ToolCeramic:
		return "Ceramic"
	case ToolDiamond:
		return "Diamond"
	case ToolHSS:
		return "HSS"
	default:
		return string(t)
	}
}

// Coating identifies the tool coating.
type Coating string

const (
	CoatingNone    Coating = "none"
	CoatingTiN     Coating = "tin"
	CoatingTiCN    Coating = "ticn"
	CoatingAlCrN   Coating = "alcrn"
	CoatingDiamond Coating = "diamond"
)

func (c Coating) String() string {
	switch c {
	case CoatingTiN:
		return "TiN"
	case CoatingTiCN:
		return "TiCN"
	case CoatingAlCrN:
		return "AlCrN"
	case CoatingDiamond:
		return "Diamond"
	case CoatingNone:
		return "None"
	default:
		return string(c)
	}
}

// CuttingParameters describes one tool configuration and its cutting
// conditions. All magnitudes are strictly positive for a valid record;
// angles and the tool life override are informational/optional.
type CuttingParameters struct {
	Material     WorkpieceMaterial `json:"material"`
	ToolMaterial ToolMaterial      `json:"tool_material"`
	Coating      Coating           `json:"coating"`

	CuttingSpeed float64 `json:"cutting_speed"`  // m/min
	FeedPerTooth float64 `json:"feed_per_tooth"` // mm/tooth
	DepthOfCut   float64 `json:"depth_of_cut"`   // axial depth ap, mm
	WidthOfCut   float64 `json:"width_of_cut"`   // radial width ae, mm
	ToolDiameter float64 `json:"tool_diameter"`  // mm
	Teeth        int     `json:"teeth"`          // number of flutes

	Hardness   float64 `json:"hardness,omitempty"`    // workpiece hardness, HRC (default 30)
	HelixAngle float64 `json:"helix_angle,omitempty"` // degrees, informational only
	RakeAngle  float64 `json:"rake_angle,omitempty"`  // degrees, informational only

	// ToolLifeOverride, when positive, bypasses the tool life model.
	ToolLifeOverride float64 `json:"tool_life_override,omitempty"` // minutes

	// Descriptive identity used for comparison labels and reports.
	Name        string `json:"name,omitempty"`
	Brand       string `json:"brand,omitempty"`
	PartName    string `json:"part_name,omitempty"`
	Application string `json:"application,omitempty"`
}

// DefaultHardness is assumed when no workpiece hardness is given.
const DefaultHardness = 30.0

// EffectiveHardness returns the hardness to use in force calculations,
// falling back to DefaultHardness when unset.
func (p CuttingParameters) EffectiveHardness() float64 {
	if p.Hardness <= 0 {
		return DefaultHardness
	}
	return p.Hardness
}

// CostParameters describes the economics of running one tool.
// Currency fields are plain decimal numbers; symbol formatting is a
// presentation concern.
type CostParameters struct {
	ToolCost          float64 `json:"tool_cost"`           // acquisition cost
	ToolResidualValue float64 `json:"tool_residual_value"` // salvage value, default 0
	ProcessingTime    float64 `json:"processing_time"`     // cutting time per part, min
	ToolChangeTime    float64 `json:"tool_change_time"`    // min, default 0
	ToolChangeCost    float64 `json:"tool_change_cost"`    // default 0

	// MachiningTime, when positive, overrides ProcessingTime+ToolChangeTime
	// as the effective time per part.
	MachiningTime float64 `json:"machining_time,omitempty"` // min

	HourlyRate float64 `json:"hourly_rate"` // machine rate, currency/hour
	BatchSize  int     `json:"batch_size"`  // default 1
}

// TimePerPart returns the effective machining time per part in minutes:
// the explicit override when set, otherwise processing plus tool change time.
func (c CostParameters) TimePerPart() float64 {
	if c.MachiningTime > 0 {
		return c.MachiningTime
	}
	return c.ProcessingTime + c.ToolChangeTime
}

// EffectiveBatchSize returns the batch size, never less than 1.
func (c CostParameters) EffectiveBatchSize() int {
	if c.BatchSize < 1 {
		return 1
	}
	return c.BatchSize
}

// OEEParameters holds the downtime and quality assumptions for the OEE
// decomposition. All fields are optional; use DefaultOEEParameters for
// the standard assumptions.
type OEEParameters struct {
	DefectRatePercent      float64 `json:"defect_rate_percent"`      // %
	PlannedHoursPerShift   float64 `json:"planned_hours_per_shift"`  // h, informational
	UnplannedDowntimeHours float64 `json:"unplanned_downtime_hours"` // h per shift
	ToolChangeTimeLoss     float64 `json:"tool_change_time_loss"`    // fixed min lost per change
	PartsPerYear           float64 `json:"parts_per_year"`
}

// DefaultOEEParameters returns the standard shop assumptions: 2% defects,
// 8h shifts with 0.5h unplanned downtime, 5 min lost per tool change,
// 4000 parts per year.
func DefaultOEEParameters() OEEParameters {
	return OEEParameters{
		DefectRatePercent:      2,
		PlannedHoursPerShift:   8,
		UnplannedDowntimeHours: 0.5,
		ToolChangeTimeLoss:     5,
		PartsPerYear:           4000,
	}
}
