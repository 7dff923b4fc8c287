package engine

import "github.com/piwi3910/cnc-toolcalc/internal/model"

// Physics carries the derived physical quantities for one evaluation.
type Physics struct {
	SpindleSpeed         float64 `json:"spindle_speed"`          // RPM
	FeedRate             float64 `json:"feed_rate"`              // mm/min
	FeedPerRevolution    float64 `json:"feed_per_revolution"`    // mm/rev
	MRR                  float64 `json:"mrr"`                    // mm³/min
	ChipThickness        float64 `json:"chip_thickness"`         // mm
	SpecificCuttingForce float64 `json:"specific_cutting_force"` // N/mm²
	CuttingForce         float64 `json:"cutting_force"`          // N
	Power                float64 `json:"power"`                  // kW
	Torque               float64 `json:"torque"`                 // Nm
	SurfaceFinish        float64 `json:"surface_finish"`         // µm Ra
	TaylorConstant       float64 `json:"taylor_constant"`
	MRRPerPower          float64 `json:"mrr_per_power"` // cm³/min/kW
}

// Evaluation bundles everything computed for a single tool
// configuration. Downstream renderers and report templates embed these
// records verbatim and perform no business logic of their own.
type Evaluation struct {
	Cutting model.CuttingParameters `json:"cutting"`
	Cost    model.CostParameters    `json:"cost"`
	OEEIn   model.OEEParameters     `json:"oee_parameters"`

	Physics         Physics          `json:"physics"`
	ToolLifeMinutes int              `json:"tool_life_minutes"`
	CostResult      CostResult       `json:"cost_result"`
	OEE             OEEResult        `json:"oee"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Evaluate runs the full calculation chain for one parameter bundle.
// It returns a *model.ValidationError listing every violated input
// constraint, or ErrDepthExceedsDiameter when the chip thickness
// formula leaves its domain; it never partially computes.
func Evaluate(cutting model.CuttingParameters, cost model.CostParameters, oee model.OEEParameters) (Evaluation, error) {
	if err := model.ValidateInputs(cutting, cost); err != nil {
		return Evaluation{}, err
	}

	chip, err := ChipThickness(cutting.FeedPerTooth, cutting.DepthOfCut, cutting.ToolDiameter)
	if err != nil {
		return Evaluation{}, err
	}

	n := SpindleSpeed(cutting.CuttingSpeed, cutting.ToolDiameter)
	kc := SpecificCuttingForce(cutting.Material, cutting.EffectiveHardness())
	fc := CuttingForce(kc, cutting.DepthOfCut, cutting.WidthOfCut, cutting.FeedPerTooth)
	power := Power(fc, cutting.CuttingSpeed)
	mrr := MRR(cutting.WidthOfCut, cutting.DepthOfCut, cutting.FeedPerTooth,
		cutting.Teeth, cutting.CuttingSpeed, cutting.ToolDiameter)

	life := ToolLife(cutting)
	costResult := CostPerPart(cost, life)

	return Evaluation{
		Cutting: cutting,
		Cost:    cost,
		OEEIn:   oee,

		Physics: Physics{
			SpindleSpeed:         n,
			FeedRate:             FeedRate(cutting.FeedPerTooth, cutting.Teeth, n),
			FeedPerRevolution:    FeedPerRevolution(cutting.FeedPerTooth, cutting.Teeth),
			MRR:                  mrr,
			ChipThickness:        chip,
			SpecificCuttingForce: kc,
			CuttingForce:         fc,
			Power:                power,
			Torque:               Torque(power, n),
			SurfaceFinish:        SurfaceFinish(cutting.FeedPerTooth, cutting.ToolDiameter),
			TaylorConstant:       TaylorConstant(cutting.CuttingSpeed, float64(life), DefaultTaylorExponent),
			MRRPerPower:          MRRPerPower(mrr, power),
		},
		ToolLifeMinutes: life,
		CostResult:      costResult,
		OEE:             OEE(oee, costResult, life),
		Recommendations: Recommend(cutting, cost, costResult),
	}, nil
}
