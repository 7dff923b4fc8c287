package engine

import (
	"fmt"

	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

// RecommendationType classifies an advisory so the UI can group or
// iconify it.
type RecommendationType string

const (
	AdviceToolMaterial   RecommendationType = "tool_material"
	AdviceCoating        RecommendationType = "coating"
	AdviceCuttingSpeed   RecommendationType = "cutting_speed"
	AdviceFeedRate       RecommendationType = "feed_rate"
	AdviceToolCost       RecommendationType = "tool_cost"
	AdviceToolChangeCost RecommendationType = "tool_change_cost"
	AdviceToolChangeTime RecommendationType = "tool_change_time"
)

// Recommendation is a single human-readable tuning suggestion.
type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Message string             `json:"message"`
}

// speedDeviationTolerance is the accepted relative deviation from the
// material's recommended cutting speed before an advisory fires.
const speedDeviationTolerance = 0.3

// Recommend inspects the cutting and cost inputs together with the
// computed cost breakdown and returns tuning advisories. The rules are
// independent: any subset can fire, in a fixed order.
func Recommend(p model.CuttingParameters, c model.CostParameters, cost CostResult) []Recommendation {
	var recs []Recommendation

	hardMaterial := p.Material == model.MaterialStainless || p.Material == model.MaterialTitanium
	if p.ToolMaterial == model.ToolHSS && hardMaterial {
		recs = append(recs, Recommendation{
			Type: AdviceToolMaterial,
			Message: fmt.Sprintf("HSS tools wear quickly in %s; consider carbide or coated carbide",
				p.Material),
		})
	}

	steelFamily := p.Material == model.MaterialSteel || p.Material == model.MaterialStainless
	if p.Coating == model.CoatingNone && steelFamily {
		recs = append(recs, Recommendation{
			Type:    AdviceCoating,
			Message: "An uncoated tool in steel or stainless leaves tool life on the table; a TiN or TiCN coating typically extends it significantly",
		})
	}

	recommendedSpeed := refCuttingSpeed * p.Material.LifeMultiplier()
	if recommendedSpeed > 0 {
		deviation := (p.CuttingSpeed - recommendedSpeed) / recommendedSpeed
		if deviation > speedDeviationTolerance {
			recs = append(recs, Recommendation{
				Type: AdviceCuttingSpeed,
				Message: fmt.Sprintf("Cutting speed %.0f m/min is well above the ~%.0f m/min recommended for %s; expect reduced tool life",
					p.CuttingSpeed, recommendedSpeed, p.Material),
			})
		} else if deviation < -speedDeviationTolerance {
			recs = append(recs, Recommendation{
				Type: AdviceCuttingSpeed,
				Message: fmt.Sprintf("Cutting speed %.0f m/min is well below the ~%.0f m/min recommended for %s; productivity is being left unused",
					p.CuttingSpeed, recommendedSpeed, p.Material),
			})
		}
	}

	if p.FeedPerTooth < 0.05 {
		recs = append(recs, Recommendation{
			Type:    AdviceFeedRate,
			Message: fmt.Sprintf("Feed per tooth %.3f mm is very low; the tool rubs instead of cutting, which accelerates wear", p.FeedPerTooth),
		})
	} else if p.FeedPerTooth > 0.3 && p.ToolMaterial == model.ToolHSS {
		recs = append(recs, Recommendation{
			Type:    AdviceFeedRate,
			Message: fmt.Sprintf("Feed per tooth %.3f mm is aggressive for an HSS tool; reduce the feed or switch to carbide", p.FeedPerTooth),
		})
	}

	if cost.MachiningCostPerPart > 0 && cost.ToolCostPerPart > 0.3*cost.MachiningCostPerPart {
		recs = append(recs, Recommendation{
			Type:    AdviceToolCost,
			Message: "Tool cost exceeds 30% of machining cost per part; a longer-life tool or gentler parameters would pay off",
		})
	}

	if cost.ToolCostPerPart > 0 && cost.ToolChangeCostPerPart > 0.5*cost.ToolCostPerPart {
		recs = append(recs, Recommendation{
			Type:    AdviceToolChangeCost,
			Message: "Tool change cost exceeds half the tool cost per part; review the change procedure or use presettable holders",
		})
	}

	if c.ProcessingTime < 0.7*cost.TimePerPart {
		recs = append(recs, Recommendation{
			Type:    AdviceToolChangeTime,
			Message: "Tool changes take 30% or more of the total machining time; reducing change time directly lifts throughput",
		})
	}

	return recs
}
