package engine

import (
	"math"

	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

// Tool life model constants. The baseline is 60 minutes of life under
// the reference conditions vc=100 m/min, fz=0.1 mm/tooth, ap=2 mm with
// an uncoated HSS tool in steel; more aggressive cutting shortens life
// through inverse-power penalty terms. The coefficients are fixed
// empirical values, an approximation based on ISO 8688-2 principles.
const (
	baselineLifeMinutes = 60.0

	refCuttingSpeed = 100.0 // m/min
	refFeedPerTooth = 0.1   // mm/tooth
	refDepthOfCut   = 2.0   // mm

	speedExponent = 0.2
	feedExponent  = 0.15
	depthExponent = 0.1
)

// ToolLife estimates the tool life in whole minutes for the given
// cutting parameters. The result is always at least 1 minute. An
// explicit ToolLifeOverride bypasses the model.
func ToolLife(p model.CuttingParameters) int {
	if p.ToolLifeOverride > 0 {
		return clampLife(p.ToolLifeOverride)
	}

	combined := p.Material.LifeMultiplier() *
		p.ToolMaterial.LifeMultiplier() *
		p.Coating.LifeMultiplier()

	speedFactor := math.Pow(refCuttingSpeed/p.CuttingSpeed, speedExponent)
	feedFactor := math.Pow(refFeedPerTooth/p.FeedPerTooth, feedExponent)
	depthFactor := math.Pow(refDepthOfCut/p.DepthOfCut, depthExponent)

	raw := baselineLifeMinutes * combined * speedFactor * feedFactor * depthFactor
	return clampLife(raw)
}

func clampLife(minutes float64) int {
	life := int(math.Round(minutes))
	if life < 1 {
		return 1
	}
	return life
}
