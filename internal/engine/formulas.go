// Package engine implements the milling calculation core: the physics
// formula chain, the tool life model, the per-part cost and OEE models,
// the recommendation rules, and the tool comparison aggregator.
//
// Every function is pure and synchronous; units follow the shop
// convention (speeds m/min, lengths mm, forces N, power kW, torque Nm,
// times minutes).
package engine

import (
	"math"

	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

// SpindleSpeed returns the spindle speed in RPM for a cutting speed vc
// (m/min) and tool diameter d (mm).
func SpindleSpeed(vc, d float64) float64 {
	return 1000 * vc / (math.Pi * d)
}

// FeedRate returns the table feed in mm/min for a feed per tooth fz
// (mm/tooth), z teeth, and spindle speed n (RPM).
func FeedRate(fz float64, z int, n float64) float64 {
	return fz * float64(z) * n
}

// FeedPerRevolution returns the feed per spindle revolution in mm.
func FeedPerRevolution(fz float64, z int) float64 {
	return fz * float64(z)
}

// MRR returns the material removal rate in mm³/min for a radial width
// ae, axial depth ap, feed per tooth fz, z teeth, cutting speed vc and
// tool diameter d.
func MRR(ae, ap, fz float64, z int, vc, d float64) float64 {
	return ae * ap * fz * float64(z) * SpindleSpeed(vc, d)
}

// ChipThickness returns the maximum chip thickness in mm. The formula
// requires ap <= d; a deeper cut is reported as ErrDepthExceedsDiameter
// instead of silently producing NaN.
func ChipThickness(fz, ap, d float64) (float64, error) {
	if ap > d {
		return 0, ErrDepthExceedsDiameter
	}
	return fz * math.Sin(math.Acos(1-2*ap/d)), nil
}

// SpecificCuttingForce returns kc in N/mm² for the material at the given
// hardness (HRC), scaling the base force by 1% per HRC point above 30.
func SpecificCuttingForce(m model.WorkpieceMaterial, hardness float64) float64 {
	return m.BaseCuttingForce() * (1 + (hardness-model.DefaultHardness)/100)
}

// CuttingForce returns the cutting force in N from the specific cutting
// force kc (N/mm²), axial depth ap, radial width ae and feed per tooth fz.
func CuttingForce(kc, ap, ae, fz float64) float64 {
	return kc * ap * ae * fz
}

// Power returns the cutting power in kW from the cutting force fc (N)
// and cutting speed vc (m/min).
func Power(fc, vc float64) float64 {
	return fc * vc / 60000
}

// Torque returns the spindle torque in Nm for power p (kW) at spindle
// speed n (RPM). A stationary spindle carries no torque.
func Torque(p, n float64) float64 {
	if n == 0 {
		return 0
	}
	return p * 9550 / n
}

// minSurfaceFinish floors the theoretical finish; below 0.1 µm the
// formula stops being physically meaningful.
const minSurfaceFinish = 0.1

// SurfaceFinish returns the theoretical surface roughness Ra in µm for
// a feed per tooth fz and tool diameter d.
func SurfaceFinish(fz, d float64) float64 {
	ra := 1000 * fz * fz / (8 * d / 2)
	return math.Max(minSurfaceFinish, ra)
}

// DefaultTaylorExponent is the Taylor tool life exponent assumed for
// milling when none is given.
const DefaultTaylorExponent = 0.2

// TaylorConstant returns the Taylor constant C = vc * T^n for a cutting
// speed vc (m/min), tool life t (min) and exponent n.
func TaylorConstant(vc, t, n float64) float64 {
	return vc * math.Pow(t, n)
}

// MRRPerPower returns the removal rate per unit power in cm³/min/kW, a
// measure of cutting efficiency. Zero power yields zero.
func MRRPerPower(mrr, p float64) float64 {
	if p == 0 {
		return 0
	}
	return (mrr / 1000) / p
}
