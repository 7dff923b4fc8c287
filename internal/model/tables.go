package model

// Tool life multipliers and base specific cutting forces. Steel, HSS and
// an uncoated tool form the 1.0 baseline. Unknown keys fall back to the
// baseline rather than erroring so that unanticipated catalogue values
// still evaluate; importers surface a warning instead.

var materialLifeMultipliers = map[WorkpieceMaterial]float64{
	MaterialSteel:     1.0,
	MaterialCastIron:  0.7,
	MaterialAluminum:  2.5,
	MaterialStainless: 0.6,
	MaterialTitanium:  0.4,
	MaterialBrass:     1.8,
}

// baseCuttingForces holds the specific cutting force kc1.1 per material
// in N/mm² at the reference hardness.
var baseCuttingForces = map[WorkpieceMaterial]float64{
	MaterialSteel:     2000,
	MaterialCastIron:  1500,
	MaterialAluminum:  800,
	MaterialStainless: 2500,
	MaterialTitanium:  3000,
	MaterialBrass:     1200,
}

var toolLifeMultipliers = map[ToolMaterial]float64{
	ToolHSS:           1.0,
	ToolCarbide:       2.5,
	ToolCoatedCarbide: 3.0,
	ToolCeramic:       4.0,
	ToolDiamond:       5.0,
}

var coatingLifeMultipliers = map[Coating]float64{
	CoatingNone:    1.0,
	CoatingTiN:     1.3,
	CoatingTiCN:    1.5,
	CoatingAlCrN:   1.8,
	CoatingDiamond: 2.5,
}

// LifeMultiplier returns the tool life multiplier for the workpiece
// material, 1.0 for unknown materials.
func (m WorkpieceMaterial) LifeMultiplier() float64 {
	if v, ok := materialLifeMultipliers[m]; ok {
		return v
	}
	return 1.0
}

// BaseCuttingForce returns the base specific cutting force in N/mm²,
// 2000 (steel baseline) for unknown materials.
func (m WorkpieceMaterial) BaseCuttingForce() float64 {
	if v, ok := baseCuttingForces[m]; ok {
		return v
	}
	return 2000
}

// Known reports whether the material is one of the built-in keys.
func (m WorkpieceMaterial) Known() bool {
	_, ok := materialLifeMultipliers[m]
	return ok
}

// LifeMultiplier returns the tool life multiplier for the tool material,
// 1.0 (HSS baseline) for unknown values.
func (t ToolMaterial) LifeMultiplier() float64 {
	if v, ok := toolLifeMultipliers[t]; ok {
		return v
	}
	return 1.0
}

// Known reports whether the tool material is one of the built-in keys.
func (t ToolMaterial) Known() bool {
	_, ok := toolLifeMultipliers[t]
	return ok
}

// LifeMultiplier returns the tool life multiplier for the coating,
// 1.0 (uncoated baseline) for unknown values.
func (c Coating) LifeMultiplier() float64 {
	if v, ok := coatingLifeMultipliers[c]; ok {
		return v
	}
	return 1.0
}

// Known reports whether the coating is one of the built-in keys.
func (c Coating) Known() bool {
	_, ok := coatingLifeMultipliers[c]
	return ok
}

// WorkpieceMaterials lists the built-in workpiece materials.
func WorkpieceMaterials() []WorkpieceMaterial {
	return []WorkpieceMaterial{
		MaterialSteel, MaterialCastIron, MaterialAluminum,
		MaterialStainless, MaterialTitanium, MaterialBrass,
	}
}

// ToolMaterials lists the built-in tool materials.
func ToolMaterials() []ToolMaterial {
	return []ToolMaterial{
		ToolHSS, ToolCarbide, ToolCoatedCarbide, ToolCeramic, ToolDiamond,
	}
}

// Coatings lists the built-in coatings.
func Coatings() []Coating {
	return []Coating{
		CoatingNone, CoatingTiN, CoatingTiCN, CoatingAlCrN, CoatingDiamond,
	}
}
