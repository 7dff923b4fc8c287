package main

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/cnc-toolcalc/internal/config"
	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

// paramFlags collects the full parameter bundle from the command line.
type paramFlags struct {
	name         string
	material     string
	toolMaterial string
	coating      string

	speed        float64
	feed         float64
	depth        float64
	width        float64
	diameter     float64
	teeth        int
	hardness     float64
	lifeOverride float64

	toolCost       float64
	residual       float64
	processingTime float64
	changeTime     float64
	changeCost     float64
	machiningTime  float64
	hourlyRate     float64
	batch          int

	defectRate        float64
	unplannedDowntime float64
	changeLoss        float64
	partsPerYear      float64
}

// addCuttingFlags registers the tool geometry and cutting condition flags.
func addCuttingFlags(cmd *cobra.Command, f *paramFlags) {
	cmd.Flags().StringVar(&f.name, "name", "", "Tool name for display")
	cmd.Flags().StringVar(&f.material, "material", "steel", "Workpiece material (steel, cast_iron, aluminum, stainless, titanium, brass)")
	cmd.Flags().StringVar(&f.toolMaterial, "tool-material", "carbide", "Tool material (hss, carbide, coated_carbide, ceramic, diamond)")
	cmd.Flags().StringVar(&f.coating, "coating", "none", "Tool coating (none, tin, ticn, alcrn, diamond)")
	cmd.Flags().Float64Var(&f.speed, "speed", 0, "Cutting speed vc (m/min)")
	cmd.Flags().Float64Var(&f.feed, "feed", 0, "Feed per tooth fz (mm)")
	cmd.Flags().Float64Var(&f.depth, "depth", 0, "Axial depth of cut ap (mm)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "Radial width of cut ae (mm)")
	cmd.Flags().Float64Var(&f.diameter, "diameter", 0, "Tool diameter (mm)")
	cmd.Flags().IntVar(&f.teeth, "teeth", 0, "Number of teeth")
	cmd.Flags().Float64Var(&f.hardness, "hardness", model.DefaultHardness, "Workpiece hardness (HRC)")
	cmd.Flags().Float64Var(&f.lifeOverride, "tool-life", 0, "Explicit tool life override (min)")
}

// addCostFlags registers the economics flags.
func addCostFlags(cmd *cobra.Command, f *paramFlags) {
	cmd.Flags().Float64Var(&f.toolCost, "tool-cost", 0, "Tool acquisition cost")
	cmd.Flags().Float64Var(&f.residual, "residual", 0, "Tool residual/salvage value")
	cmd.Flags().Float64Var(&f.processingTime, "processing-time", 0, "Cutting time per part (min)")
	cmd.Flags().Float64Var(&f.changeTime, "change-time", 0, "Tool change time (min)")
	cmd.Flags().Float64Var(&f.changeCost, "change-cost", 0, "Tool change cost")
	cmd.Flags().Float64Var(&f.machiningTime, "machining-time", 0, "Explicit total machining time per part (min), overrides processing+change time")
	cmd.Flags().Float64Var(&f.hourlyRate, "rate", 0, "Machine hourly rate (default from config)")
	cmd.Flags().IntVar(&f.batch, "batch", 0, "Batch size (default from config)")
}

// addOEEFlags registers the OEE assumption flags.
func addOEEFlags(cmd *cobra.Command, f *paramFlags) {
	cmd.Flags().Float64Var(&f.defectRate, "defect-rate", 0, "Defect rate % (default from config)")
	cmd.Flags().Float64Var(&f.unplannedDowntime, "unplanned-downtime", 0, "Unplanned downtime per shift in h (default from config)")
	cmd.Flags().Float64Var(&f.changeLoss, "change-loss", 0, "Fixed time loss per tool change in min (default from config)")
	cmd.Flags().Float64Var(&f.partsPerYear, "parts-per-year", 0, "Parts produced per year (default from config)")
}

// applyConfigDefaults fills any flag the user did not pass from the
// loaded config. The command line always wins over the config file.
func applyConfigDefaults(cmd *cobra.Command, f *paramFlags, cfg config.Config) {
	if !cmd.Flags().Changed("rate") {
		f.hourlyRate = cfg.HourlyRate
	}
	if !cmd.Flags().Changed("batch") {
		f.batch = cfg.BatchSize
	}
	if !cmd.Flags().Changed("defect-rate") {
		f.defectRate = cfg.OEE.DefectRatePercent
	}
	if !cmd.Flags().Changed("unplanned-downtime") {
		f.unplannedDowntime = cfg.OEE.UnplannedDowntimeHours
	}
	if !cmd.Flags().Changed("change-loss") {
		f.changeLoss = cfg.OEE.ToolChangeTimeLoss
	}
	if !cmd.Flags().Changed("parts-per-year") {
		f.partsPerYear = cfg.OEE.PartsPerYear
	}
}

func (f *paramFlags) cutting() model.CuttingParameters {
	return model.CuttingParameters{
		Name:             f.name,
		Material:         model.WorkpieceMaterial(f.material),
		ToolMaterial:     model.ToolMaterial(f.toolMaterial),
		Coating:          model.Coating(f.coating),
		CuttingSpeed:     f.speed,
		FeedPerTooth:     f.feed,
		DepthOfCut:       f.depth,
		WidthOfCut:       f.width,
		ToolDiameter:     f.diameter,
		Teeth:            f.teeth,
		Hardness:         f.hardness,
		ToolLifeOverride: f.lifeOverride,
	}
}

func (f *paramFlags) cost() model.CostParameters {
	return model.CostParameters{
		ToolCost:          f.toolCost,
		ToolResidualValue: f.residual,
		ProcessingTime:    f.processingTime,
		ToolChangeTime:    f.changeTime,
		ToolChangeCost:    f.changeCost,
		MachiningTime:     f.machiningTime,
		HourlyRate:        f.hourlyRate,
		BatchSize:         f.batch,
	}
}

func (f *paramFlags) oee(cfg config.Config) model.OEEParameters {
	return model.OEEParameters{
		DefectRatePercent:      f.defectRate,
		PlannedHoursPerShift:   cfg.OEE.PlannedHoursPerShift,
		UnplannedDowntimeHours: f.unplannedDowntime,
		ToolChangeTimeLoss:     f.changeLoss,
		PartsPerYear:           f.partsPerYear,
	}
}
