// Package catalog imports tool catalogues from CSV and Excel files and
// translates rows into cutting/cost parameter bundles for the engine.
// It supports automatic delimiter detection, flexible column mapping,
// and case-insensitive header recognition.
package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

// Tool is one imported catalogue row.
type Tool struct {
	Cutting model.CuttingParameters
	Cost    model.CostParameters
}

// ImportResult holds the results of an import operation. Row-level
// problems are collected, not fatal: a bad row is skipped with an error
// message and the rest of the file still imports.
type ImportResult struct {
	Tools    []Tool
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the
// data. -1 marks an absent column.
type ColumnMapping struct {
	Name     int
	Brand    int
	Material int
	ToolMat  int
	Coating  int
	Diameter int
	Teeth    int
	Speed    int
	Feed     int
	Depth    int
	Width    int
	Hardness int

	ToolCost       int
	ProcessingTime int
	ChangeTime     int
	ChangeCost     int
	HourlyRate     int
	Batch          int
}

// headerAliases maps canonical column roles to their accepted aliases
// (all lowercase).
var headerAliases = map[string][]string{
	"name":     {"name", "tool", "tool name", "model", "description", "desc"},
	"brand":    {"brand", "maker", "manufacturer", "vendor"},
	"material": {"material", "workpiece", "workpiece material", "work material"},
	"toolmat":  {"tool material", "substrate", "tool_material", "toolmaterial"},
	"coating":  {"coating", "coat"},
	"diameter": {"diameter", "dia", "d", "tool diameter", "dc"},
	"teeth":    {"teeth", "flutes", "z", "num teeth", "edges"},
	"speed":    {"speed", "cutting speed", "vc", "surface speed"},
	"feed":     {"feed", "feed per tooth", "fz", "chip load", "chipload"},
	"depth":    {"depth", "depth of cut", "ap", "axial depth", "doc"},
	"width":    {"width", "width of cut", "ae", "radial width", "woc", "stepover"},
	"hardness": {"hardness", "hrc"},

	"toolcost":       {"tool cost", "cost", "price", "toolcost"},
	"processingtime": {"processing time", "cycle time", "cutting time", "time per part"},
	"changetime":     {"change time", "tool change time", "changeover time"},
	"changecost":     {"change cost", "tool change cost"},
	"hourlyrate":     {"hourly rate", "machine rate", "rate"},
	"batch":          {"batch", "batch size", "qty", "quantity"},
}

// DetectCSVDelimiter reads the file content and determines the most
// likely CSV delimiter. It tries comma, semicolon, tab, and pipe. The
// delimiter that produces the most consistent column count across
// lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns.
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. The boolean result reports whether a header was
// recognized at all.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name: -1, Brand: -1, Material: -1, ToolMat: -1, Coating: -1,
		Diameter: -1, Teeth: -1, Speed: -1, Feed: -1, Depth: -1,
		Width: -1, Hardness: -1, ToolCost: -1, ProcessingTime: -1,
		ChangeTime: -1, ChangeCost: -1, HourlyRate: -1, Batch: -1,
	}

	targets := map[string]*int{
		"name":           &mapping.Name,
		"brand":          &mapping.Brand,
		"material":       &mapping.Material,
		"toolmat":        &mapping.ToolMat,
		"coating":        &mapping.Coating,
		"diameter":       &mapping.Diameter,
		"teeth":          &mapping.Teeth,
		"speed":          &mapping.Speed,
		"feed":           &mapping.Feed,
		"depth":          &mapping.Depth,
		"width":          &mapping.Width,
		"hardness":       &mapping.Hardness,
		"toolcost":       &mapping.ToolCost,
		"processingtime": &mapping.ProcessingTime,
		"changetime":     &mapping.ChangeTime,
		"changecost":     &mapping.ChangeCost,
		"hourlyrate":     &mapping.HourlyRate,
		"batch":          &mapping.Batch,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					if target := targets[role]; *target == -1 {
						*target = i
					}
				}
			}
		}
	}

	return mapping, isHeader
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber parses a float, accepting a comma decimal separator as
// found in European catalogue exports.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// normalizeKey lowercases a catalogue string and joins words with
// underscores so it matches the engine's enum keys ("Cast Iron" →
// "cast_iron").
func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "_")
}

// parseRow extracts a Tool from a row using the given column mapping.
// Returns the tool, an error message (empty on success), and any
// warning messages.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (Tool, string, []string) {
	var warnings []string
	var tool Tool

	required := []struct {
		label string
		idx   int
		dst   *float64
	}{
		{"diameter", mapping.Diameter, &tool.Cutting.ToolDiameter},
		{"cutting speed", mapping.Speed, &tool.Cutting.CuttingSpeed},
		{"feed per tooth", mapping.Feed, &tool.Cutting.FeedPerTooth},
		{"depth of cut", mapping.Depth, &tool.Cutting.DepthOfCut},
		{"width of cut", mapping.Width, &tool.Cutting.WidthOfCut},
	}
	for _, field := range required {
		str := getCell(row, field.idx)
		if str == "" {
			return Tool{}, fmt.Sprintf("%s: missing %s value", rowLabel, field.label), nil
		}
		v, err := parseNumber(str)
		if err != nil {
			return Tool{}, fmt.Sprintf("%s: invalid %s %q", rowLabel, field.label, str), nil
		}
		if v <= 0 {
			return Tool{}, fmt.Sprintf("%s: %s must be positive", rowLabel, field.label), nil
		}
		*field.dst = v
	}

	teethStr := getCell(row, mapping.Teeth)
	if teethStr == "" {
		return Tool{}, fmt.Sprintf("%s: missing teeth value", rowLabel), nil
	}
	teeth, err := strconv.Atoi(teethStr)
	if err != nil || teeth < 1 {
		return Tool{}, fmt.Sprintf("%s: invalid teeth %q", rowLabel, teethStr), nil
	}
	tool.Cutting.Teeth = teeth

	tool.Cutting.Name = getCell(row, mapping.Name)
	tool.Cutting.Brand = getCell(row, mapping.Brand)

	// Enum columns pass through as-is; the engine falls back to the
	// steel/HSS/uncoated baseline for unknown keys, so a typo still
	// evaluates, but it is worth a warning.
	if s := getCell(row, mapping.Material); s != "" {
		m := model.WorkpieceMaterial(normalizeKey(s))
		if !m.Known() {
			warnings = append(warnings, fmt.Sprintf("%s: unknown material %q, using steel baseline", rowLabel, s))
		}
		tool.Cutting.Material = m
	} else {
		tool.Cutting.Material = model.MaterialSteel
	}
	if s := getCell(row, mapping.ToolMat); s != "" {
		t := model.ToolMaterial(normalizeKey(s))
		if !t.Known() {
			warnings = append(warnings, fmt.Sprintf("%s: unknown tool material %q, using HSS baseline", rowLabel, s))
		}
		tool.Cutting.ToolMaterial = t
	} else {
		tool.Cutting.ToolMaterial = model.ToolHSS
	}
	if s := getCell(row, mapping.Coating); s != "" {
		c := model.Coating(normalizeKey(s))
		if !c.Known() {
			warnings = append(warnings, fmt.Sprintf("%s: unknown coating %q, treating as uncoated", rowLabel, s))
		}
		tool.Cutting.Coating = c
	} else {
		tool.Cutting.Coating = model.CoatingNone
	}

	// Optional numeric columns.
	optional := []struct {
		label string
		idx   int
		dst   *float64
	}{
		{"hardness", mapping.Hardness, &tool.Cutting.Hardness},
		{"tool cost", mapping.ToolCost, &tool.Cost.ToolCost},
		{"processing time", mapping.ProcessingTime, &tool.Cost.ProcessingTime},
		{"change time", mapping.ChangeTime, &tool.Cost.ToolChangeTime},
		{"change cost", mapping.ChangeCost, &tool.Cost.ToolChangeCost},
		{"hourly rate", mapping.HourlyRate, &tool.Cost.HourlyRate},
	}
	for _, field := range optional {
		str := getCell(row, field.idx)
		if str == "" {
			continue
		}
		v, err := parseNumber(str)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: invalid %s %q, ignored", rowLabel, field.label, str))
			continue
		}
		*field.dst = v
	}
	if str := getCell(row, mapping.Batch); str != "" {
		if v, err := strconv.Atoi(str); err == nil && v >= 1 {
			tool.Cost.BatchSize = v
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: invalid batch size %q, ignored", rowLabel, str))
		}
	}

	return tool, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile dispatches on the file extension: .xlsx/.xlsm go through
// the Excel reader, everything else is treated as CSV.
func ImportFile(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ImportExcel(path)
	default:
		return ImportCSV(path)
	}
}

// ImportCSV imports tools from a CSV file. It automatically detects
// the delimiter and maps columns by header names. Supports comma,
// semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open file: %v", err))
		return result
	}
	return ImportCSVData(data)
}

// ImportCSVData imports tools from in-memory CSV content.
func ImportCSVData(data []byte) ImportResult {
	result := ImportResult{}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	return importFromRows(records, "line", result.Warnings)
}

// ImportCSVFromReader imports tools from a CSV reader with a specific
// delimiter. Useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	return importFromRows(records, "line", nil)
}

// ImportExcel imports tools from an Excel (.xlsx) file. Reads the
// first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "sheet is empty")
		return result
	}

	return importFromRows(rows, "row", nil)
}

// importFromRows is the shared import logic for CSV and Excel data. It
// detects the header, maps columns, and parses each row into a tool.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	mapping, hasHeader := DetectColumns(rows[0])
	if !hasHeader {
		result.Errors = append(result.Errors, "no recognizable header row found; expected columns like diameter, teeth, speed, feed, depth, width")
		return result
	}

	missing := []string{}
	if mapping.Diameter == -1 {
		missing = append(missing, "diameter")
	}
	if mapping.Teeth == -1 {
		missing = append(missing, "teeth")
	}
	if mapping.Speed == -1 {
		missing = append(missing, "speed")
	}
	if mapping.Feed == -1 {
		missing = append(missing, "feed")
	}
	if mapping.Depth == -1 {
		missing = append(missing, "depth")
	}
	if mapping.Width == -1 {
		missing = append(missing, "width")
	}
	if len(missing) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("required columns not found in header: %s", strings.Join(missing, ", ")))
		return result
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		tool, errMsg, warnings := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Tools = append(result.Tools, tool)
	}

	return result
}
