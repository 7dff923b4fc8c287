package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

const sampleCSV = `name,material,tool material,coating,diameter,teeth,speed,feed,depth,width,tool cost,rate
EconoMill 4F,steel,carbide,tin,10,4,100,0.1,2,5,50,50
PremiumCut X,stainless,coated carbide,ticn,12,6,80,0.08,1.5,4,120,50
`

func TestImportCSVDataMapsColumnsByHeader(t *testing.T) {
	result := ImportCSVData([]byte(sampleCSV))

	require.Empty(t, result.Errors)
	require.Len(t, result.Tools, 2)

	first := result.Tools[0]
	assert.Equal(t, "EconoMill 4F", first.Cutting.Name)
	assert.Equal(t, model.MaterialSteel, first.Cutting.Material)
	assert.Equal(t, model.ToolCarbide, first.Cutting.ToolMaterial)
	assert.Equal(t, model.CoatingTiN, first.Cutting.Coating)
	assert.Equal(t, 10.0, first.Cutting.ToolDiameter)
	assert.Equal(t, 4, first.Cutting.Teeth)
	assert.Equal(t, 50.0, first.Cost.ToolCost)
	assert.Equal(t, 50.0, first.Cost.HourlyRate)

	second := result.Tools[1]
	assert.Equal(t, model.ToolCoatedCarbide, second.Cutting.ToolMaterial,
		"multi-word enum strings normalize to underscore keys")
}

func TestImportSemicolonDelimiterDetected(t *testing.T) {
	data := strings.ReplaceAll(sampleCSV, ",", ";")
	result := ImportCSVData([]byte(data))

	require.Len(t, result.Tools, 2)
	assert.Contains(t, strings.Join(result.Warnings, "\n"), "semicolon")
}

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "a,b,c\n1,2,3\n", ','},
		{"semicolon", "a;b;c\n1;2;3\n", ';'},
		{"tab", "a\tb\tc\n1\t2\t3\n", '\t'},
		{"pipe", "a|b|c\n1|2|3\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCSVDelimiter([]byte(tt.data)))
		})
	}
}

func TestImportUnknownMaterialWarnsButImports(t *testing.T) {
	csvData := `name,material,diameter,teeth,speed,feed,depth,width
Mystery,unobtainium,10,4,100,0.1,2,5
`
	result := ImportCSVData([]byte(csvData))

	require.Len(t, result.Tools, 1)
	assert.Equal(t, model.WorkpieceMaterial("unobtainium"), result.Tools[0].Cutting.Material)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "unknown material")
}

func TestImportBadRowsAreSkippedNotFatal(t *testing.T) {
	csvData := `name,diameter,teeth,speed,feed,depth,width
Good,10,4,100,0.1,2,5
NoDiameter,,4,100,0.1,2,5
NegativeSpeed,10,4,-5,0.1,2,5
AlsoGood,8,3,120,0.12,1,3
`
	result := ImportCSVData([]byte(csvData))

	assert.Len(t, result.Tools, 2)
	assert.Len(t, result.Errors, 2)
}

func TestImportMissingRequiredColumnsFails(t *testing.T) {
	csvData := "name,diameter,teeth\nTool,10,4\n"
	result := ImportCSVData([]byte(csvData))

	assert.Empty(t, result.Tools)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "required columns not found")
}

func TestImportEmptyFileFails(t *testing.T) {
	result := ImportCSVData([]byte("  \n "))
	assert.Empty(t, result.Tools)
	require.NotEmpty(t, result.Errors)
}

func TestImportCommaDecimalSeparator(t *testing.T) {
	csvData := "name;diameter;teeth;speed;feed;depth;width\nEuro;10;4;100;0,12;2;5\n"
	result := ImportCSVData([]byte(csvData))

	require.Len(t, result.Tools, 1)
	assert.Equal(t, 0.12, result.Tools[0].Cutting.FeedPerTooth)
}

func TestImportFileDispatchesCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	result := ImportFile(path)
	assert.Len(t, result.Tools, 2)
}

func TestImportMissingFileReportsError(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Empty(t, result.Tools)
	require.NotEmpty(t, result.Errors)
}

func TestDetectColumnsAliases(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Tool Name", "Dia", "Flutes", "Vc", "Chip Load", "ap", "ae"})
	require.True(t, isHeader)
	assert.Equal(t, 1, mapping.Diameter)
	assert.Equal(t, 2, mapping.Teeth)
	assert.Equal(t, 3, mapping.Speed)
	assert.Equal(t, 4, mapping.Feed)
	assert.Equal(t, 5, mapping.Depth)
	assert.Equal(t, 6, mapping.Width)
}

func TestDetectColumnsNoHeader(t *testing.T) {
	_, isHeader := DetectColumns([]string{"10", "4", "100"})
	assert.False(t, isHeader)
}
