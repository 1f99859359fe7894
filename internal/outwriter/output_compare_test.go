package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparisonFixture() schema.ComparisonResult {
	return schema.ComparisonResult{
		CityA: schema.CityScore{
			ID: "raleigh-nc", Name: "Raleigh", State: "NC", Total: 71.4, Included: true,
		},
		CityB: schema.CityScore{
			ID: "austin-tx", Name: "Austin", State: "TX", Total: 68.2, Included: true,
		},
		Rows: []schema.ComparisonRow{
			{Category: schema.ClimateCategory, A: 75, B: 70, Delta: -5},
			{Category: schema.CostCategory, A: 68, B: 72, Delta: 4},
		},
	}
}

func TestWriteCompareTable(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	cfg := &contract.Config{Width: 160}

	var buf bytes.Buffer
	err := writeCompareTable(&buf, comparisonFixture(), cfg, fmtFloat)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Raleigh, NC vs Austin, TX")
	assert.Contains(t, out, "-5.0")
	assert.Contains(t, out, "+4.0")
	assert.Contains(t, out, "total")
	// Raleigh wins overall, so the total row names it
	assert.Contains(t, out, "-3.2")
}

func TestWriteCompareTableExcludedNote(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	cfg := &contract.Config{Width: 160}
	result := comparisonFixture()
	result.CityB.Included = false
	result.CityB.ExclusionReason = "violent crime above maximum"

	var buf bytes.Buffer
	err := writeCompareTable(&buf, result, cfg, fmtFloat)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Austin is excluded by filter: violent crime above maximum")
}

func TestWriteCompareCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	err := writeCompareCSV(&buf, comparisonFixture(), fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 2 categories + total

	assert.Contains(t, lines[0], "delta")
	assert.Contains(t, lines[1], "climate")
	assert.Contains(t, lines[3], "total")
	assert.Contains(t, lines[3], "-3.2")
}

func TestWriteCompareJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, comparisonFixture())
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Contains(t, result, "city_a")
	assert.Contains(t, result, "city_b")
	assert.Contains(t, result, "rows")
}
