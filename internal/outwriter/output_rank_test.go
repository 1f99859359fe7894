package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture() []schema.RankedCity {
	return []schema.RankedCity{
		{
			CityScore: schema.CityScore{
				ID: "raleigh-nc", Name: "Raleigh", State: "NC", Total: 71.4,
				Categories: map[schema.Category]float64{
					schema.ClimateCategory:       75,
					schema.CostCategory:          68,
					schema.DemographicsCategory:  62,
					schema.QualityOfLifeCategory: 70,
					schema.CultureCategory:       73,
					schema.EntertainmentCategory: 60,
				},
				Included: true,
			},
			Rank: 1,
		},
		{
			CityScore: schema.CityScore{
				ID: "san-diego-ca", Name: "San Diego", State: "CA", Total: 69.0,
				Categories: map[schema.Category]float64{
					schema.ClimateCategory:       92,
					schema.CostCategory:          30,
					schema.DemographicsCategory:  65,
					schema.QualityOfLifeCategory: 66,
					schema.CultureCategory:       70,
					schema.EntertainmentCategory: 72,
				},
				Included:        false,
				ExclusionReason: "median home price above maximum",
			},
			Rank: 2,
		},
	}
}

func TestWriteRankCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	var buf bytes.Buffer
	err := writeRankCSV(&buf, rankedFixture(), fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[0], "exclusion_reason")
	assert.Contains(t, lines[1], "raleigh-nc")
	assert.Contains(t, lines[1], "71.4")
	assert.Contains(t, lines[1], "true")
	assert.Contains(t, lines[2], "san-diego-ca")
	assert.Contains(t, lines[2], "false")
	assert.Contains(t, lines[2], "median home price above maximum")
}

func TestWriteRankJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeRankJSON(&buf, rankedFixture())
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["rank"])
	assert.Equal(t, "raleigh-nc", result[0]["id"])
	assert.Equal(t, 71.4, result[0]["total"])
	assert.Equal(t, contract.GetPlainLabel(71.4), result[0]["label"])
	assert.Equal(t, false, result[1]["included"])
}

func TestWriteRankTable(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	cfg := &contract.Config{Width: 160, StoreBackend: schema.SQLiteBackend}

	var buf bytes.Buffer
	err := writeRankTable(rankedFixture(), cfg, fmtFloat, 25*time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Raleigh")
	assert.Contains(t, out, "San Diego")
	assert.Contains(t, out, "EXCLUDED")
	assert.Contains(t, out, "Showing 2 cities (1 excluded by filters)")
	assert.Contains(t, out, "Store backend: sqlite")
}

func TestWriteRankResultsParquetRejected(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}
	err := WriteRankResults(rankedFixture(), cfg, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export command")
}
