package citystore

import (
	"testing"
	"time"

	"github.com/cityscope/cityscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedCityFixture(id, name, state string, total float64) schema.RankedCity {
	return schema.RankedCity{
		CityScore: schema.CityScore{
			ID:    id,
			Name:  name,
			State: state,
			Total: total,
			Categories: map[schema.Category]float64{
				schema.ClimateCategory:       72,
				schema.CostCategory:          65,
				schema.DemographicsCategory:  58,
				schema.QualityOfLifeCategory: 61,
				schema.CultureCategory:       70,
				schema.EntertainmentCategory: 55,
			},
			Included: true,
		},
		Rank: 1,
	}
}

func TestRunStore_NoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginRun should return 0 for NoneBackend
	runID, err := store.BeginRun(time.Now(), map[string]any{"test": "value"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	// Other operations should not error
	err = store.EndRun(1, time.Now(), 10)
	assert.NoError(t, err)

	err = store.RecordCityScore(1, rankedCityFixture("raleigh-nc", "Raleigh", "NC", 68.5))
	assert.NoError(t, err)

	err = store.Close()
	assert.NoError(t, err)
}

func TestRunStore_SQLite(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test BeginRun
	startTime := time.Now()
	configParams := map[string]any{
		"limit":     25,
		"category":  "",
		"prefs":     "/test/prefs.yaml",
		"data_file": "",
	}
	runID, err := store.BeginRun(startTime, configParams)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	// Test RecordCityScore
	err = store.RecordCityScore(runID, rankedCityFixture("raleigh-nc", "Raleigh", "NC", 68.5))
	assert.NoError(t, err)

	// Test EndRun
	err = store.EndRun(runID, time.Now(), 1)
	assert.NoError(t, err)
}

func TestRunStore_MultipleRuns(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	var runIDs []int64
	for i := range 3 {
		id, err := store.BeginRun(time.Now(), map[string]any{"run": i})
		require.NoError(t, err)
		runIDs = append(runIDs, id)

		err = store.RecordCityScore(id, rankedCityFixture("austin-tx", "Austin", "TX", 70+float64(i)))
		assert.NoError(t, err)

		err = store.EndRun(id, time.Now(), 1)
		assert.NoError(t, err)
	}

	// Verify all IDs are unique
	assert.Equal(t, 3, len(runIDs))
	assert.NotEqual(t, runIDs[0], runIDs[1])
	assert.NotEqual(t, runIDs[1], runIDs[2])
}

func TestRunStore_GetStatus(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Empty store
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)

	// One completed run with two cities
	runID, err := store.BeginRun(time.Now(), map[string]any{"limit": 25})
	require.NoError(t, err)
	require.NoError(t, store.RecordCityScore(runID, rankedCityFixture("raleigh-nc", "Raleigh", "NC", 68.5)))
	require.NoError(t, store.RecordCityScore(runID, rankedCityFixture("austin-tx", "Austin", "TX", 64.2)))
	require.NoError(t, store.EndRun(runID, time.Now(), 2))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, 2, status.TotalCitiesRated)
	assert.WithinDuration(t, time.Now(), status.LastRunTime, time.Minute)
}

func TestRunStore_GetAllRuns(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Empty store
	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	startTime := time.Now()
	var runIDs []int64
	for i := range 2 {
		id, err := store.BeginRun(startTime, map[string]any{"run": i})
		require.NoError(t, err)
		runIDs = append(runIDs, id)

		err = store.EndRun(id, startTime.Add(time.Minute), 1)
		assert.NoError(t, err)
	}

	runs, err = store.GetAllRuns()
	assert.NoError(t, err)
	assert.Len(t, runs, 2)

	for i, run := range runs {
		assert.Equal(t, runIDs[i], run.RunID)
		assert.Equal(t, 1, run.TotalCities)
		assert.NotNil(t, run.EndedAt)
		assert.NotNil(t, run.ConfigParams)
	}
}

func TestRunStore_GetAllCityScores(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Empty store
	scores, err := store.GetAllCityScores()
	assert.NoError(t, err)
	assert.Empty(t, scores)

	runID, err := store.BeginRun(time.Now(), map[string]any{"test": "scores"})
	require.NoError(t, err)

	city := rankedCityFixture("denver-co", "Denver", "CO", 71.3)
	require.NoError(t, store.RecordCityScore(runID, city))

	excluded := rankedCityFixture("san-diego-ca", "San Diego", "CA", 66.0)
	excluded.Included = false
	excluded.ExclusionReason = "median home price above maximum"
	require.NoError(t, store.RecordCityScore(runID, excluded))

	require.NoError(t, store.EndRun(runID, time.Now(), 2))

	scores, err = store.GetAllCityScores()
	assert.NoError(t, err)
	require.Len(t, scores, 2)

	// Rows come back ordered by city ID within the run
	record := scores[0]
	assert.Equal(t, runID, record.RunID)
	assert.Equal(t, "denver-co", record.CityID)
	assert.Equal(t, "Denver", record.CityName)
	assert.Equal(t, "CO", record.State)
	assert.Equal(t, 71.3, record.Total)
	assert.Equal(t, 72.0, record.Climate)
	assert.Equal(t, 55.0, record.Entertainment)
	assert.True(t, record.Included)
	assert.Nil(t, record.ExclusionReason)

	record = scores[1]
	assert.Equal(t, "san-diego-ca", record.CityID)
	assert.False(t, record.Included)
	require.NotNil(t, record.ExclusionReason)
	assert.Equal(t, "median home price above maximum", *record.ExclusionReason)
}
