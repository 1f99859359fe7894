package citystore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cityscope/cityscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_Bundled(t *testing.T) {
	source, err := NewFileSource("")
	require.NoError(t, err)

	cities, err := source.Cities(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, cities)

	// Every bundled city must have an ID, name, and state
	seen := make(map[string]bool)
	for _, city := range cities {
		assert.NotEmpty(t, city.ID)
		assert.NotEmpty(t, city.Name)
		assert.Len(t, city.State, 2)
		assert.False(t, seen[city.ID], "duplicate id %s", city.ID)
		seen[city.ID] = true
	}
}

func TestFileSource_ByID(t *testing.T) {
	source, err := NewFileSource("")
	require.NoError(t, err)

	city, err := source.City(context.Background(), "raleigh-nc")
	require.NoError(t, err)
	assert.Equal(t, "Raleigh", city.Name)
	assert.Equal(t, "NC", city.State)
	require.NotNil(t, city.Climate.ComfortDays)
	assert.Greater(t, *city.Climate.ComfortDays, 0.0)

	_, err = source.City(context.Background(), "nowhere-zz")
	assert.Error(t, err)
}

func TestFileSource_CustomFile(t *testing.T) {
	doc := `[
		{
			"id": "testville-nc",
			"name": "Testville",
			"state": "NC",
			"climate": {"comfort_days": 180},
			"economy": {"rpp_all_items": 95},
			"demographics": {"population": 500000},
			"quality_of_life": {"walk_score": 60},
			"culture": {"partisan_index": 0.1}
		}
	]`
	path := filepath.Join(t.TempDir(), "cities.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	source, err := NewFileSource(path)
	require.NoError(t, err)

	cities, err := source.Cities(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "testville-nc", cities[0].ID)
	require.NotNil(t, cities[0].Climate.ComfortDays)
	assert.Equal(t, 180.0, *cities[0].Climate.ComfortDays)

	// Unstated metrics stay nil
	assert.Nil(t, cities[0].Climate.SnowDays)
}

func TestFileSource_BadInput(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		doc  string
	}{
		{"malformed json", `{not json`},
		{"empty array", `[]`},
		{"missing id", `[{"name": "Nowhere", "state": "ZZ"}]`},
		{"duplicate ids", `[{"id": "a", "name": "A", "state": "NC"}, {"id": "a", "name": "A2", "state": "NC"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tc.doc), 0o644))
			_, err := NewFileSource(path)
			assert.Error(t, err)
		})
	}

	// Missing file
	_, err := NewFileSource(filepath.Join(dir, "does-not-exist.json"))
	assert.Error(t, err)
}

func TestSnapshotCities(t *testing.T) {
	source, err := NewFileSource("")
	require.NoError(t, err)

	store, err := NewSnapshotStore(snapshotsTable, schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ts := time.Now().Unix()
	count, err := SnapshotCities(context.Background(), source, store, 1, ts)
	require.NoError(t, err)

	cities, err := source.Cities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(cities), count)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, len(cities), status.TotalCities)

	// Stored document round-trips through the snapshot store
	doc, version, fetchedAt, err := store.Get("raleigh-nc")
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.Equal(t, ts, fetchedAt)
	assert.Contains(t, string(doc), `"raleigh-nc"`)
}
