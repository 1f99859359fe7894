package citystore

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"
)

//go:embed data/cities.json
var bundledCities []byte

// FileSource serves city metric snapshots from a JSON document: either
// a user-supplied file or the bundled curated dataset.
type FileSource struct {
	cities []schema.CityMetrics
	byID   map[string]int
}

var _ contract.MetricSource = &FileSource{} // Compile-time check

// NewFileSource loads city snapshots from the JSON file at path. An
// empty path loads the bundled dataset instead.
func NewFileSource(path string) (*FileSource, error) {
	data := bundledCities
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read city data file %s: %w", path, err)
		}
		data = fileData
	}

	var cities []schema.CityMetrics
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("failed to parse city data: %w", err)
	}
	if len(cities) == 0 {
		return nil, fmt.Errorf("city data contains no cities")
	}

	byID := make(map[string]int, len(cities))
	for i, city := range cities {
		if city.ID == "" {
			return nil, fmt.Errorf("city at index %d has no id", i)
		}
		if _, exists := byID[city.ID]; exists {
			return nil, fmt.Errorf("duplicate city id: %s", city.ID)
		}
		byID[city.ID] = i
	}

	return &FileSource{cities: cities, byID: byID}, nil
}

// Cities returns every city snapshot the source knows about.
func (fs *FileSource) Cities(_ context.Context) ([]schema.CityMetrics, error) {
	out := make([]schema.CityMetrics, len(fs.cities))
	copy(out, fs.cities)
	return out, nil
}

// City returns one snapshot by its stable ID.
func (fs *FileSource) City(_ context.Context, id string) (*schema.CityMetrics, error) {
	idx, ok := fs.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown city id: %s", id)
	}
	city := fs.cities[idx]
	return &city, nil
}

// SnapshotCities writes every snapshot from the source into the
// snapshot store as JSON documents, stamped with the given version.
func SnapshotCities(ctx context.Context, source contract.MetricSource, store contract.SnapshotStore, version int, timestamp int64) (int, error) {
	cities, err := source.Cities(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load cities: %w", err)
	}

	count := 0
	for _, city := range cities {
		doc, err := json.Marshal(city)
		if err != nil {
			return count, fmt.Errorf("failed to marshal city %s: %w", city.ID, err)
		}
		if err := store.Set(city.ID, doc, version, timestamp); err != nil {
			return count, fmt.Errorf("failed to store snapshot for %s: %w", city.ID, err)
		}
		count++
	}

	return count, nil
}
