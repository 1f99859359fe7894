// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRank prints ranked city results using the configured output format.
func (ow *OutWriter) WriteRank(results []schema.RankedCity, cfg *contract.Config, duration time.Duration) error {
	return WriteRankResults(results, cfg, duration)
}

// WriteExplain prints a single city's factor breakdown using the configured output format.
func (ow *OutWriter) WriteExplain(city *schema.CityScore, categories []schema.CategoryResult, cfg *contract.Config) error {
	return WriteExplainResults(city, categories, cfg)
}

// WriteCompare prints a two-city comparison using the configured output format.
func (ow *OutWriter) WriteCompare(result schema.ComparisonResult, cfg *contract.Config) error {
	return WriteCompareResults(result, cfg)
}

// WriteFactors prints factor reference definitions using the configured output format.
func (ow *OutWriter) WriteFactors(defs []schema.FactorDefinition, cfg *contract.Config) error {
	return WriteFactorDefinitions(defs, cfg)
}
