package core

import (
	"fmt"
	"strings"

	"github.com/cityscope/cityscope/schema"
)

// EvaluateFilters runs the hard exclusion rules, independent of all
// weighting. The first failing rule supplies the exclusion reason.
// A rule whose metric is absent is skipped: exclusion must be
// deliberate, never a data gap.
func EvaluateFilters(m *schema.CityMetrics, p *schema.Preferences) (included bool, reason string) {
	f := p.Filters

	if f.RequireLeague != "" && m.Culture.SportsTeams != nil {
		if m.Culture.SportsTeams[f.RequireLeague] == 0 {
			return false, fmt.Sprintf("no %s team", strings.ToUpper(string(f.RequireLeague)))
		}
	}

	if f.MaxHomePrice > 0 && m.Economy.MedianHomePrice != nil {
		if *m.Economy.MedianHomePrice > f.MaxHomePrice {
			return false, fmt.Sprintf("median home price $%.0f exceeds your $%.0f limit",
				*m.Economy.MedianHomePrice, f.MaxHomePrice)
		}
	}

	if f.RequireFiber && m.QualityOfLife.FiberCoveragePct != nil {
		if *m.QualityOfLife.FiberCoveragePct < schema.MinFiberPctForFilter {
			return false, fmt.Sprintf("fiber coverage %.0f%% below the %.0f%% floor",
				*m.QualityOfLife.FiberCoveragePct, schema.MinFiberPctForFilter)
		}
	}

	return true, ""
}
