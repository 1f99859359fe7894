package core

import (
	"math"
	"sort"

	"github.com/cityscope/cityscope/core/norm"
	"github.com/cityscope/cityscope/schema"
)

// TotalScore combines category scores using the category weights.
// Zero-weight categories drop out of the denominator entirely; if every
// weight is zero the total is neutral.
func TotalScore(categories map[schema.Category]float64, w schema.CategoryWeights) float64 {
	var weightSum int
	var scoreSum float64
	for _, cat := range schema.AllCategories {
		cw := w.ForCategory(cat)
		if cw <= 0 {
			continue
		}
		score, ok := categories[cat]
		if !ok {
			continue
		}
		weightSum += cw
		scoreSum += score * float64(cw)
	}
	if weightSum == 0 {
		return neutralScore
	}
	return norm.Clamp(math.Round(scoreSum/float64(weightSum)*10)/10, 0, 100)
}

// Rank scores every city and orders the results: included cities
// descending by total score, then every excluded city, also descending.
// Ties break on city ID so the order is deterministic for a given input.
func Rank(cities []schema.CityMetrics, p *schema.Preferences) []schema.RankedCity {
	scores := make([]schema.CityScore, 0, len(cities))
	for i := range cities {
		scores = append(scores, ScoreAll(&cities[i], p))
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Included != scores[j].Included {
			return scores[i].Included
		}
		if scores[i].Total != scores[j].Total {
			return scores[i].Total > scores[j].Total
		}
		return scores[i].ID < scores[j].ID
	})

	ranked := make([]schema.RankedCity, len(scores))
	for i, s := range scores {
		ranked[i] = schema.RankedCity{CityScore: s, Rank: i + 1}
	}
	return ranked
}
