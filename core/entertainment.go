package core

import (
	"fmt"

	"github.com/cityscope/cityscope/core/norm"
	"github.com/cityscope/cityscope/schema"
)

// sportsStepScores is a hand-tuned step table: the first team matters
// enormously, each additional one less, asymptoting near 100.
var sportsStepScores = []float64{25, 60, 74, 84, 90, 94}

func scoreEntertainment(m *schema.CityMetrics, p *schema.Preferences) schema.CategoryResult {
	c := m.Culture
	ep := p.Entertainment
	var fs factorSet

	addPlateauFactor(&fs, "nightlife", ep.NightlifeWeight, c.NightlifePer100k, "venues per 100k", schema.DomainNightlife)
	addPlateauFactor(&fs, "arts", ep.ArtsWeight, c.MuseumsPer100k, "museums per 100k", schema.DomainMuseums)
	addPlateauFactor(&fs, "dining", ep.DiningWeight, c.RestaurantsPer100k, "restaurants per 100k", schema.DomainRestaurants)
	addSportsFactor(&fs, c, ep.SportsWeight)
	addRecreationFactor(&fs, m, p.QualityOfLife.Recreation, ep.RecreationWeight)

	return fs.result(schema.EntertainmentCategory)
}

// addPlateauFactor scores an amenity density on the critical-mass
// curve: having "enough" matters far more than having more.
func addPlateauFactor(fs *factorSet, name string, weight int, metric *float64, unit string, d schema.PlateauDomain) {
	if weight <= 0 || metric == nil {
		return
	}
	v := *metric
	fs.add(schema.FactorAnalysis{
		Name:        name,
		Weight:      weight,
		Value:       v,
		Unit:        unit,
		Score:       norm.Plateau(v, d.Min, d.Knee, d.Max),
		Explanation: fmt.Sprintf("%.0f %s; critical mass starts around %.0f", v, unit, d.Knee),
	})
}

func addSportsFactor(fs *factorSet, c schema.CultureMetrics, weight int) {
	if weight <= 0 || c.SportsTeams == nil {
		return
	}
	teams := 0
	for _, n := range c.SportsTeams {
		teams += n
	}

	var score float64
	if teams < len(sportsStepScores) {
		score = sportsStepScores[teams]
	} else {
		extra := float64(teams - len(sportsStepScores) + 1)
		score = min(99, sportsStepScores[len(sportsStepScores)-1]+extra)
	}

	fs.add(schema.FactorAnalysis{
		Name:        "pro sports",
		Weight:      weight,
		Value:       float64(teams),
		Unit:        "teams",
		Score:       score,
		Explanation: fmt.Sprintf("%d professional franchises across the five major leagues", teams),
	})
}
