package core

import (
	"testing"

	"github.com/cityscope/cityscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cultureOnly(cp schema.CulturePrefs) *schema.Preferences {
	p := schema.DefaultPreferences()
	p.Culture = cp
	return p
}

// TestPoliticalAlignment verifies the gaussian decay around the target
// and the opposed-lean penalty.
func TestPoliticalAlignment(t *testing.T) {
	prefs := cultureOnly(schema.CulturePrefs{Political: schema.LeanLeft, PoliticalWeight: 50})

	t.Run("at target scores full", func(t *testing.T) {
		city := fullCity()
		city.Culture.PartisanIndex = schema.Float(0.4)
		r := scoreCulture(&city, prefs)
		f := findFactor(t, r.Factors, "political alignment")
		assert.InDelta(t, 100, f.Score, 0.001)
	})

	t.Run("decay is symmetric around the target", func(t *testing.T) {
		left := fullCity()
		left.Culture.PartisanIndex = schema.Float(0.6)
		right := fullCity()
		right.Culture.PartisanIndex = schema.Float(0.2)

		lf := findFactor(t, scoreCulture(&left, prefs).Factors, "political alignment")
		rf := findFactor(t, scoreCulture(&right, prefs).Factors, "political alignment")
		assert.InDelta(t, lf.Score, rf.Score, 0.001)
	})

	t.Run("heavier weight decays faster", func(t *testing.T) {
		city := fullCity()
		city.Culture.PartisanIndex = schema.Float(-0.2)

		light := cultureOnly(schema.CulturePrefs{Political: schema.LeanLeft, PoliticalWeight: 20})
		heavy := cultureOnly(schema.CulturePrefs{Political: schema.LeanLeft, PoliticalWeight: 90})

		lf := findFactor(t, scoreCulture(&city, light).Factors, "political alignment")
		hf := findFactor(t, scoreCulture(&city, heavy).Factors, "political alignment")
		assert.Greater(t, lf.Score, hf.Score)
	})

	t.Run("opposed strong lean takes the penalty", func(t *testing.T) {
		city := fullCity()
		city.Culture.PartisanIndex = schema.Float(-0.5)

		strong := cultureOnly(schema.CulturePrefs{Political: schema.StrongLeft, PoliticalWeight: 50})
		r := scoreCulture(&city, strong)
		f := findFactor(t, r.Factors, "political alignment")
		assert.Equal(t, schema.StatusBad, f.Status)
	})

	t.Run("no preference disables the factor", func(t *testing.T) {
		city := fullCity()
		none := cultureOnly(schema.CulturePrefs{Political: schema.LeanNone, PoliticalWeight: 50})
		r := scoreCulture(&city, none)
		for _, f := range r.Factors {
			assert.NotEqual(t, "political alignment", f.Name)
		}
	})
}

// TestReligionFactor covers the minimum shortfall arm and the
// baseline-relative tiers.
func TestReligionFactor(t *testing.T) {
	tests := []struct {
		name      string
		tradition string
		rate      float64
		minPer1k  float64
		expected  float64
	}{
		{name: "below stated minimum scales down", tradition: "jewish", rate: 4, minPer1k: 8, expected: 35},
		{name: "minimum floor holds", tradition: "jewish", rate: 0.5, minPer1k: 50, expected: 20},
		{name: "double the national baseline", tradition: "catholic", rate: 400, expected: 100},
		{name: "modestly above baseline", tradition: "catholic", rate: 260, expected: 90},
		{name: "near baseline", tradition: "catholic", rate: 190, expected: 80},
		{name: "well below baseline", tradition: "catholic", rate: 60, expected: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := fullCity()
			city.Culture.ReligiousAdherence = map[string]float64{tt.tradition: tt.rate}
			prefs := cultureOnly(schema.CulturePrefs{
				Religion: schema.ReligionPrefs{Weight: 50, Tradition: tt.tradition, MinPer1000: tt.minPer1k},
			})

			r := scoreCulture(&city, prefs)
			f := findFactor(t, r.Factors, "religious community")
			assert.InDelta(t, tt.expected, f.Score, 0.001)
		})
	}

	t.Run("unknown tradition skips", func(t *testing.T) {
		city := fullCity()
		prefs := cultureOnly(schema.CulturePrefs{
			Religion: schema.ReligionPrefs{Weight: 50, Tradition: "zoroastrian"},
		})
		r := scoreCulture(&city, prefs)
		for _, f := range r.Factors {
			assert.NotEqual(t, "religious community", f.Name)
		}
	})
}

// TestCivicEngagement pins the turnout normalization.
func TestCivicEngagement(t *testing.T) {
	city := fullCity()
	city.Culture.VoterTurnoutPct = schema.Float(57.5)
	prefs := cultureOnly(schema.CulturePrefs{CivicWeight: 100})

	r := scoreCulture(&city, prefs)
	require.Len(t, r.Factors, 1)
	// Midpoint of the 40-75 turnout domain.
	assert.InDelta(t, 50, r.Factors[0].Score, 0.001)
}

// TestReligiousDiversityPassthrough verifies the index maps straight
// onto the score, clamped.
func TestReligiousDiversityPassthrough(t *testing.T) {
	city := fullCity()
	prefs := cultureOnly(schema.CulturePrefs{ReligiousDiversityWeight: 100})

	r := scoreCulture(&city, prefs)
	f := findFactor(t, r.Factors, "religious diversity")
	assert.InDelta(t, 64, f.Score, 0.001)
}
