package schema

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParsePreferences decodes a preference document into a fresh default
// configuration. Fields absent from the document keep their defaults,
// which is how documents written by older schema versions stay loadable.
// A malformed document returns an error and no partial state.
func ParsePreferences(data []byte) (*Preferences, error) {
	prefs := DefaultPreferences()
	if err := json.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("malformed preference document: %w", err)
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	prefs.Clamp()
	return prefs, nil
}

// LoadPreferences reads and parses a preference document from disk.
func LoadPreferences(path string) (*Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preferences %q: %w", path, err)
	}
	return ParsePreferences(data)
}

// Export serializes the configuration as an indented JSON document
// stamped with the current schema version.
func (p *Preferences) Export() ([]byte, error) {
	p.Version = PrefsVersion
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export preferences: %w", err)
	}
	return data, nil
}

// Validate rejects enum values outside the closed sets. Numeric inputs
// are not rejected here; Clamp handles those, since city metrics and
// sliders both arrive from external sources.
func (p *Preferences) Validate() error {
	if _, ok := ValidHousingPersonas[p.Cost.Housing]; !ok {
		return fmt.Errorf("invalid housing persona: %q", p.Cost.Housing)
	}
	if _, ok := ValidWorkPersonas[p.Cost.Work]; !ok {
		return fmt.Errorf("invalid work persona: %q", p.Cost.Work)
	}
	if _, ok := ValidAgeBands[p.Demographics.AgePreference]; !ok {
		return fmt.Errorf("invalid age preference: %q", p.Demographics.AgePreference)
	}
	if _, ok := ValidMinorityGroups[p.Demographics.Minority.Group]; !ok {
		return fmt.Errorf("invalid minority group: %q", p.Demographics.Minority.Group)
	}
	if p.Demographics.Minority.Subgroup != "" && !SubgroupCapable[p.Demographics.Minority.Group] {
		return fmt.Errorf("group %q does not support subgroups", p.Demographics.Minority.Group)
	}
	if _, ok := ValidPoliticalLeans[p.Culture.Political]; !ok {
		return fmt.Errorf("invalid political lean: %q", p.Culture.Political)
	}
	if g := p.Demographics.Compatibility.Seeking; g != GenderNone && g != GenderMale && g != GenderFemale {
		return fmt.Errorf("invalid compatibility gender: %q", g)
	}
	if _, ok := ValidAgeBands[p.Demographics.Compatibility.AgeBand]; !ok {
		return fmt.Errorf("invalid compatibility age band: %q", p.Demographics.Compatibility.AgeBand)
	}
	if l := p.Filters.RequireLeague; l != "" {
		if _, ok := ValidLeagues[l]; !ok {
			return fmt.Errorf("invalid required league: %q", l)
		}
	}
	return nil
}

// Clamp forces every weight into [0,100] and negative numeric inputs to
// zero. Out-of-domain numbers are corrected rather than rejected.
func (p *Preferences) Clamp() {
	ints := []*int{
		&p.Weights.Climate, &p.Weights.Cost, &p.Weights.Demographics,
		&p.Weights.QualityOfLife, &p.Weights.Culture, &p.Weights.Entertainment,
		&p.Climate.ComfortWeight, &p.Climate.HeatWeight, &p.Climate.FreezeWeight,
		&p.Climate.RainWeight, &p.Climate.SnowWeight, &p.Climate.CloudWeight,
		&p.Climate.HumidityWeight, &p.Climate.UtilityCostWeight,
		&p.Climate.GrowingSeasonWeight, &p.Climate.StabilityWeight, &p.Climate.DiurnalWeight,
		&p.Demographics.DiversityWeight, &p.Demographics.AgeMatchWeight,
		&p.Demographics.EducationWeight, &p.Demographics.ForeignBornWeight,
		&p.Demographics.EconomicHealthWeight,
		&p.Demographics.Minority.Weight, &p.Demographics.Compatibility.Weight,
		&p.QualityOfLife.WalkabilityWeight, &p.QualityOfLife.SafetyWeight,
		&p.QualityOfLife.AirQualityWeight, &p.QualityOfLife.BroadbandWeight,
		&p.QualityOfLife.SchoolsWeight, &p.QualityOfLife.HealthcareWeight,
		&p.QualityOfLife.Recreation.Weight, &p.QualityOfLife.Recreation.NatureWeight,
		&p.QualityOfLife.Recreation.BeachWeight, &p.QualityOfLife.Recreation.MountainsWeight,
		&p.Culture.PoliticalWeight, &p.Culture.CivicWeight,
		&p.Culture.Religion.Weight, &p.Culture.ReligiousDiversityWeight,
		&p.Entertainment.NightlifeWeight, &p.Entertainment.ArtsWeight,
		&p.Entertainment.DiningWeight, &p.Entertainment.SportsWeight,
		&p.Entertainment.RecreationWeight,
	}
	for _, w := range ints {
		if *w < 0 {
			*w = 0
		}
		if *w > 100 {
			*w = 100
		}
	}

	floats := []*float64{
		&p.Cost.FixedIncome,
		&p.Demographics.MinPopulation,
		&p.Demographics.Minority.MinPresencePct,
		&p.QualityOfLife.MaxCrimeRate,
		&p.QualityOfLife.MinWalkScore,
		&p.QualityOfLife.MinAirQualityPct,
		&p.QualityOfLife.MinBroadbandPct,
		&p.QualityOfLife.MinGraduationPct,
		&p.QualityOfLife.MinPhysicians,
		&p.Culture.Religion.MinPer1000,
		&p.Filters.MaxHomePrice,
	}
	for _, f := range floats {
		if *f < 0 {
			*f = 0
		}
	}
}
