// Package norm has the numeric normalization primitives every category
// scorer builds on. All functions are pure and return scores in [0,100].
package norm

import "math"

// Plateau curve shape: scores floor at plateauFloor below the minimum,
// climb linearly to plateauKnee at the knee, then approach 100
// logarithmically as the value nears the domain max.
const (
	plateauFloor = 30.0
	plateauKnee  = 75.0
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Linear rescales value from [min,max] to [0,100], clamping first.
// With higherBetter false the scale is inverted, so min maps to 100.
func Linear(value, min, max float64, higherBetter bool) float64 {
	if max <= min {
		return 50
	}
	v := Clamp(value, min, max)
	scaled := (v - min) / (max - min) * 100
	if higherBetter {
		return scaled
	}
	return 100 - scaled
}

// Plateau is the logarithmic critical-mass curve. Below min the score
// is a fixed floor; between min and knee it climbs linearly; above the
// knee it climbs logarithmically toward 100 at max, modeling
// diminishing returns once a city already has "enough".
func Plateau(value, min, knee, max float64) float64 {
	if value <= min {
		return plateauFloor
	}
	if value <= knee {
		return plateauFloor + (value-min)/(knee-min)*(plateauKnee-plateauFloor)
	}
	if max <= knee {
		return plateauKnee
	}
	v := Clamp(value, knee, max)
	// log10(1 + 9x) spans 0..1 as x spans 0..1.
	frac := math.Log10(1 + 9*(v-knee)/(max-knee))
	return Clamp(plateauKnee+(100-plateauKnee)*frac, 0, 100)
}

// Gaussian scores proximity to a target: 100 * exp(-k * d^2). The decay
// constant k grows with the stated importance weight, so a heavily
// weighted preference is less forgiving of distance from its target.
// Distance is expressed in the metric's own units.
func Gaussian(actual, target float64, importance int) float64 {
	if importance < 0 {
		importance = 0
	}
	if importance > 100 {
		importance = 100
	}
	k := 0.5 + 3.5*float64(importance)/100
	d := actual - target
	return 100 * math.Exp(-k*d*d)
}

// DeficitPenalty returns the points to subtract when a hard minimum is
// unmet: proportional to the fractional shortfall, capped at
// maxPenalty, rounded to a whole point. Zero when the minimum is met
// or not set. This is applied after weighted averaging, never inside it.
func DeficitPenalty(actual, min, maxPenalty float64) float64 {
	if min <= 0 || actual >= min {
		return 0
	}
	if actual < 0 {
		actual = 0
	}
	p := math.Round(maxPenalty * (min - actual) / min)
	return math.Min(p, maxPenalty)
}
