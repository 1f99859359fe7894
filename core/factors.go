package core

import (
	"fmt"
	"math"

	"github.com/cityscope/cityscope/core/norm"
	"github.com/cityscope/cityscope/schema"
)

// neutralScore is returned when no factor can contribute: every weight
// zero, or every relevant metric absent.
const neutralScore = 50.0

// factorSet accumulates per-factor analyses for one category. A factor
// is only added when its preference weight is nonzero and its metric is
// present, so skipped factors never appear in the weighted average's
// denominator or in the explain output.
type factorSet struct {
	factors []schema.FactorAnalysis
}

// add appends a factor, deriving its status from the sub-score when the
// caller did not set a domain-specific one.
func (fs *factorSet) add(f schema.FactorAnalysis) {
	if f.Status == "" {
		f.Status = schema.StatusForScore(f.Score)
	}
	fs.factors = append(fs.factors, f)
}

// addLinear adds a range-normalized factor when weight and metric allow.
func (fs *factorSet) addLinear(name string, weight int, metric *float64, unit string, d schema.Domain, higherBetter bool) {
	if weight <= 0 || metric == nil {
		return
	}
	v := *metric
	fs.add(schema.FactorAnalysis{
		Name:        name,
		Weight:      weight,
		Value:       v,
		Unit:        unit,
		Score:       norm.Linear(v, d.Min, d.Max, higherBetter),
		Explanation: fmt.Sprintf("%.0f %s against a national range of %.0f-%.0f", v, unit, d.Min, d.Max),
	})
}

// result computes the category score: the weighted average of the
// contributing factors, rounded and clamped to [0,100], or a neutral 50
// when nothing contributed. It also fills each factor's share of the
// total active weight as an integer percent.
func (fs *factorSet) result(cat schema.Category) schema.CategoryResult {
	var weightSum int
	var scoreSum float64
	for _, f := range fs.factors {
		if f.Weight > 0 {
			weightSum += f.Weight
			scoreSum += f.Score * float64(f.Weight)
		}
	}

	value := neutralScore
	if weightSum > 0 {
		value = norm.Clamp(math.Round(scoreSum/float64(weightSum)), 0, 100)
	}

	for i := range fs.factors {
		if weightSum > 0 && fs.factors[i].Weight > 0 {
			fs.factors[i].WeightPct = int(math.Round(float64(fs.factors[i].Weight) / float64(weightSum) * 100))
		}
	}

	return schema.CategoryResult{
		Category: cat,
		Value:    value,
		Factors:  fs.factors,
	}
}

// blend is a weighted average over optional components. Components with
// nil scores or zero weights drop out and the remaining weights
// renormalize. ok is false when nothing was present.
type blend struct {
	weightSum float64
	scoreSum  float64
}

func (b *blend) put(score *float64, weight float64) {
	if score == nil || weight <= 0 {
		return
	}
	b.weightSum += weight
	b.scoreSum += *score * weight
}

func (b *blend) value() (float64, bool) {
	if b.weightSum == 0 {
		return 0, false
	}
	return b.scoreSum / b.weightSum, true
}

// scorePtr adapts a raw metric through Linear for use with blend.put.
func scorePtr(metric *float64, d schema.Domain, higherBetter bool) *float64 {
	if metric == nil {
		return nil
	}
	s := norm.Linear(*metric, d.Min, d.Max, higherBetter)
	return &s
}
