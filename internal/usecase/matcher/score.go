package matcher

import (
	"fmt"

	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
	"github.com/zestie-cloud/pawmatch/internal/domain/match"
	"github.com/zestie-cloud/pawmatch/internal/domain/pref"
)

// contribution is the scoring trace for one preference on one dog. Reasons
// are derived from this trace, never recomputed.
type contribution struct {
	field   pref.Field
	outcome match.Outcome
	weight  float64
	counted bool    // participates in the denominator
	value   float64 // weight * degree, the numerator share
	detail  string
}

// scoreDog computes the weighted preference score for one dog.
// Score = sum(contributions) / sum(counted weights); neutral when no
// preference applies.
func scoreDog(rec *dog.Record, items []pref.Item, neutral float64) (float64, []contribution) {
	contribs := make([]contribution, 0, len(items))
	var sum, denom float64

	for _, it := range items {
		c := evaluateItem(rec, it)
		contribs = append(contribs, c)
		if c.counted {
			sum += c.value
			denom += c.weight
		}
	}

	if denom == 0 {
		return neutral, contribs
	}
	return sum / denom, contribs
}

func evaluateItem(rec *dog.Record, it pref.Item) contribution {
	f, t, w := it.Field(), it.Target(), it.Weight()
	c := contribution{field: f, weight: w, counted: true}

	switch f.Kind() {
	case pref.Boolean:
		tri := pref.TriValue(rec, f)
		switch {
		case !tri.Known() && it.AllowUnknown():
			// Deliberate partial credit: an undocumented dog is not as
			// heavily penalized as a known-bad one.
			c.outcome = match.OutcomePartial
			c.value = 0.5 * w
			c.detail = fmt.Sprintf("%s unknown, partial credit", f)
		case !tri.Known():
			c.outcome = match.OutcomeUnmatched
			c.detail = fmt.Sprintf("%s unknown", f)
		case tri.Bool() == t.Bool():
			c.outcome = match.OutcomeMatched
			c.value = w
			c.detail = fmt.Sprintf("%s=%s", f, tri)
		default:
			c.outcome = match.OutcomeUnmatched
			c.detail = fmt.Sprintf("%s=%s, wanted %s", f, tri, t)
		}
		return c

	case pref.Numeric:
		v, known := pref.NumericValue(rec, f)
		if !known {
			return unknownContribution(c, it)
		}
		degree := proximity(v, t.Number(), f.MaxDistance())
		c.value = degree * w
		c.detail = fmt.Sprintf("%s=%g, wanted %s", f, v, t)
		switch {
		case degree >= 1:
			c.outcome = match.OutcomeMatched
		case degree > 0:
			c.outcome = match.OutcomePartial
		default:
			c.outcome = match.OutcomeUnmatched
		}
		return c

	default: // categorical
		v, known := pref.CategoricalValue(rec, f)
		if !known {
			return unknownContribution(c, it)
		}
		if t.Contains(v) {
			c.outcome = match.OutcomeMatched
			c.value = w
			c.detail = fmt.Sprintf("%s=%s", f, v)
		} else {
			c.outcome = match.OutcomeUnmatched
			c.detail = fmt.Sprintf("%s=%s, wanted %s", f, v, t)
		}
		return c
	}
}

// unknownContribution applies the unknown policy for categorical and numeric
// fields: tolerated unknowns are excluded from numerator and denominator,
// intolerant ones count as a zero-degree match.
func unknownContribution(c contribution, it pref.Item) contribution {
	if it.AllowUnknown() {
		c.outcome = match.OutcomeUnknownSkipped
		c.counted = false
		c.detail = fmt.Sprintf("%s unknown, skipped", c.field)
		return c
	}
	c.outcome = match.OutcomeUnmatched
	c.detail = fmt.Sprintf("%s unknown", c.field)
	return c
}

// proximity decays linearly from 1 at exact match to 0 at maxDist.
func proximity(v, target, maxDist float64) float64 {
	if maxDist <= 0 {
		if v == target {
			return 1
		}
		return 0
	}
	dist := v - target
	if dist < 0 {
		dist = -dist
	}
	d := 1 - dist/maxDist
	if d < 0 {
		return 0
	}
	return d
}
