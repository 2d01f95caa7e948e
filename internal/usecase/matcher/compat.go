package matcher

import (
	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
	"github.com/zestie-cloud/pawmatch/internal/domain/pref"
)

// isCompatible is the hard constraint gate. Order: hard filters first, then
// must-preferences in request order; short-circuits on the first failure.
func isCompatible(rec *dog.Record, conds []pref.Condition, mustItems []pref.Item) bool {
	for _, c := range conds {
		if !conditionSatisfied(rec, c) {
			return false
		}
	}
	for _, it := range mustItems {
		if !mustSatisfied(rec, it) {
			return false
		}
	}
	return true
}

// conditionSatisfied evaluates one hard filter. Hard filters do not honor
// allow_unknown: a missing field always fails.
func conditionSatisfied(rec *dog.Record, c pref.Condition) bool {
	known, matches := evaluate(rec, c.Field(), c.Target())
	return known && matches
}

// mustSatisfied evaluates one must-preference. Unknown passes only when the
// item tolerates unknowns.
func mustSatisfied(rec *dog.Record, it pref.Item) bool {
	known, matches := evaluate(rec, it.Field(), it.Target())
	if !known {
		return it.AllowUnknown()
	}
	return matches
}

// evaluate checks a field against a target: whether the dog's value is
// known, and if known whether it satisfies the target (set membership for
// categorical sets, exact equality otherwise).
func evaluate(rec *dog.Record, f pref.Field, t pref.Target) (known, matches bool) {
	switch f.Kind() {
	case pref.Categorical:
		v, ok := pref.CategoricalValue(rec, f)
		if !ok {
			return false, false
		}
		return true, t.Contains(v)
	case pref.Numeric:
		v, ok := pref.NumericValue(rec, f)
		if !ok {
			return false, false
		}
		return true, v == t.Number()
	default:
		tri := pref.TriValue(rec, f)
		if !tri.Known() {
			return false, false
		}
		return true, tri.Bool() == t.Bool()
	}
}
