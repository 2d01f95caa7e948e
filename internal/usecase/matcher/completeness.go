package matcher

import (
	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
	"github.com/zestie-cloud/pawmatch/internal/domain/pref"
)

// completeness is the fraction of distinct preference fields the dog's
// record has known values for. Purely informational: it never feeds score
// or filtering. Vacuously 1 when the request references no fields.
func completeness(rec *dog.Record, items []pref.Item) float64 {
	seen := make(map[pref.Field]struct{}, len(items))
	known := 0
	for _, it := range items {
		f := it.Field()
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		if fieldKnown(rec, f) {
			known++
		}
	}
	if len(seen) == 0 {
		return 1
	}
	return float64(known) / float64(len(seen))
}

func fieldKnown(rec *dog.Record, f pref.Field) bool {
	switch f.Kind() {
	case pref.Categorical:
		_, ok := pref.CategoricalValue(rec, f)
		return ok
	case pref.Numeric:
		_, ok := pref.NumericValue(rec, f)
		return ok
	default:
		return pref.TriValue(rec, f).Known()
	}
}
