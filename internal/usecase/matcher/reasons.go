package matcher

import (
	"fmt"
	"sort"

	"github.com/zestie-cloud/pawmatch/internal/domain/match"
	"github.com/zestie-cloud/pawmatch/internal/domain/pref"
)

// buildReasons derives the explainability list from the scoring trace: the
// top contributing/detracting factors by absolute impact, followed by the
// hard constraints the dog satisfied. Derived from the same pass that
// produced the score, so reasons cannot drift from it.
func buildReasons(
	contribs []contribution,
	conds []pref.Condition,
	mustItems []pref.Item,
	topN int,
) []match.Reason {
	type ranked struct {
		c      contribution
		impact float64
	}
	rankedContribs := make([]ranked, 0, len(contribs))
	for _, c := range contribs {
		impact := c.value
		if c.outcome == match.OutcomeUnmatched {
			// A known miss detracts by what it could have contributed.
			impact = -c.weight
		}
		rankedContribs = append(rankedContribs, ranked{c: c, impact: impact})
	}

	sort.Slice(rankedContribs, func(i, j int) bool {
		ai, aj := abs(rankedContribs[i].impact), abs(rankedContribs[j].impact)
		if ai != aj {
			return ai > aj
		}
		return rankedContribs[i].c.field < rankedContribs[j].c.field
	})

	if topN > 0 && len(rankedContribs) > topN {
		rankedContribs = rankedContribs[:topN]
	}

	reasons := make([]match.Reason, 0, len(rankedContribs)+len(conds)+len(mustItems))
	for _, r := range rankedContribs {
		reasons = append(reasons, match.Reason{
			Field:   string(r.c.field),
			Outcome: r.c.outcome,
			Detail:  r.c.detail,
		})
	}

	for _, c := range conds {
		reasons = append(reasons, match.Reason{
			Field:   string(c.Field()),
			Outcome: match.OutcomeMatched,
			Detail:  fmt.Sprintf("hard filter satisfied: %s=%s", c.Field(), c.Target()),
		})
	}
	for _, it := range mustItems {
		reasons = append(reasons, match.Reason{
			Field:   string(it.Field()),
			Outcome: match.OutcomeMatched,
			Detail:  fmt.Sprintf("required preference satisfied: %s=%s", it.Field(), it.Target()),
		})
	}

	return reasons
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
