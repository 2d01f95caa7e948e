package matcher

import (
	"sort"

	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
	"github.com/zestie-cloud/pawmatch/internal/domain/match"
)

// candidate is one compatible, scored dog awaiting sectioning.
type candidate struct {
	rec          *dog.Record
	score        float64
	completeness float64
	contribs     []contribution
	section      match.Section
}

// rankAndSection orders candidates and partitions them into best and
// explore. Order: score desc, completeness desc, id asc — byte-for-byte
// reproducible for identical inputs. Returns best followed by explore.
func rankAndSection(cands []candidate, cfg Config) []candidate {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		if cands[i].completeness != cands[j].completeness {
			return cands[i].completeness > cands[j].completeness
		}
		return cands[i].rec.ID() < cands[j].rec.ID()
	})

	if cfg.SourceCap > 0 {
		cands = applySourceCap(cands, cfg.SourceCap)
	}

	best := make([]candidate, 0, cfg.BestCap)
	rest := make([]candidate, 0, len(cands))
	for _, c := range cands {
		if c.score >= cfg.BestThreshold && len(best) < cfg.BestCap {
			c.section = match.SectionBest
			best = append(best, c)
		} else {
			rest = append(rest, c)
		}
	}

	// Explore prefers the strongest below-threshold dogs; when everything
	// cleared the threshold it falls back to the above-threshold overflow
	// that missed the best cap.
	explore := make([]candidate, 0, cfg.ExploreCap)
	for _, c := range rest {
		if len(explore) == cfg.ExploreCap {
			break
		}
		if c.score < cfg.BestThreshold {
			c.section = match.SectionExplore
			explore = append(explore, c)
		}
	}
	if len(explore) < cfg.ExploreCap {
		for _, c := range rest {
			if len(explore) == cfg.ExploreCap {
				break
			}
			if c.score >= cfg.BestThreshold {
				c.section = match.SectionExplore
				explore = append(explore, c)
			}
		}
		// Above-threshold fills come first in rank order; restore score order.
		sort.Slice(explore, func(i, j int) bool {
			if explore[i].score != explore[j].score {
				return explore[i].score > explore[j].score
			}
			if explore[i].completeness != explore[j].completeness {
				return explore[i].completeness > explore[j].completeness
			}
			return explore[i].rec.ID() < explore[j].rec.ID()
		})
	}

	return append(best, explore...)
}

// applySourceCap keeps at most cap results per source feed, preserving rank
// order, so one shelter cannot flood the page.
func applySourceCap(cands []candidate, limit int) []candidate {
	counts := make(map[string]int)
	kept := cands[:0]
	for _, c := range cands {
		source := c.rec.SourceID()
		if source == "" {
			source = "unknown"
		}
		if counts[source] >= limit {
			continue
		}
		counts[source]++
		kept = append(kept, c)
	}
	return kept
}
