package matcher

import (
	"fmt"
	"testing"

	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
	"github.com/zestie-cloud/pawmatch/internal/domain/match"
)

func makeCandidates(t *testing.T, specs []struct {
	id           string
	score        float64
	completeness float64
	source       string
}) []candidate {
	t.Helper()
	recs := make([]dog.Record, len(specs))
	cands := make([]candidate, len(specs))
	for i, s := range specs {
		recs[i] = mustDog(t, dog.Params{ID: s.id, SourceID: s.source})
		cands[i] = candidate{rec: &recs[i], score: s.score, completeness: s.completeness}
	}
	return cands
}

func sectionIDs(cands []candidate, section match.Section) []string {
	var ids []string
	for _, c := range cands {
		if c.section == section {
			ids = append(ids, c.rec.ID())
		}
	}
	return ids
}

func TestRankAndSection_Ordering(t *testing.T) {
	cands := makeCandidates(t, []struct {
		id           string
		score        float64
		completeness float64
		source       string
	}{
		{"b", 0.7, 0.5, ""},
		{"a", 0.9, 0.5, ""},
		{"d", 0.7, 0.5, ""}, // ties with b on score and completeness, id breaks it
		{"c", 0.7, 0.8, ""}, // ties with b on score, completeness breaks it
	})

	out := rankAndSection(cands, DefaultConfig())

	wantOrder := []string{"a", "c", "b", "d"}
	for i, id := range wantOrder {
		if out[i].rec.ID() != id {
			t.Errorf("position %d: expected %s, got %s", i, id, out[i].rec.ID())
		}
	}
	for _, c := range out {
		if c.section != match.SectionBest {
			t.Errorf("dog %s: expected best section, got %s", c.rec.ID(), c.section)
		}
	}
}

func TestRankAndSection_BestCapOverflowToExplore(t *testing.T) {
	specs := make([]struct {
		id           string
		score        float64
		completeness float64
		source       string
	}, 13)
	for i := range specs {
		specs[i].id = fmt.Sprintf("d%02d", i)
		specs[i].score = 0.95 - float64(i)*0.01 // all above threshold
	}
	cands := makeCandidates(t, specs)

	out := rankAndSection(cands, DefaultConfig())

	best := sectionIDs(out, match.SectionBest)
	explore := sectionIDs(out, match.SectionExplore)
	if len(best) != 10 {
		t.Fatalf("expected 10 best, got %d", len(best))
	}
	if len(explore) != 3 {
		t.Fatalf("expected 3 explore overflow, got %d", len(explore))
	}
	// Overflow keeps rank order after the best page.
	if explore[0] != "d10" || explore[2] != "d12" {
		t.Errorf("unexpected explore overflow order: %v", explore)
	}

	// No dog in both sections.
	seen := make(map[string]bool)
	for _, c := range out {
		if seen[c.rec.ID()] {
			t.Fatalf("dog %s appears twice", c.rec.ID())
		}
		seen[c.rec.ID()] = true
	}
}

func TestRankAndSection_ExplorePrefersBelowThreshold(t *testing.T) {
	cands := makeCandidates(t, []struct {
		id           string
		score        float64
		completeness float64
		source       string
	}{
		{"high1", 0.9, 1, ""},
		{"high2", 0.8, 1, ""},
		{"low1", 0.5, 1, ""},
		{"low2", 0.4, 1, ""},
	})

	out := rankAndSection(cands, DefaultConfig())

	best := sectionIDs(out, match.SectionBest)
	explore := sectionIDs(out, match.SectionExplore)
	if len(best) != 2 {
		t.Fatalf("expected 2 best, got %v", best)
	}
	if len(explore) != 2 || explore[0] != "low1" || explore[1] != "low2" {
		t.Fatalf("expected explore [low1 low2], got %v", explore)
	}
}

func TestRankAndSection_ExploreCap(t *testing.T) {
	specs := make([]struct {
		id           string
		score        float64
		completeness float64
		source       string
	}, 9)
	for i := range specs {
		specs[i].id = fmt.Sprintf("low%d", i)
		specs[i].score = 0.5 - float64(i)*0.01 // all below threshold
	}
	cands := makeCandidates(t, specs)

	out := rankAndSection(cands, DefaultConfig())

	if got := len(sectionIDs(out, match.SectionBest)); got != 0 {
		t.Errorf("expected 0 best, got %d", got)
	}
	explore := sectionIDs(out, match.SectionExplore)
	if len(explore) != 6 {
		t.Fatalf("expected explore capped at 6, got %d", len(explore))
	}
	// Strongest below-threshold dogs first.
	if explore[0] != "low0" {
		t.Errorf("expected low0 first in explore, got %s", explore[0])
	}
}

func TestRankAndSection_MixedExploreReSorted(t *testing.T) {
	// One below-threshold dog plus above-threshold overflow: the final
	// explore list is in score order regardless of fill phase.
	specs := make([]struct {
		id           string
		score        float64
		completeness float64
		source       string
	}, 12)
	for i := 0; i < 11; i++ {
		specs[i].id = fmt.Sprintf("h%02d", i)
		specs[i].score = 0.95 - float64(i)*0.01
	}
	specs[11].id = "low"
	specs[11].score = 0.3
	cands := makeCandidates(t, specs)

	out := rankAndSection(cands, DefaultConfig())

	explore := sectionIDs(out, match.SectionExplore)
	if len(explore) != 2 {
		t.Fatalf("expected 2 explore, got %v", explore)
	}
	if explore[0] != "h10" || explore[1] != "low" {
		t.Errorf("expected [h10 low], got %v", explore)
	}
}

func TestApplySourceCap(t *testing.T) {
	cands := makeCandidates(t, []struct {
		id           string
		score        float64
		completeness float64
		source       string
	}{
		{"a1", 0.9, 1, "shelter-a"},
		{"a2", 0.8, 1, "shelter-a"},
		{"a3", 0.7, 1, "shelter-a"},
		{"b1", 0.6, 1, "shelter-b"},
		{"u1", 0.5, 1, ""},
		{"u2", 0.4, 1, ""},
		{"u3", 0.3, 1, ""},
	})

	kept := applySourceCap(cands, 2)

	wantIDs := []string{"a1", "a2", "b1", "u1", "u2"}
	if len(kept) != len(wantIDs) {
		t.Fatalf("expected %d kept, got %d", len(wantIDs), len(kept))
	}
	for i, id := range wantIDs {
		if kept[i].rec.ID() != id {
			t.Errorf("position %d: expected %s, got %s", i, id, kept[i].rec.ID())
		}
	}
}

func TestRankAndSection_SourceCapApplied(t *testing.T) {
	cands := makeCandidates(t, []struct {
		id           string
		score        float64
		completeness float64
		source       string
	}{
		{"a1", 0.9, 1, "s"},
		{"a2", 0.85, 1, "s"},
		{"a3", 0.8, 1, "s"},
		{"b1", 0.7, 1, "other"},
	})

	cfg := DefaultConfig()
	cfg.SourceCap = 2
	out := rankAndSection(cands, cfg)

	best := sectionIDs(out, match.SectionBest)
	if len(best) != 3 {
		t.Fatalf("expected 3 best after source cap, got %v", best)
	}
	for _, id := range best {
		if id == "a3" {
			t.Error("a3 should have been dropped by the source cap")
		}
	}
}
