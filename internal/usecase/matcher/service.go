// Package matcher implements the matching engine: hard-constraint
// filtering, weighted preference scoring, completeness estimation,
// deterministic ranking into best/explore sections, and reason generation.
package matcher

import (
	"context"
	"fmt"

	"github.com/zestie-cloud/pawmatch/internal/domain"
	"github.com/zestie-cloud/pawmatch/internal/domain/match"
)

// cancelCheckInterval is how many candidates are evaluated between
// cooperative cancellation checks.
const cancelCheckInterval = 256

// Service runs single-shot, stateless match passes over the current catalog
// snapshot.
type Service struct {
	catalog CatalogProvider
	cfg     Config
}

// New creates a matching service.
func New(catalog CatalogProvider, cfg Config) *Service {
	cfg.applyDefaults()
	return &Service{catalog: catalog, cfg: cfg}
}

// Match filters, scores, ranks, and sections the catalog for one request.
// Pure computation over the snapshot; identical inputs produce identical
// ordered output.
func (s *Service) Match(ctx context.Context, req *match.Request) (match.Response, error) {
	records, ok := s.catalog.Current()
	if !ok {
		return match.Response{}, domain.ErrCatalogNotReady
	}

	conds := req.Conditions()
	mustItems := req.MustItems()
	scoredItems := req.ScoredItems()
	allItems := req.Items()

	totalFound := 0
	cands := make([]candidate, 0, len(records))

	for i := range records {
		if i%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return match.Response{}, fmt.Errorf("match aborted: %w", ctx.Err())
			default:
			}
		}

		rec := &records[i]
		if !isCompatible(rec, conds, mustItems) {
			continue
		}
		// total_found counts the compatible pool before seen-exclusion.
		totalFound++
		if req.IsSeen(rec.ID()) {
			continue
		}

		score, contribs := scoreDog(rec, scoredItems, s.cfg.NeutralScore)
		cands = append(cands, candidate{
			rec:          rec,
			score:        score,
			completeness: completeness(rec, allItems),
			contribs:     contribs,
		})
	}

	sectioned := rankAndSection(cands, s.cfg)

	results := make([]match.Result, 0, len(sectioned))
	for _, c := range sectioned {
		results = append(results, match.Result{
			Dog:          *c.rec,
			Score:        c.score,
			Completeness: c.completeness,
			Section:      c.section,
			Reasons:      buildReasons(c.contribs, conds, mustItems, s.cfg.TopReasons),
		})
	}

	return match.Response{
		Results:       results,
		TotalFound:    totalFound,
		PromptTrigger: s.promptTrigger(totalFound, len(results)),
	}, nil
}

// promptTrigger signals the caller to ask for wider criteria when the pool
// is empty or the returned page is thin.
func (s *Service) promptTrigger(totalFound, returned int) string {
	if totalFound == 0 {
		return match.PromptNoMatches
	}
	if returned < s.cfg.MinResults {
		return match.PromptLowResults
	}
	return ""
}
