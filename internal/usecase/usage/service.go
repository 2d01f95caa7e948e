// Package usage tracks aggregate service analytics: sessions, match calls,
// explore slots served, dog views, and popular hard-filter values.
package usage

import (
	"context"
	"fmt"
)

// Counter names.
const (
	CounterSessions      = "total_sessions"
	CounterMatchCalls    = "match_calls"
	CounterDogViews      = "dog_views"
	CounterExploreServed = "explore_slots_served"
)

// FilterUse is one hard-filter value applied in a match call.
type FilterUse struct {
	Field string
	Value string
}

// Stats is the aggregated usage report.
type Stats struct {
	Counters       map[string]int64            `json:"counters"`
	PopularFilters map[string]map[string]int64 `json:"popular_filters"`
	DogViews       map[string]int64            `json:"dog_views"`
}

// Service coordinates usage tracking.
type Service struct {
	counters CounterStore
	views    ViewStore
}

// New creates a usage service.
func New(counters CounterStore, views ViewStore) *Service {
	return &Service{counters: counters, views: views}
}

// StartSession counts a new session.
func (s *Service) StartSession(ctx context.Context) error {
	return s.counters.Increment(ctx, CounterSessions, 1)
}

// RecordMatch counts one match call, its applied hard filters, and how many
// explore slots it served.
func (s *Service) RecordMatch(ctx context.Context, filters []FilterUse, exploreServed int) error {
	if err := s.counters.Increment(ctx, CounterMatchCalls, 1); err != nil {
		return err
	}
	for _, f := range filters {
		if err := s.counters.TrackFilter(ctx, f.Field, f.Value); err != nil {
			return err
		}
	}
	if exploreServed > 0 {
		if err := s.counters.Increment(ctx, CounterExploreServed, int64(exploreServed)); err != nil {
			return err
		}
	}
	return nil
}

// RecordView counts one dog profile view and returns the dog's new total.
func (s *Service) RecordView(ctx context.Context, dogID string) (int64, error) {
	if err := s.counters.Increment(ctx, CounterDogViews, 1); err != nil {
		return 0, err
	}
	n, err := s.views.Increment(ctx, dogID)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Stats assembles the usage report.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	counters, err := s.counters.Counters(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load counters: %w", err)
	}
	filters, err := s.counters.PopularFilters(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load popular filters: %w", err)
	}
	views, err := s.views.All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load views: %w", err)
	}
	return Stats{Counters: counters, PopularFilters: filters, DogViews: views}, nil
}
