package usage

import "context"

// CounterStore persists named usage counters and filter popularity.
type CounterStore interface {
	Increment(ctx context.Context, counter string, by int64) error
	TrackFilter(ctx context.Context, field, value string) error
	Counters(ctx context.Context) (map[string]int64, error)
	PopularFilters(ctx context.Context) (map[string]map[string]int64, error)
}

// ViewStore persists per-dog view counters.
type ViewStore interface {
	Increment(ctx context.Context, dogID string) (int64, error)
	All(ctx context.Context) (map[string]int64, error)
}
