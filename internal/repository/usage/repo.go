// Package usage persists service usage counters: totals, daily buckets,
// and popular hard-filter values.
package usage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// store is the consumer interface for usage counters.
type store interface {
	HIncrBy(ctx context.Context, key, field string, by int64) (int64, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo keeps usage counters in hashes under the storage namespace.
type Repo struct {
	store     store
	keyPrefix string
	now       func() time.Time
}

// New creates a usage repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix, now: time.Now}
}

func (r *Repo) countersKey() string { return r.keyPrefix + "usage:counters" }
func (r *Repo) filtersKey() string  { return r.keyPrefix + "usage:filters" }
func (r *Repo) dailyKey(day string) string {
	return r.keyPrefix + "usage:daily:" + day
}

// Increment bumps a named counter in the totals hash and today's bucket.
func (r *Repo) Increment(ctx context.Context, counter string, by int64) error {
	if _, err := r.store.HIncrBy(ctx, r.countersKey(), counter, by); err != nil {
		return fmt.Errorf("increment %s: %w", counter, err)
	}
	day := r.now().UTC().Format("2006-01-02")
	if _, err := r.store.HIncrBy(ctx, r.dailyKey(day), counter, by); err != nil {
		return fmt.Errorf("increment daily %s: %w", counter, err)
	}
	return nil
}

// TrackFilter counts one use of a hard-filter value.
func (r *Repo) TrackFilter(ctx context.Context, field, value string) error {
	if value == "" {
		return nil
	}
	entry := field + ":" + value
	if _, err := r.store.HIncrBy(ctx, r.filtersKey(), entry, 1); err != nil {
		return fmt.Errorf("track filter %s: %w", entry, err)
	}
	return nil
}

// Counters returns the totals hash.
func (r *Repo) Counters(ctx context.Context) (map[string]int64, error) {
	raw, err := r.store.HGetAll(ctx, r.countersKey())
	if err != nil {
		return nil, fmt.Errorf("get counters: %w", err)
	}
	return parseCounts(raw), nil
}

// PopularFilters returns per-field value counts, e.g.
// {"size": {"small": 12}}.
func (r *Repo) PopularFilters(ctx context.Context) (map[string]map[string]int64, error) {
	raw, err := r.store.HGetAll(ctx, r.filtersKey())
	if err != nil {
		return nil, fmt.Errorf("get popular filters: %w", err)
	}
	out := make(map[string]map[string]int64)
	for entry, v := range raw {
		field, value, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		if out[field] == nil {
			out[field] = make(map[string]int64)
		}
		out[field][value] = n
	}
	return out, nil
}

func parseCounts(raw map[string]string) map[string]int64 {
	out := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out[k] = n
	}
	return out
}
