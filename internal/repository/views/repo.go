// Package views persists aggregate per-dog view counters. Counters are
// product analytics only; they never feed scoring.
package views

import (
	"context"
	"fmt"
	"strconv"
)

// store is the consumer interface for view counters.
type store interface {
	HIncrBy(ctx context.Context, key, field string, by int64) (int64, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo keeps all per-dog counters in one hash.
type Repo struct {
	store store
	key   string
}

// New creates a views repository. keyPrefix is the deployment's storage
// namespace.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, key: keyPrefix + "views"}
}

// Increment bumps a dog's view counter and returns the new count.
func (r *Repo) Increment(ctx context.Context, dogID string) (int64, error) {
	n, err := r.store.HIncrBy(ctx, r.key, dogID, 1)
	if err != nil {
		return 0, fmt.Errorf("increment views for %s: %w", dogID, err)
	}
	return n, nil
}

// All returns every dog's view count. Unparseable entries are skipped.
func (r *Repo) All(ctx context.Context) (map[string]int64, error) {
	raw, err := r.store.HGetAll(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("get views: %w", err)
	}
	out := make(map[string]int64, len(raw))
	for id, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out[id] = n
	}
	return out, nil
}
