// Package catalog loads normalized dog feeds into immutable in-memory
// snapshots and keeps them fresh. The ingestion pipeline writes the feed;
// this package only reads it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/zestie-cloud/pawmatch/internal/db"
	"github.com/zestie-cloud/pawmatch/internal/domain"
	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
)

// store is the consumer interface for feed reads.
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Loader reads the normalized feed from the database key the ingestion
// pipeline publishes to.
type Loader struct {
	store  store
	key    string
	logger *zap.Logger
}

// NewLoader creates a feed loader.
func NewLoader(s store, key string, logger *zap.Logger) *Loader {
	return &Loader{store: s, key: key, logger: logger}
}

// Load fetches and parses the current feed.
func (l *Loader) Load(ctx context.Context) ([]dog.Record, error) {
	data, err := l.store.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("feed key %s: %w", l.key, domain.ErrCatalogNotReady)
		}
		return nil, fmt.Errorf("get feed %s: %w", l.key, err)
	}
	return parseFeed(data, l.logger)
}

// LoadFile parses a normalized feed from a local file. Used by the offline
// rank command and file-sourced deployments.
func LoadFile(path string, logger *zap.Logger) ([]dog.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed file: %w", err)
	}
	return parseFeed(data, logger)
}

// Refresher periodically reloads the feed and swaps the holder's snapshot.
type Refresher struct {
	loader   *Loader
	holder   *Holder
	interval time.Duration
	logger   *zap.Logger
}

// NewRefresher creates a catalog refresher.
func NewRefresher(loader *Loader, holder *Holder, interval time.Duration, logger *zap.Logger) *Refresher {
	return &Refresher{loader: loader, holder: holder, interval: interval, logger: logger}
}

// Run loads the feed immediately, then on every tick until ctx is done.
// A failed refresh keeps the previous snapshot in place.
func (r *Refresher) Run(ctx context.Context) {
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	records, err := r.loader.Load(ctx)
	if err != nil {
		r.logger.Warn("catalog refresh failed", zap.Error(err))
		return
	}
	r.holder.Swap(records)
	r.logger.Info("catalog snapshot published", zap.Int("dogs", len(records)))
}
