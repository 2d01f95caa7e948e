// Package db defines the narrow storage contracts the repositories consume.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
type Store interface {
	Pinger
	KVReader
	HashStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVReader provides simple key reads.
type KVReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// HashStore provides hash-based counter and map operations.
type HashStore interface {
	HIncrBy(ctx context.Context, key, field string, by int64) (int64, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}
