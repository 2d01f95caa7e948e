package health

import (
	"context"
	"time"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports when the active catalog snapshot was published.
type CatalogChecker interface {
	LoadedAt() (time.Time, bool)
}
