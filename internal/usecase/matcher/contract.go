package matcher

import "github.com/zestie-cloud/pawmatch/internal/domain/dog"

// CatalogProvider hands the engine an immutable catalog snapshot. The
// returned slice must not be mutated after publication; ok is false until a
// first snapshot has been loaded.
type CatalogProvider interface {
	Current() (records []dog.Record, ok bool)
}
