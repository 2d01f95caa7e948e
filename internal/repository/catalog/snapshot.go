package catalog

import (
	"sync/atomic"
	"time"

	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
)

// snapshot is one immutable catalog generation.
type snapshot struct {
	records  []dog.Record
	loadedAt time.Time
}

// Holder publishes catalog snapshots with an atomic pointer swap, so an
// in-flight match pass always sees one consistent generation.
type Holder struct {
	ptr atomic.Pointer[snapshot]
}

// NewHolder creates an empty holder; Current reports not-ready until the
// first Swap.
func NewHolder() *Holder {
	return &Holder{}
}

// Swap publishes a new snapshot. The records slice must not be mutated
// after this call.
func (h *Holder) Swap(records []dog.Record) {
	h.ptr.Store(&snapshot{records: records, loadedAt: time.Now()})
}

// Current returns the active snapshot's records. ok is false before the
// first load.
func (h *Holder) Current() ([]dog.Record, bool) {
	s := h.ptr.Load()
	if s == nil {
		return nil, false
	}
	return s.records, true
}

// LoadedAt returns when the active snapshot was published.
func (h *Holder) LoadedAt() (time.Time, bool) {
	s := h.ptr.Load()
	if s == nil {
		return time.Time{}, false
	}
	return s.loadedAt, true
}
