package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/zestie-cloud/pawmatch/internal/db"
	"github.com/zestie-cloud/pawmatch/internal/domain"
	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
)

// --- Mock ---

type mockStore struct {
	data map[string][]byte
	err  error
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

const sampleFeed = `{
	"dogs": [
		{
			"id": "dog-1",
			"name": "Biscuit",
			"breed": "Beagle",
			"size": "S",
			"age_years": 2,
			"energy_level": 6,
			"sex": "F",
			"good_with_kids": true,
			"good_with_cats": false,
			"location_state": "wa",
			"source_id": "shelter-a"
		},
		{
			"id": "dog-2",
			"name": "Moose",
			"size": "large"
		},
		{
			"id": "",
			"name": "invalid, no id"
		},
		{
			"id": "dog-3",
			"size": "gigantic"
		}
	]
}`

// --- Tests ---

func TestParseFeed(t *testing.T) {
	records, err := parseFeed([]byte(sampleFeed), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Invalid records are skipped, not fatal.
	if len(records) != 2 {
		t.Fatalf("expected 2 valid records, got %d", len(records))
	}

	d := records[0]
	if d.ID() != "dog-1" || d.Name() != "Biscuit" {
		t.Errorf("unexpected first record: %s %s", d.ID(), d.Name())
	}
	if d.Size() != dog.SizeSmall {
		t.Errorf("short size label should canonicalize, got %q", d.Size())
	}
	if d.Sex() != dog.SexFemale {
		t.Errorf("short sex label should canonicalize, got %q", d.Sex())
	}
	if d.GoodWithKids() != dog.Yes || d.GoodWithCats() != dog.No {
		t.Errorf("explicit booleans lost: kids=%v cats=%v", d.GoodWithKids(), d.GoodWithCats())
	}
	if d.GoodWithDogs() != dog.Unknown {
		t.Errorf("absent boolean must stay unknown, got %v", d.GoodWithDogs())
	}
	if v, ok := d.AgeYears(); !ok || v != 2 {
		t.Errorf("expected age 2, got (%g, %v)", v, ok)
	}

	if records[1].ID() != "dog-2" {
		t.Errorf("expected dog-2 second, got %s", records[1].ID())
	}
	if _, ok := records[1].AgeYears(); ok {
		t.Error("dog-2 age should be unknown")
	}
}

func TestParseFeed_Malformed(t *testing.T) {
	if _, err := parseFeed([]byte("{not json"), zap.NewNop()); err == nil {
		t.Error("expected decode error")
	}
}

func TestHolder(t *testing.T) {
	h := NewHolder()

	if _, ok := h.Current(); ok {
		t.Error("empty holder should report not ready")
	}
	if _, ok := h.LoadedAt(); ok {
		t.Error("empty holder should have no load time")
	}

	rec, err := dog.New(dog.Params{ID: "d1"})
	if err != nil {
		t.Fatalf("build dog: %v", err)
	}
	h.Swap([]dog.Record{rec})

	records, ok := h.Current()
	if !ok || len(records) != 1 {
		t.Fatalf("expected 1 record after swap, got (%d, %v)", len(records), ok)
	}
	if _, ok := h.LoadedAt(); !ok {
		t.Error("expected load time after swap")
	}

	h.Swap(nil)
	records, ok = h.Current()
	if !ok || len(records) != 0 {
		t.Errorf("empty swap still counts as loaded, got (%d, %v)", len(records), ok)
	}
}

func TestLoader_Load(t *testing.T) {
	store := &mockStore{data: map[string][]byte{
		"pawmatch:catalog:feed": []byte(sampleFeed),
	}}
	l := NewLoader(store, "pawmatch:catalog:feed", zap.NewNop())

	records, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestLoader_MissingKey(t *testing.T) {
	l := NewLoader(&mockStore{}, "pawmatch:catalog:feed", zap.NewNop())

	_, err := l.Load(context.Background())
	if !errors.Is(err, domain.ErrCatalogNotReady) {
		t.Errorf("missing feed key should map to ErrCatalogNotReady, got %v", err)
	}
}

func TestLoader_StoreError(t *testing.T) {
	l := NewLoader(&mockStore{err: errors.New("connection refused")}, "k", zap.NewNop())

	_, err := l.Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrCatalogNotReady) {
		t.Error("transport errors must not masquerade as not-ready")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.json")
	if err := os.WriteFile(path, []byte(sampleFeed), 0o600); err != nil {
		t.Fatalf("write feed: %v", err)
	}

	records, err := LoadFile(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRefresher_FailedRefreshKeepsSnapshot(t *testing.T) {
	store := &mockStore{data: map[string][]byte{
		"feed": []byte(sampleFeed),
	}}
	h := NewHolder()
	l := NewLoader(store, "feed", zap.NewNop())
	r := NewRefresher(l, h, 0, zap.NewNop())

	r.refresh(context.Background())
	if _, ok := h.Current(); !ok {
		t.Fatal("expected snapshot after first refresh")
	}

	store.err = errors.New("connection refused")
	r.refresh(context.Background())

	records, ok := h.Current()
	if !ok || len(records) != 2 {
		t.Errorf("failed refresh must keep the old snapshot, got (%d, %v)", len(records), ok)
	}
}
