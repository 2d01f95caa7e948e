package usage

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockCounters struct {
	counters map[string]int64
	filters  map[string]map[string]int64
	tracked  []string
	err      error
}

func newMockCounters() *mockCounters {
	return &mockCounters{
		counters: make(map[string]int64),
		filters:  make(map[string]map[string]int64),
	}
}

func (m *mockCounters) Increment(_ context.Context, counter string, by int64) error {
	if m.err != nil {
		return m.err
	}
	m.counters[counter] += by
	return nil
}

func (m *mockCounters) TrackFilter(_ context.Context, field, value string) error {
	if m.err != nil {
		return m.err
	}
	m.tracked = append(m.tracked, field+"="+value)
	return nil
}

func (m *mockCounters) Counters(_ context.Context) (map[string]int64, error) {
	return m.counters, m.err
}

func (m *mockCounters) PopularFilters(_ context.Context) (map[string]map[string]int64, error) {
	return m.filters, m.err
}

type mockViews struct {
	views map[string]int64
	err   error
}

func newMockViews() *mockViews {
	return &mockViews{views: make(map[string]int64)}
}

func (m *mockViews) Increment(_ context.Context, dogID string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.views[dogID]++
	return m.views[dogID], nil
}

func (m *mockViews) All(_ context.Context) (map[string]int64, error) {
	return m.views, m.err
}

// --- Tests ---

func TestStartSession(t *testing.T) {
	counters := newMockCounters()
	svc := New(counters, newMockViews())

	if err := svc.StartSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counters.counters[CounterSessions] != 1 {
		t.Errorf("expected 1 session, got %d", counters.counters[CounterSessions])
	}
}

func TestRecordMatch(t *testing.T) {
	counters := newMockCounters()
	svc := New(counters, newMockViews())

	filters := []FilterUse{
		{Field: "size", Value: "small"},
		{Field: "good_with_kids", Value: "true"},
	}
	if err := svc.RecordMatch(context.Background(), filters, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counters.counters[CounterMatchCalls] != 1 {
		t.Errorf("expected 1 match call, got %d", counters.counters[CounterMatchCalls])
	}
	if counters.counters[CounterExploreServed] != 3 {
		t.Errorf("expected 3 explore slots, got %d", counters.counters[CounterExploreServed])
	}
	if len(counters.tracked) != 2 || counters.tracked[0] != "size=small" {
		t.Errorf("unexpected tracked filters: %v", counters.tracked)
	}
}

func TestRecordMatch_NoExploreSlots(t *testing.T) {
	counters := newMockCounters()
	svc := New(counters, newMockViews())

	if err := svc.RecordMatch(context.Background(), nil, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := counters.counters[CounterExploreServed]; ok {
		t.Error("zero explore slots should not write the counter")
	}
}

func TestRecordView(t *testing.T) {
	counters := newMockCounters()
	views := newMockViews()
	svc := New(counters, views)

	n, err := svc.RecordView(context.Background(), "dog-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected view count 1, got %d", n)
	}
	if counters.counters[CounterDogViews] != 1 {
		t.Errorf("expected aggregate dog_views 1, got %d", counters.counters[CounterDogViews])
	}

	n, err = svc.RecordView(context.Background(), "dog-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected view count 2, got %d", n)
	}
}

func TestRecordView_StoreError(t *testing.T) {
	views := newMockViews()
	views.err = errors.New("connection refused")
	svc := New(newMockCounters(), views)

	if _, err := svc.RecordView(context.Background(), "dog-1"); err == nil {
		t.Error("expected error")
	}
}

func TestStats(t *testing.T) {
	counters := newMockCounters()
	counters.counters["match_calls"] = 10
	counters.filters["size"] = map[string]int64{"small": 4}
	views := newMockViews()
	views.views["dog-1"] = 7
	svc := New(counters, views)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Counters["match_calls"] != 10 {
		t.Errorf("unexpected counters: %+v", stats.Counters)
	}
	if stats.PopularFilters["size"]["small"] != 4 {
		t.Errorf("unexpected filters: %+v", stats.PopularFilters)
	}
	if stats.DogViews["dog-1"] != 7 {
		t.Errorf("unexpected views: %+v", stats.DogViews)
	}
}

func TestStats_Error(t *testing.T) {
	counters := newMockCounters()
	counters.err = errors.New("connection refused")
	svc := New(counters, newMockViews())

	if _, err := svc.Stats(context.Background()); err == nil {
		t.Error("expected error")
	}
}
