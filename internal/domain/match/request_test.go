package match

import (
	"errors"
	"strings"
	"testing"

	"github.com/zestie-cloud/pawmatch/internal/domain"
)

func TestNewRequest_Valid(t *testing.T) {
	req, err := NewRequest(
		map[string]any{"size": "small", "good_with_kids": true},
		[]PrefSpec{
			{Field: "energy_level", Hardness: "strong", Value: 7.0},
			{Field: "house_trained", Hardness: "must", Value: true},
			{Field: "good_with_cats", Hardness: "nice", Value: true},
		},
		[]string{"dog-9", "", "dog-9"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(req.Conditions()) != 2 {
		t.Errorf("expected 2 conditions, got %d", len(req.Conditions()))
	}
	if len(req.Items()) != 3 {
		t.Errorf("expected 3 items, got %d", len(req.Items()))
	}
	if len(req.MustItems()) != 1 {
		t.Errorf("expected 1 must item, got %d", len(req.MustItems()))
	}
	if len(req.ScoredItems()) != 2 {
		t.Errorf("expected 2 scored items, got %d", len(req.ScoredItems()))
	}
	if !req.IsSeen("dog-9") {
		t.Error("dog-9 should be seen")
	}
	if req.IsSeen("dog-1") {
		t.Error("dog-1 should not be seen")
	}
	if req.SeenCount() != 1 {
		t.Errorf("expected 1 distinct seen id, got %d", req.SeenCount())
	}
}

func TestNewRequest_ConditionsSortedByField(t *testing.T) {
	req, err := NewRequest(
		map[string]any{"size": "small", "age_group": "young", "sex": "female"},
		nil, nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conds := req.Conditions()
	for i := 1; i < len(conds); i++ {
		if conds[i-1].Field() >= conds[i].Field() {
			t.Fatalf("conditions not sorted: %q before %q", conds[i-1].Field(), conds[i].Field())
		}
	}
}

func TestNewRequest_InvalidHardFilter(t *testing.T) {
	_, err := NewRequest(map[string]any{"color": "brown"}, nil, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
	if !strings.Contains(err.Error(), "hard_filters[color]") {
		t.Errorf("error should identify the offending filter, got %q", err)
	}
}

func TestNewRequest_InvalidPreference(t *testing.T) {
	_, err := NewRequest(nil, []PrefSpec{
		{Field: "good_with_kids", Hardness: "nice", Value: true},
		{Field: "energy_level", Hardness: "nice", Value: "high"},
	}, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
	if !strings.Contains(err.Error(), "preferences[1]") {
		t.Errorf("error should identify the offending entry, got %q", err)
	}
}

func TestNewRequest_AllowUnknownDefaultsTrue(t *testing.T) {
	no := false
	req, err := NewRequest(nil, []PrefSpec{
		{Field: "good_with_kids", Hardness: "nice", Value: true},
		{Field: "good_with_cats", Hardness: "nice", Value: true, AllowUnknown: &no},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := req.Items()
	if !items[0].AllowUnknown() {
		t.Error("allow_unknown should default to true")
	}
	if items[1].AllowUnknown() {
		t.Error("explicit allow_unknown=false should be honored")
	}
}

func TestNewRequest_Empty(t *testing.T) {
	req, err := NewRequest(nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Conditions()) != 0 || len(req.Items()) != 0 {
		t.Error("empty request should have no conditions or items")
	}
}
