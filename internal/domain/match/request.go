// Package match defines the validated match request and the engine's result
// types.
package match

import (
	"fmt"
	"sort"

	"github.com/zestie-cloud/pawmatch/internal/domain"
	"github.com/zestie-cloud/pawmatch/internal/domain/pref"
)

// PrefSpec is one raw preference entry from the request boundary.
type PrefSpec struct {
	Field        string   `json:"field"`
	Hardness     string   `json:"hardness"`
	Value        any      `json:"value"`
	Weight       *float64 `json:"weight"`
	AllowUnknown *bool    `json:"allow_unknown"`
}

// Request is a validated match request.
type Request struct {
	conditions []pref.Condition
	items      []pref.Item
	seen       map[string]struct{}
}

// NewRequest validates raw request inputs into a Request. Any malformed
// entry is rejected with domain.ErrInvalidRequest identifying the offender;
// nothing is silently dropped or coerced.
func NewRequest(hardFilters map[string]any, prefs []PrefSpec, seenIDs []string) (Request, error) {
	conditions := make([]pref.Condition, 0, len(hardFilters))
	for name, value := range hardFilters {
		c, err := pref.NewCondition(name, value)
		if err != nil {
			return Request{}, fmt.Errorf("%w: hard_filters[%s]: %w", domain.ErrInvalidRequest, name, err)
		}
		conditions = append(conditions, c)
	}
	// Map iteration order is random; fix the evaluation order.
	sort.Slice(conditions, func(i, j int) bool { return conditions[i].Field() < conditions[j].Field() })

	items := make([]pref.Item, 0, len(prefs))
	for i, p := range prefs {
		allowUnknown := true
		if p.AllowUnknown != nil {
			allowUnknown = *p.AllowUnknown
		}
		item, err := pref.NewItem(p.Field, p.Hardness, p.Value, p.Weight, allowUnknown)
		if err != nil {
			return Request{}, fmt.Errorf("%w: preferences[%d]: %w", domain.ErrInvalidRequest, i, err)
		}
		items = append(items, item)
	}

	seen := make(map[string]struct{}, len(seenIDs))
	for _, id := range seenIDs {
		if id != "" {
			seen[id] = struct{}{}
		}
	}

	return Request{conditions: conditions, items: items, seen: seen}, nil
}

// Conditions returns the hard filter conditions in evaluation order.
func (r *Request) Conditions() []pref.Condition { return r.conditions }

// Items returns all preference items in request order.
func (r *Request) Items() []pref.Item { return r.items }

// MustItems returns the must-tier items in request order.
func (r *Request) MustItems() []pref.Item {
	var out []pref.Item
	for _, it := range r.items {
		if it.Hardness() == pref.Must {
			out = append(out, it)
		}
	}
	return out
}

// ScoredItems returns the strong/nice items that feed scoring.
func (r *Request) ScoredItems() []pref.Item {
	var out []pref.Item
	for _, it := range r.items {
		if it.Hardness() != pref.Must {
			out = append(out, it)
		}
	}
	return out
}

// IsSeen reports whether a dog id is excluded as already shown.
func (r *Request) IsSeen(id string) bool {
	_, ok := r.seen[id]
	return ok
}

// SeenCount returns the number of excluded dog ids.
func (r *Request) SeenCount() int { return len(r.seen) }
