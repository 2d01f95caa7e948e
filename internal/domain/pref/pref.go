package pref

import (
	"fmt"
	"strings"
)

// Hardness is a preference tier: must behaves like a hard filter, strong and
// nice are weighted scoring inputs.
type Hardness string

// Hardness tiers.
const (
	Must   Hardness = "must"
	Strong Hardness = "strong"
	Nice   Hardness = "nice"
)

// Default effective weights by hardness.
const (
	strongWeight = 3.0
	niceWeight   = 1.0
)

// IsValid checks if the hardness is one of the supported tiers.
func (h Hardness) IsValid() bool { return h == Must || h == Strong || h == Nice }

// DefaultWeight returns the hardness-implied scoring weight.
func (h Hardness) DefaultWeight() float64 {
	if h == Strong {
		return strongWeight
	}
	return niceWeight
}

// Target is a typed target value: a set of canonical labels for categorical
// fields, a scalar for numeric fields, or a desired boolean.
type Target struct {
	kind    Kind
	labels  []string
	number  float64
	boolean bool
}

// newTarget validates a raw JSON-decoded value against the field's kind.
func newTarget(f Field, raw any) (Target, error) {
	switch f.Kind() {
	case Categorical:
		labels, err := targetLabels(f, raw)
		if err != nil {
			return Target{}, err
		}
		return Target{kind: Categorical, labels: labels}, nil
	case Numeric:
		n, ok := asFloat(raw)
		if !ok {
			return Target{}, fmt.Errorf("field %q expects a number, got %T", f, raw)
		}
		return Target{kind: Numeric, number: n}, nil
	case Boolean:
		b, ok := raw.(bool)
		if !ok {
			return Target{}, fmt.Errorf("field %q expects a boolean, got %T", f, raw)
		}
		return Target{kind: Boolean, boolean: b}, nil
	default:
		return Target{}, fmt.Errorf("field %q has no target semantics", f)
	}
}

func targetLabels(f Field, raw any) ([]string, error) {
	var rawLabels []string
	switch v := raw.(type) {
	case string:
		rawLabels = []string{v}
	case []string:
		rawLabels = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("field %q expects string values, got %T", f, item)
			}
			rawLabels = append(rawLabels, s)
		}
	default:
		return nil, fmt.Errorf("field %q expects a string or list of strings, got %T", f, raw)
	}
	if len(rawLabels) == 0 {
		return nil, fmt.Errorf("field %q has an empty value set", f)
	}

	labels := make([]string, 0, len(rawLabels))
	for _, r := range rawLabels {
		l, err := canonicalizeLabel(f, r)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f, err)
		}
		labels = append(labels, l)
	}
	return labels, nil
}

func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Kind returns the target's kind.
func (t Target) Kind() Kind { return t.kind }

// Labels returns the canonical categorical target set.
func (t Target) Labels() []string { return t.labels }

// Number returns the numeric target.
func (t Target) Number() float64 { return t.number }

// Bool returns the desired boolean.
func (t Target) Bool() bool { return t.boolean }

// Contains reports whether a canonical label is in the target set.
func (t Target) Contains(label string) bool {
	for _, l := range t.labels {
		if l == label {
			return true
		}
	}
	return false
}

// String renders the target for reason details.
func (t Target) String() string {
	switch t.kind {
	case Categorical:
		return strings.Join(t.labels, "|")
	case Numeric:
		return fmt.Sprintf("%g", t.number)
	default:
		return fmt.Sprintf("%t", t.boolean)
	}
}

// Item is a validated weighted preference.
type Item struct {
	field        Field
	hardness     Hardness
	target       Target
	weight       float64
	allowUnknown bool
}

// NewItem validates and creates a preference item. A nil weight takes the
// hardness-implied default. Rejects unknown fields, invalid hardness, and
// type-mismatched values with the offending entry identified.
func NewItem(fieldName, hardness string, value any, weight *float64, allowUnknown bool) (Item, error) {
	f, err := ParseField(fieldName)
	if err != nil {
		return Item{}, err
	}

	h := Hardness(strings.ToLower(strings.TrimSpace(hardness)))
	if h == "" {
		h = Nice
	}
	if !h.IsValid() {
		return Item{}, fmt.Errorf("field %q: invalid hardness %q", fieldName, hardness)
	}

	t, err := newTarget(f, value)
	if err != nil {
		return Item{}, err
	}

	w := h.DefaultWeight()
	if weight != nil {
		if *weight <= 0 {
			return Item{}, fmt.Errorf("field %q: weight must be positive, got %g", fieldName, *weight)
		}
		w = *weight
	}

	return Item{field: f, hardness: h, target: t, weight: w, allowUnknown: allowUnknown}, nil
}

// Field returns the matched attribute.
func (i Item) Field() Field { return i.field }

// Hardness returns the preference tier.
func (i Item) Hardness() Hardness { return i.hardness }

// Target returns the typed target value.
func (i Item) Target() Target { return i.target }

// Weight returns the effective scoring weight.
func (i Item) Weight() float64 { return i.weight }

// AllowUnknown reports whether an undocumented dog value passes without
// penalty.
func (i Item) AllowUnknown() bool { return i.allowUnknown }

// Condition is a validated hard filter entry. Hard filters are exclusionary:
// unknown dog values always fail them.
type Condition struct {
	field  Field
	target Target
}

// NewCondition validates and creates a hard filter condition.
func NewCondition(fieldName string, value any) (Condition, error) {
	f, err := ParseField(fieldName)
	if err != nil {
		return Condition{}, err
	}
	t, err := newTarget(f, value)
	if err != nil {
		return Condition{}, err
	}
	return Condition{field: f, target: t}, nil
}

// Field returns the filtered attribute.
func (c Condition) Field() Field { return c.field }

// Target returns the required value.
func (c Condition) Target() Target { return c.target }
