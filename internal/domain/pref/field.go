// Package pref defines the preference model for a match request: the closed
// set of matchable dog attributes, hardness tiers, and validated preference
// items. Free-form field names from the request boundary are resolved here,
// once, into typed fields with fixed comparison semantics.
package pref

import (
	"fmt"
	"strings"

	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
)

// Kind is the comparison semantics of a field.
type Kind uint8

// Field kinds.
const (
	// Categorical fields match by set membership over canonical labels.
	Categorical Kind = iota
	// Numeric fields match by linear proximity decay.
	Numeric
	// Boolean fields are tri-state (true/false/unknown).
	Boolean
)

// Field is a matchable dog attribute.
type Field string

// Matchable fields.
const (
	FieldSize          Field = "size"
	FieldAgeGroup      Field = "age_group"
	FieldSex           Field = "sex"
	FieldBreed         Field = "breed"
	FieldLocationState Field = "location_state"

	FieldAgeYears    Field = "age_years"
	FieldEnergyLevel Field = "energy_level"

	FieldGoodWithKids       Field = "good_with_kids"
	FieldGoodWithDogs       Field = "good_with_dogs"
	FieldGoodWithCats       Field = "good_with_cats"
	FieldHouseTrained       Field = "house_trained"
	FieldHypoallergenic     Field = "hypoallergenic"
	FieldSpecialNeeds       Field = "special_needs"
	FieldVaccinated         Field = "vaccinations_up_to_date"
	FieldSpayedNeutered     Field = "spayed_neutered"
	FieldApartmentOK        Field = "apartment_ok"
	FieldRequiresFencedYard Field = "requires_fenced_yard"
)

var fieldKinds = map[Field]Kind{
	FieldSize:          Categorical,
	FieldAgeGroup:      Categorical,
	FieldSex:           Categorical,
	FieldBreed:         Categorical,
	FieldLocationState: Categorical,

	FieldAgeYears:    Numeric,
	FieldEnergyLevel: Numeric,

	FieldGoodWithKids:       Boolean,
	FieldGoodWithDogs:       Boolean,
	FieldGoodWithCats:       Boolean,
	FieldHouseTrained:       Boolean,
	FieldHypoallergenic:     Boolean,
	FieldSpecialNeeds:       Boolean,
	FieldVaccinated:         Boolean,
	FieldSpayedNeutered:     Boolean,
	FieldApartmentOK:        Boolean,
	FieldRequiresFencedYard: Boolean,
}

// maxDistances is the per-field distance at which numeric proximity decays
// to zero.
var maxDistances = map[Field]float64{
	FieldEnergyLevel: 5,
	FieldAgeYears:    8,
}

// ParseField resolves a request field name to a known Field.
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := fieldKinds[f]; !ok {
		return "", fmt.Errorf("unknown field %q", name)
	}
	return f, nil
}

// Kind returns the field's comparison semantics.
func (f Field) Kind() Kind { return fieldKinds[f] }

// MaxDistance returns the zero-proximity distance for a numeric field.
func (f Field) MaxDistance() float64 { return maxDistances[f] }

// CategoricalValue returns the dog's canonical label for a categorical
// field and whether it is known.
func CategoricalValue(r *dog.Record, f Field) (string, bool) {
	switch f {
	case FieldSize:
		s := r.Size()
		return string(s), s != ""
	case FieldAgeGroup:
		g := r.AgeGroup()
		return string(g), g != ""
	case FieldSex:
		s := r.Sex()
		return string(s), s != ""
	case FieldBreed:
		b := strings.ToLower(r.Breed())
		return b, b != ""
	case FieldLocationState:
		s := strings.ToLower(r.LocationState())
		return s, s != ""
	default:
		return "", false
	}
}

// NumericValue returns the dog's value for a numeric field and whether it
// is known.
func NumericValue(r *dog.Record, f Field) (float64, bool) {
	switch f {
	case FieldAgeYears:
		return r.AgeYears()
	case FieldEnergyLevel:
		return r.EnergyLevel()
	default:
		return 0, false
	}
}

// TriValue returns the dog's tri-state value for a boolean field.
func TriValue(r *dog.Record, f Field) dog.TriState {
	switch f {
	case FieldGoodWithKids:
		return r.GoodWithKids()
	case FieldGoodWithDogs:
		return r.GoodWithDogs()
	case FieldGoodWithCats:
		return r.GoodWithCats()
	case FieldHouseTrained:
		return r.HouseTrained()
	case FieldHypoallergenic:
		return r.Hypoallergenic()
	case FieldSpecialNeeds:
		return r.SpecialNeeds()
	case FieldVaccinated:
		return r.Vaccinated()
	case FieldSpayedNeutered:
		return r.SpayedNeutered()
	case FieldApartmentOK:
		return r.ApartmentOK()
	case FieldRequiresFencedYard:
		return r.RequiresFencedYard()
	default:
		return dog.Unknown
	}
}

// canonicalizeLabel validates one categorical target label for a field and
// returns its canonical form.
func canonicalizeLabel(f Field, raw string) (string, error) {
	switch f {
	case FieldSize:
		s, ok := dog.ParseSize(raw)
		if !ok || s == "" {
			return "", fmt.Errorf("invalid size %q", raw)
		}
		return string(s), nil
	case FieldAgeGroup:
		g, ok := dog.ParseAgeGroup(raw)
		if !ok || g == "" {
			return "", fmt.Errorf("invalid age group %q", raw)
		}
		return string(g), nil
	case FieldSex:
		s, ok := dog.ParseSex(raw)
		if !ok || s == "" {
			return "", fmt.Errorf("invalid sex %q", raw)
		}
		return string(s), nil
	default:
		l := strings.ToLower(strings.TrimSpace(raw))
		if l == "" {
			return "", fmt.Errorf("empty value")
		}
		return l, nil
	}
}
