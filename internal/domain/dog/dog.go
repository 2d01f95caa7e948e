// Package dog defines the normalized, immutable dog record the matching
// engine scores against. Every attribute is either a validated typed value
// or explicitly unknown; the engine never treats unknown as false.
package dog

import "fmt"

// Record is one catalog entry, immutable once loaded.
type Record struct {
	id          string
	name        string
	breed       string
	description string

	size        Size     // "" = unknown
	ageYears    *float64 // nil = unknown
	ageGroup    AgeGroup // "" = unknown
	energyLevel *float64 // 1-10, nil = unknown
	sex         Sex      // "" = unknown

	goodWithKids       TriState
	goodWithDogs       TriState
	goodWithCats       TriState
	houseTrained       TriState
	hypoallergenic     TriState
	specialNeeds       TriState
	vaccinated         TriState
	spayedNeutered     TriState
	apartmentOK        TriState
	requiresFencedYard TriState

	locationState string
	locationLabel string
	status        string
	sourceID      string

	photoURLs  []string
	shelterURL string
}

// Params carries the normalized attributes for building a Record.
// Pointer fields and empty strings represent unknowns.
type Params struct {
	ID          string
	Name        string
	Breed       string
	Description string

	Size        Size
	AgeYears    *float64
	AgeGroup    AgeGroup
	EnergyLevel *float64
	Sex         Sex

	GoodWithKids       TriState
	GoodWithDogs       TriState
	GoodWithCats       TriState
	HouseTrained       TriState
	Hypoallergenic     TriState
	SpecialNeeds       TriState
	Vaccinated         TriState
	SpayedNeutered     TriState
	ApartmentOK        TriState
	RequiresFencedYard TriState

	LocationState string
	LocationLabel string
	Status        string
	SourceID      string

	PhotoURLs  []string
	ShelterURL string
}

// New validates and creates a Record.
func New(p Params) (Record, error) {
	if p.ID == "" {
		return Record{}, fmt.Errorf("dog id is required")
	}
	if p.Size != "" && !p.Size.IsValid() {
		return Record{}, fmt.Errorf("dog %s: invalid size %q", p.ID, p.Size)
	}
	if p.AgeGroup != "" && !p.AgeGroup.IsValid() {
		return Record{}, fmt.Errorf("dog %s: invalid age group %q", p.ID, p.AgeGroup)
	}
	if p.Sex != "" && !p.Sex.IsValid() {
		return Record{}, fmt.Errorf("dog %s: invalid sex %q", p.ID, p.Sex)
	}
	if p.AgeYears != nil && (*p.AgeYears < 0 || *p.AgeYears > 30) {
		return Record{}, fmt.Errorf("dog %s: age %.1f out of range", p.ID, *p.AgeYears)
	}
	if p.EnergyLevel != nil && (*p.EnergyLevel < 1 || *p.EnergyLevel > 10) {
		return Record{}, fmt.Errorf("dog %s: energy level %.1f out of range", p.ID, *p.EnergyLevel)
	}

	return Record{
		id:                 p.ID,
		name:               p.Name,
		breed:              p.Breed,
		description:        p.Description,
		size:               p.Size,
		ageYears:           copyFloat(p.AgeYears),
		ageGroup:           p.AgeGroup,
		energyLevel:        copyFloat(p.EnergyLevel),
		sex:                p.Sex,
		goodWithKids:       p.GoodWithKids,
		goodWithDogs:       p.GoodWithDogs,
		goodWithCats:       p.GoodWithCats,
		houseTrained:       p.HouseTrained,
		hypoallergenic:     p.Hypoallergenic,
		specialNeeds:       p.SpecialNeeds,
		vaccinated:         p.Vaccinated,
		spayedNeutered:     p.SpayedNeutered,
		apartmentOK:        p.ApartmentOK,
		requiresFencedYard: p.RequiresFencedYard,
		locationState:      p.LocationState,
		locationLabel:      p.LocationLabel,
		status:             p.Status,
		sourceID:           p.SourceID,
		photoURLs:          append([]string(nil), p.PhotoURLs...),
		shelterURL:         p.ShelterURL,
	}, nil
}

// ID returns the stable identifier.
func (r *Record) ID() string { return r.id }

// Name returns the display name.
func (r *Record) Name() string { return r.name }

// Breed returns the display breed.
func (r *Record) Breed() string { return r.breed }

// Description returns the display description.
func (r *Record) Description() string { return r.description }

// Size returns the size bucket ("" if unknown).
func (r *Record) Size() Size { return r.size }

// AgeYears returns the numeric age and whether it is known.
func (r *Record) AgeYears() (float64, bool) {
	if r.ageYears == nil {
		return 0, false
	}
	return *r.ageYears, true
}

// AgeGroup returns the effective age bucket, deriving it from the numeric
// age when the feed carried only age_years. "" when both are unknown.
func (r *Record) AgeGroup() AgeGroup {
	if r.ageGroup != "" {
		return r.ageGroup
	}
	if r.ageYears != nil {
		return GroupForYears(*r.ageYears)
	}
	return ""
}

// EnergyLevel returns the 1-10 energy scale and whether it is known.
func (r *Record) EnergyLevel() (float64, bool) {
	if r.energyLevel == nil {
		return 0, false
	}
	return *r.energyLevel, true
}

// Sex returns the recorded sex ("" if unknown).
func (r *Record) Sex() Sex { return r.sex }

// GoodWithKids returns the kid-compatibility flag.
func (r *Record) GoodWithKids() TriState { return r.goodWithKids }

// GoodWithDogs returns the dog-compatibility flag.
func (r *Record) GoodWithDogs() TriState { return r.goodWithDogs }

// GoodWithCats returns the cat-compatibility flag.
func (r *Record) GoodWithCats() TriState { return r.goodWithCats }

// HouseTrained returns the house-training flag.
func (r *Record) HouseTrained() TriState { return r.houseTrained }

// Hypoallergenic returns the hypoallergenic flag.
func (r *Record) Hypoallergenic() TriState { return r.hypoallergenic }

// SpecialNeeds returns the special-needs flag.
func (r *Record) SpecialNeeds() TriState { return r.specialNeeds }

// Vaccinated returns the vaccinations-up-to-date flag.
func (r *Record) Vaccinated() TriState { return r.vaccinated }

// SpayedNeutered returns the spayed/neutered flag.
func (r *Record) SpayedNeutered() TriState { return r.spayedNeutered }

// ApartmentOK returns the apartment-suitability flag.
func (r *Record) ApartmentOK() TriState { return r.apartmentOK }

// RequiresFencedYard returns the fenced-yard requirement flag.
func (r *Record) RequiresFencedYard() TriState { return r.requiresFencedYard }

// LocationState returns the jurisdiction code ("" if unknown).
func (r *Record) LocationState() string { return r.locationState }

// LocationLabel returns the display location.
func (r *Record) LocationLabel() string { return r.locationLabel }

// Status returns the listing status (available, pending, ...). Display only.
func (r *Record) Status() string { return r.status }

// SourceID returns the originating shelter feed.
func (r *Record) SourceID() string { return r.sourceID }

// PhotoURLs returns the display photo URLs.
func (r *Record) PhotoURLs() []string { return r.photoURLs }

// ShelterURL returns the shelter listing URL.
func (r *Record) ShelterURL() string { return r.shelterURL }

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
