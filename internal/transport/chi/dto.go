package chi

import (
	"fmt"
	"sort"

	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
	"github.com/zestie-cloud/pawmatch/internal/domain/match"
	usageuc "github.com/zestie-cloud/pawmatch/internal/usecase/usage"
)

// matchRequestDTO is the wire form of a match request.
type matchRequestDTO struct {
	HardFilters map[string]any  `json:"hard_filters"`
	Preferences []preferenceDTO `json:"preferences"`
	SeenDogIDs  []string        `json:"seen_dog_ids"`
}

type preferenceDTO struct {
	Field        string   `json:"field"`
	Hardness     string   `json:"hardness"`
	Value        any      `json:"value"`
	Weight       *float64 `json:"weight"`
	AllowUnknown *bool    `json:"allow_unknown"`
}

// toPrefSpecs converts wire preferences to domain specs. An omitted value
// defaults to true, the common shape for tri-state wishes like
// good_with_kids.
func (r matchRequestDTO) toPrefSpecs() []match.PrefSpec {
	specs := make([]match.PrefSpec, 0, len(r.Preferences))
	for _, p := range r.Preferences {
		value := p.Value
		if value == nil {
			value = true
		}
		specs = append(specs, match.PrefSpec{
			Field:        p.Field,
			Hardness:     p.Hardness,
			Value:        value,
			Weight:       p.Weight,
			AllowUnknown: p.AllowUnknown,
		})
	}
	return specs
}

// filterUses flattens the hard filter map for popularity tracking, in
// stable field order.
func (r matchRequestDTO) filterUses() []usageuc.FilterUse {
	fields := make([]string, 0, len(r.HardFilters))
	for f := range r.HardFilters {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	uses := make([]usageuc.FilterUse, 0, len(fields))
	for _, f := range fields {
		uses = append(uses, usageuc.FilterUse{Field: f, Value: fmt.Sprintf("%v", r.HardFilters[f])})
	}
	return uses
}

// matchResponseDTO is the wire form of a match response.
type matchResponseDTO struct {
	Results []dogResultDTO `json:"results"`
	Meta    metaDTO        `json:"meta"`
}

type metaDTO struct {
	TotalFound    int     `json:"total_found"`
	PromptTrigger *string `json:"prompt_trigger"`
}

type dogResultDTO struct {
	DogID        string        `json:"dog_id"`
	Name         string        `json:"name"`
	Section      match.Section `json:"section"`
	Score        float64       `json:"score"`
	Completeness float64       `json:"completeness"`
	Reasons      []match.Reason `json:"reasons"`
	DogData      dogDataDTO    `json:"dog_data"`
}

// dogDataDTO is the denormalized record snapshot for the UI. Pointers and
// empty strings carry unknowns through unchanged.
type dogDataDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Breed       string   `json:"breed,omitempty"`
	Description string   `json:"description,omitempty"`
	Size        string   `json:"size,omitempty"`
	AgeYears    *float64 `json:"age_years,omitempty"`
	AgeGroup    string   `json:"age_group,omitempty"`
	EnergyLevel *float64 `json:"energy_level,omitempty"`
	Sex         string   `json:"sex,omitempty"`

	GoodWithKids       *bool `json:"good_with_kids,omitempty"`
	GoodWithDogs       *bool `json:"good_with_dogs,omitempty"`
	GoodWithCats       *bool `json:"good_with_cats,omitempty"`
	HouseTrained       *bool `json:"house_trained,omitempty"`
	Hypoallergenic     *bool `json:"hypoallergenic,omitempty"`
	SpecialNeeds       *bool `json:"special_needs,omitempty"`
	Vaccinated         *bool `json:"vaccinations_up_to_date,omitempty"`
	SpayedNeutered     *bool `json:"spayed_neutered,omitempty"`
	ApartmentOK        *bool `json:"apartment_ok,omitempty"`
	RequiresFencedYard *bool `json:"requires_fenced_yard,omitempty"`

	LocationState string   `json:"location_state,omitempty"`
	LocationLabel string   `json:"location_label,omitempty"`
	Status        string   `json:"status,omitempty"`
	SourceID      string   `json:"source_id,omitempty"`
	PhotoURLs     []string `json:"photo_urls,omitempty"`
	ShelterURL    string   `json:"shelter_url,omitempty"`
}

func responseToDTO(resp match.Response) matchResponseDTO {
	results := make([]dogResultDTO, 0, len(resp.Results))
	for i := range resp.Results {
		results = append(results, resultToDTO(&resp.Results[i]))
	}

	meta := metaDTO{TotalFound: resp.TotalFound}
	if resp.PromptTrigger != "" {
		trigger := resp.PromptTrigger
		meta.PromptTrigger = &trigger
	}

	return matchResponseDTO{Results: results, Meta: meta}
}

func resultToDTO(r *match.Result) dogResultDTO {
	return dogResultDTO{
		DogID:        r.Dog.ID(),
		Name:         r.Dog.Name(),
		Section:      r.Section,
		Score:        r.Score,
		Completeness: r.Completeness,
		Reasons:      r.Reasons,
		DogData:      dogToDTO(&r.Dog),
	}
}

func dogToDTO(rec *dog.Record) dogDataDTO {
	d := dogDataDTO{
		ID:          rec.ID(),
		Name:        rec.Name(),
		Breed:       rec.Breed(),
		Description: rec.Description(),
		Size:        string(rec.Size()),
		AgeGroup:    string(rec.AgeGroup()),
		Sex:         string(rec.Sex()),

		GoodWithKids:       triToPtr(rec.GoodWithKids()),
		GoodWithDogs:       triToPtr(rec.GoodWithDogs()),
		GoodWithCats:       triToPtr(rec.GoodWithCats()),
		HouseTrained:       triToPtr(rec.HouseTrained()),
		Hypoallergenic:     triToPtr(rec.Hypoallergenic()),
		SpecialNeeds:       triToPtr(rec.SpecialNeeds()),
		Vaccinated:         triToPtr(rec.Vaccinated()),
		SpayedNeutered:     triToPtr(rec.SpayedNeutered()),
		ApartmentOK:        triToPtr(rec.ApartmentOK()),
		RequiresFencedYard: triToPtr(rec.RequiresFencedYard()),

		LocationState: rec.LocationState(),
		LocationLabel: rec.LocationLabel(),
		Status:        rec.Status(),
		SourceID:      rec.SourceID(),
		PhotoURLs:     rec.PhotoURLs(),
		ShelterURL:    rec.ShelterURL(),
	}
	if v, ok := rec.AgeYears(); ok {
		d.AgeYears = &v
	}
	if v, ok := rec.EnergyLevel(); ok {
		d.EnergyLevel = &v
	}
	return d
}

func triToPtr(t dog.TriState) *bool {
	if !t.Known() {
		return nil
	}
	b := t.Bool()
	return &b
}
