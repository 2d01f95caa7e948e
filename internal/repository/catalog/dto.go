package catalog

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
)

// feedDoc is the normalized feed envelope produced by the ingestion
// pipeline.
type feedDoc struct {
	Dogs []dogDTO `json:"dogs"`
}

// dogDTO mirrors one normalized feed record. Pointer fields distinguish
// absent (unknown) from false/zero.
type dogDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Breed       string   `json:"breed"`
	Description string   `json:"description"`
	Size        string   `json:"size"`
	AgeYears    *float64 `json:"age_years"`
	AgeGroup    string   `json:"age_group"`
	EnergyLevel *float64 `json:"energy_level"`
	Sex         string   `json:"sex"`

	GoodWithKids       *bool `json:"good_with_kids"`
	GoodWithDogs       *bool `json:"good_with_dogs"`
	GoodWithCats       *bool `json:"good_with_cats"`
	HouseTrained       *bool `json:"house_trained"`
	Hypoallergenic     *bool `json:"hypoallergenic"`
	SpecialNeeds       *bool `json:"special_needs"`
	Vaccinated         *bool `json:"vaccinations_up_to_date"`
	SpayedNeutered     *bool `json:"spayed_neutered"`
	ApartmentOK        *bool `json:"apartment_ok"`
	RequiresFencedYard *bool `json:"requires_fenced_yard"`

	LocationState string   `json:"location_state"`
	LocationLabel string   `json:"location_label"`
	Status        string   `json:"status"`
	SourceID      string   `json:"source_id"`
	PhotoURLs     []string `json:"photo_urls"`
	ShelterURL    string   `json:"shelter_url"`
}

// toRecord validates and converts one feed entry.
func (d dogDTO) toRecord() (dog.Record, error) {
	size, ok := dog.ParseSize(d.Size)
	if !ok {
		return dog.Record{}, fmt.Errorf("dog %s: unrecognized size %q", d.ID, d.Size)
	}
	ageGroup, ok := dog.ParseAgeGroup(d.AgeGroup)
	if !ok {
		return dog.Record{}, fmt.Errorf("dog %s: unrecognized age group %q", d.ID, d.AgeGroup)
	}
	sex, ok := dog.ParseSex(d.Sex)
	if !ok {
		return dog.Record{}, fmt.Errorf("dog %s: unrecognized sex %q", d.ID, d.Sex)
	}

	return dog.New(dog.Params{
		ID:          d.ID,
		Name:        d.Name,
		Breed:       d.Breed,
		Description: d.Description,
		Size:        size,
		AgeYears:    d.AgeYears,
		AgeGroup:    ageGroup,
		EnergyLevel: d.EnergyLevel,
		Sex:         sex,

		GoodWithKids:       dog.TriFromBool(d.GoodWithKids),
		GoodWithDogs:       dog.TriFromBool(d.GoodWithDogs),
		GoodWithCats:       dog.TriFromBool(d.GoodWithCats),
		HouseTrained:       dog.TriFromBool(d.HouseTrained),
		Hypoallergenic:     dog.TriFromBool(d.Hypoallergenic),
		SpecialNeeds:       dog.TriFromBool(d.SpecialNeeds),
		Vaccinated:         dog.TriFromBool(d.Vaccinated),
		SpayedNeutered:     dog.TriFromBool(d.SpayedNeutered),
		ApartmentOK:        dog.TriFromBool(d.ApartmentOK),
		RequiresFencedYard: dog.TriFromBool(d.RequiresFencedYard),

		LocationState: d.LocationState,
		LocationLabel: d.LocationLabel,
		Status:        d.Status,
		SourceID:      d.SourceID,
		PhotoURLs:     d.PhotoURLs,
		ShelterURL:    d.ShelterURL,
	})
}

// parseFeed decodes a normalized feed. Structurally invalid records are
// logged and excluded from the snapshot; they are never a match-time
// concern.
func parseFeed(data []byte, logger *zap.Logger) ([]dog.Record, error) {
	var doc feedDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	records := make([]dog.Record, 0, len(doc.Dogs))
	for _, d := range doc.Dogs {
		rec, err := d.toRecord()
		if err != nil {
			logger.Warn("skipping invalid feed record", zap.String("dog_id", d.ID), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
