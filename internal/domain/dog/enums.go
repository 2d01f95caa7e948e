package dog

import "strings"

// Size is a canonical dog size bucket.
type Size string

// Size constants.
const (
	SizeXS     Size = "xs"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeXL     Size = "xl"
)

// IsValid checks if the size is one of the supported values.
func (s Size) IsValid() bool {
	return s == SizeXS || s == SizeSmall || s == SizeMedium || s == SizeLarge || s == SizeXL
}

// ParseSize canonicalizes a feed size label. Feeds use both the short
// XS/S/M/L/XL scale and the long form; both are accepted case-insensitively.
// Empty input means unknown. Unrecognized labels are rejected.
func ParseSize(raw string) (Size, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", true
	case "xs":
		return SizeXS, true
	case "s", "small":
		return SizeSmall, true
	case "m", "medium":
		return SizeMedium, true
	case "l", "large":
		return SizeLarge, true
	case "xl":
		return SizeXL, true
	default:
		return "", false
	}
}

// AgeGroup is a canonical age bucket.
type AgeGroup string

// AgeGroup constants, ordered young to old.
const (
	AgePuppy  AgeGroup = "puppy"
	AgeYoung  AgeGroup = "young"
	AgeAdult  AgeGroup = "adult"
	AgeSenior AgeGroup = "senior"
)

// IsValid checks if the age group is one of the supported values.
func (a AgeGroup) IsValid() bool {
	return a == AgePuppy || a == AgeYoung || a == AgeAdult || a == AgeSenior
}

// ParseAgeGroup canonicalizes a feed age group label. Empty input means
// unknown.
func ParseAgeGroup(raw string) (AgeGroup, bool) {
	g := AgeGroup(strings.ToLower(strings.TrimSpace(raw)))
	if g == "" {
		return "", true
	}
	if !g.IsValid() {
		return "", false
	}
	return g, true
}

// GroupForYears buckets a numeric age into an AgeGroup.
// Thresholds follow the feed normalizer: puppy < 1, young < 3, adult < 8.
func GroupForYears(years float64) AgeGroup {
	switch {
	case years < 1:
		return AgePuppy
	case years < 3:
		return AgeYoung
	case years < 8:
		return AgeAdult
	default:
		return AgeSenior
	}
}

// Sex is a dog's recorded sex.
type Sex string

// Sex constants.
const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// IsValid checks if the sex is one of the supported values.
func (s Sex) IsValid() bool { return s == SexMale || s == SexFemale }

// ParseSex canonicalizes a feed sex label. Empty input means unknown.
func ParseSex(raw string) (Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", true
	case "m", "male":
		return SexMale, true
	case "f", "female":
		return SexFemale, true
	default:
		return "", false
	}
}
