package entity

import "strings"

type AvailabilityFilter string

const (
	AvailabilityAny       AvailabilityFilter = "any"
	AvailabilityAvailable AvailabilityFilter = "available"
	AvailabilitySoon      AvailabilityFilter = "soon"
)

type FurnishedFilter string

const (
	FurnishedAny         FurnishedFilter = "any"
	FurnishedFurnished   FurnishedFilter = "furnished"
	FurnishedUnfurnished FurnishedFilter = "unfurnished"
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchFilters is the user's persisted filter selection. A zero-length set
// means the dimension is disabled; nil pointers mean "don't care" for the
// tri-state booleans.
type SearchFilters struct {
	PriceRange    PriceRange         `json:"priceRange"`
	PropertyTypes []string           `json:"propertyTypes"`
	Locations     []string           `json:"locations"`
	Universities  []string           `json:"universities"`
	Amenities     []string           `json:"amenities"`
	Availability  AvailabilityFilter `json:"availability"`
	Furnished     FurnishedFilter    `json:"furnished"`
	Parking       *bool              `json:"parking"`
	PetFriendly   *bool              `json:"petFriendly"`
}

const defaultMaxPrice = 20000

func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		PriceRange:    PriceRange{Min: 0, Max: defaultMaxPrice},
		PropertyTypes: []string{},
		Locations:     []string{},
		Universities:  []string{},
		Amenities:     []string{},
		Availability:  AvailabilityAny,
		Furnished:     FurnishedAny,
	}
}

// Matches predicate-ANDs every enabled filter dimension against the listing.
func (f SearchFilters) Matches(l Listing) bool {
	if l.PriceNumeric < f.PriceRange.Min || l.PriceNumeric > f.PriceRange.Max {
		return false
	}
	if len(f.PropertyTypes) > 0 && !anyFold(f.PropertyTypes, l.PropertyType) {
		return false
	}
	if len(f.Locations) > 0 && !anyFold(f.Locations, l.Location) {
		return false
	}
	if len(f.Universities) > 0 && !anyFold(f.Universities, l.University) {
		return false
	}
	// Amenities AND together: every selected amenity must be offered.
	for _, want := range f.Amenities {
		if !containsFold(l.Amenities, want) {
			return false
		}
	}
	switch f.Availability {
	case AvailabilityAvailable:
		if !l.Availability.Available {
			return false
		}
	case AvailabilitySoon:
		if l.Availability.Available || l.Availability.MoveInDate == "" {
			return false
		}
	}
	switch f.Furnished {
	case FurnishedFurnished:
		if !l.Features.Furnished {
			return false
		}
	case FurnishedUnfurnished:
		if l.Features.Furnished {
			return false
		}
	}
	if f.Parking != nil && l.Features.Parking != *f.Parking {
		return false
	}
	if f.PetFriendly != nil && l.Features.PetFriendly != *f.PetFriendly {
		return false
	}
	return true
}

// MatchesQuery reports whether the free-text query appears, case-insensitive,
// in the listing's title, subtitle, location, university or amenities. An
// empty query matches everything.
func (l Listing) MatchesQuery(query string) bool {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Subtitle), q) ||
		strings.Contains(strings.ToLower(l.Location), q) ||
		strings.Contains(strings.ToLower(l.University), q) {
		return true
	}
	for _, a := range l.Amenities {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}

// anyFold reports whether any selected value is a case-insensitive substring
// match against the candidate.
func anyFold(selected []string, candidate string) bool {
	c := strings.ToLower(candidate)
	for _, s := range selected {
		if strings.Contains(c, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func containsFold(haystack []string, needle string) bool {
	n := strings.ToLower(needle)
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), n) {
			return true
		}
	}
	return false
}
