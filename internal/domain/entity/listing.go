package entity

// ListingFeatures describes the fixed attributes of an accommodation unit.
type ListingFeatures struct {
	Furnished   bool `json:"furnished"`
	Parking     bool `json:"parking"`
	PetFriendly bool `json:"petFriendly"`
	Bedrooms    int  `json:"bedrooms"`
	Bathrooms   int  `json:"bathrooms"`
}

type ListingAvailability struct {
	Available bool `json:"available"`
	// MoveInDate is an ISO-8601 date string; empty when not announced.
	MoveInDate string `json:"moveInDate,omitempty"`
}

// Listing is a single accommodation unit. Listings are immutable reference
// data: the catalog is fixed at build time and never mutated at runtime.
type Listing struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Subtitle     string              `json:"subtitle"`
	PropertyType string              `json:"propertyType"`
	PriceNumeric float64             `json:"priceNumeric"`
	Amenities    []string            `json:"amenities"`
	Features     ListingFeatures     `json:"features"`
	Availability ListingAvailability `json:"availability"`
	Location     string              `json:"location"`
	University   string              `json:"university"`
	Rating       float64             `json:"rating"`
}
