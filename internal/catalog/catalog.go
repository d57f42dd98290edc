// Package catalog holds the static listing dataset. The data is fixed at
// build time and treated as immutable reference data everywhere else.
package catalog

import "github.com/UniStayTeam/resident-service/internal/domain/entity"

var listings = []entity.Listing{
	{
		ID:           "p1",
		Title:        "The Yard Braamfontein",
		Subtitle:     "Single en-suite room, 5 min from campus",
		PropertyType: "residence",
		PriceNumeric: 4850,
		Amenities:    []string{"WiFi", "Laundry", "Study room", "24h security", "Gym"},
		Features:     entity.ListingFeatures{Furnished: true, Parking: false, PetFriendly: false, Bedrooms: 1, Bathrooms: 1},
		Availability: entity.ListingAvailability{Available: true, MoveInDate: "2026-02-01"},
		Location:     "Braamfontein, Johannesburg",
		University:   "University of the Witwatersrand",
		Rating:       4.6,
	},
	{
		ID:           "p2",
		Title:        "Obz Square Annex",
		Subtitle:     "Shared twin room with meals included",
		PropertyType: "residence",
		PriceNumeric: 3200,
		Amenities:    []string{"WiFi", "Meals", "Laundry", "Shuttle"},
		Features:     entity.ListingFeatures{Furnished: true, Parking: false, PetFriendly: false, Bedrooms: 1, Bathrooms: 1},
		Availability: entity.ListingAvailability{Available: false, MoveInDate: "2026-07-01"},
		Location:     "Observatory, Cape Town",
		University:   "University of Cape Town",
		Rating:       4.1,
	},
	{
		ID:           "p3",
		Title:        "Hatfield Studios",
		Subtitle:     "Self-catering bachelor studio",
		PropertyType: "apartment",
		PriceNumeric: 6200,
		Amenities:    []string{"WiFi", "Parking", "Kitchenette", "24h security"},
		Features:     entity.ListingFeatures{Furnished: true, Parking: true, PetFriendly: false, Bedrooms: 1, Bathrooms: 1},
		Availability: entity.ListingAvailability{Available: true},
		Location:     "Hatfield, Pretoria",
		University:   "University of Pretoria",
		Rating:       4.3,
	},
	{
		ID:           "p4",
		Title:        "Stellenbosch Garden Cottage",
		Subtitle:     "Private cottage, pets welcome",
		PropertyType: "cottage",
		PriceNumeric: 7500,
		Amenities:    []string{"WiFi", "Parking", "Garden", "Washing machine"},
		Features:     entity.ListingFeatures{Furnished: false, Parking: true, PetFriendly: true, Bedrooms: 2, Bathrooms: 1},
		Availability: entity.ListingAvailability{Available: true, MoveInDate: "2026-01-15"},
		Location:     "Die Boord, Stellenbosch",
		University:   "Stellenbosch University",
		Rating:       4.8,
	},
	{
		ID:           "p5",
		Title:        "Durban Point Flatshare",
		Subtitle:     "Room in a 3-bed flat near the promenade",
		PropertyType: "flatshare",
		PriceNumeric: 2800,
		Amenities:    []string{"WiFi", "Sea view", "Laundry"},
		Features:     entity.ListingFeatures{Furnished: false, Parking: false, PetFriendly: false, Bedrooms: 1, Bathrooms: 1},
		Availability: entity.ListingAvailability{Available: false},
		Location:     "Point Waterfront, Durban",
		University:   "Durban University of Technology",
		Rating:       3.9,
	},
	{
		ID:           "p6",
		Title:        "South Point Maboneng",
		Subtitle:     "Premium single with balcony",
		PropertyType: "apartment",
		PriceNumeric: 5400,
		Amenities:    []string{"WiFi", "Gym", "Rooftop lounge", "24h security", "Parking"},
		Features:     entity.ListingFeatures{Furnished: true, Parking: true, PetFriendly: true, Bedrooms: 1, Bathrooms: 1},
		Availability: entity.ListingAvailability{Available: true, MoveInDate: "2026-03-01"},
		Location:     "Maboneng, Johannesburg",
		University:   "University of Johannesburg",
		Rating:       4.4,
	},
	{
		ID:           "p7",
		Title:        "Summerstrand Beach House",
		Subtitle:     "Shared house, 10 min walk to campus",
		PropertyType: "house",
		PriceNumeric: 3600,
		Amenities:    []string{"WiFi", "Braai area", "Laundry", "Parking"},
		Features:     entity.ListingFeatures{Furnished: true, Parking: true, PetFriendly: false, Bedrooms: 4, Bathrooms: 2},
		Availability: entity.ListingAvailability{Available: false, MoveInDate: "2026-06-15"},
		Location:     "Summerstrand, Gqeberha",
		University:   "Nelson Mandela University",
		Rating:       4.0,
	},
	{
		ID:           "p8",
		Title:        "Rondebosch Res Annex",
		Subtitle:     "Budget single room, utilities included",
		PropertyType: "residence",
		PriceNumeric: 2400,
		Amenities:    []string{"WiFi", "Study room", "Shuttle"},
		Features:     entity.ListingFeatures{Furnished: true, Parking: false, PetFriendly: false, Bedrooms: 1, Bathrooms: 1},
		Availability: entity.ListingAvailability{Available: true},
		Location:     "Rondebosch, Cape Town",
		University:   "University of Cape Town",
		Rating:       3.7,
	},
}

// Listings returns a copy of the catalog so callers can't mutate the fixture.
func Listings() []entity.Listing {
	out := make([]entity.Listing, len(listings))
	copy(out, listings)
	return out
}

// FindByID returns the listing with the given id, or false.
func FindByID(id string) (entity.Listing, bool) {
	for _, l := range listings {
		if l.ID == id {
			return l, true
		}
	}
	return entity.Listing{}, false
}
