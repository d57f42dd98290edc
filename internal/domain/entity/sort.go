package entity

import "sort"

type SortMode string

const (
	// SortRelevance preserves catalog scan order. Intentionally a no-op.
	SortRelevance  SortMode = "relevance"
	SortPriceAsc   SortMode = "price_asc"
	SortPriceDesc  SortMode = "price_desc"
	SortRatingDesc SortMode = "rating_desc"
)

// FilterListings runs the linear-scan pipeline: every enabled filter dimension
// is ANDed with the free-text query. Output order follows catalog order.
func FilterListings(listings []Listing, f SearchFilters, query string) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if f.Matches(l) && l.MatchesQuery(query) {
			out = append(out, l)
		}
	}
	return out
}

// SortListings orders results in place: available units always group before
// unavailable ones, then the selected mode applies as a stable secondary key.
func SortListings(listings []Listing, mode SortMode) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		if a.Availability.Available != b.Availability.Available {
			return a.Availability.Available
		}
		switch mode {
		case SortPriceAsc:
			return a.PriceNumeric < b.PriceNumeric
		case SortPriceDesc:
			return a.PriceNumeric > b.PriceNumeric
		case SortRatingDesc:
			return a.Rating > b.Rating
		default:
			return false
		}
	})
}
