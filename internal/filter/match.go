package filter

import (
	"strconv"
	"strings"

	"github.com/MitulSrivastava/urban-investor/internal/listing"
)

// The facet predicates below are pure and total: a malformed or unknown
// selected value never errors, it resolves to no-match (fail-closed). An
// empty selected value always matches. A listing is visible iff every
// predicate passes; no predicate depends on another, so they can be
// evaluated in any order.

// MatchesPropertyType returns true if selected is empty or is one of the
// listing's property type tags.
func MatchesPropertyType(selected string, types []string) bool {
	if selected == "" {
		return true
	}
	for _, t := range types {
		if t == selected {
			return true
		}
	}
	return false
}

// MatchesBudget returns true if selected is empty or the listing's price
// bucket is in the adjacency set for the selected range. Unrecognized
// non-empty ranges match nothing.
func MatchesBudget(selected, bucket string) bool {
	if selected == "" {
		return true
	}
	accepted, ok := budgetAdjacency[selected]
	if !ok {
		return false
	}
	return accepted[bucket]
}

// BedroomSentinel is the selected bedroom value meaning "5 or more".
const BedroomSentinel = "5+"

// MatchesBedrooms returns true if selected is empty, if selected is the
// "5+" sentinel and any bedroom option is at least 5, or if selected parses
// as an integer that is literally one of the listing's options.
func MatchesBedrooms(selected string, options []int) bool {
	if selected == "" {
		return true
	}
	if selected == BedroomSentinel {
		for _, n := range options {
			if n >= 5 {
				return true
			}
		}
		return false
	}
	want, err := strconv.Atoi(selected)
	if err != nil {
		return false
	}
	for _, n := range options {
		if n == want {
			return true
		}
	}
	return false
}

// MatchesLocation returns true if selected is empty or the listing location
// contains it, case-insensitively.
func MatchesLocation(selected, location string) bool {
	if selected == "" {
		return true
	}
	return strings.Contains(strings.ToLower(location), strings.ToLower(selected))
}

// MatchesPossession returns true if selected is empty or equals the
// listing's possession status exactly.
func MatchesPossession(selected string, status listing.PossessionStatus) bool {
	return selected == "" || selected == string(status)
}

// MatchesAmenity returns true if selected is empty or its canonical form is
// one of the listing's amenity tags.
func MatchesAmenity(selected string, amenities []string) bool {
	if selected == "" {
		return true
	}
	canonical := canonicalAmenity(selected)
	for _, a := range amenities {
		if a == canonical {
			return true
		}
	}
	return false
}

// Matches reports whether the listing passes every facet of the selection.
func Matches(s Selection, l *listing.Listing) bool {
	return MatchesPropertyType(s.PropertyType, l.PropertyTypes) &&
		MatchesBudget(s.Budget, l.PriceBucket) &&
		MatchesBedrooms(s.Bedrooms, l.BedroomOptions) &&
		MatchesLocation(s.Location, l.Location) &&
		MatchesPossession(s.Possession, l.Possession) &&
		MatchesAmenity(s.Amenity, l.Amenities)
}
