package filter

import (
	"testing"

	"github.com/MitulSrivastava/urban-investor/internal/listing"
)

func TestMatchesPropertyType(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		types    []string
		want     bool
	}{
		{"empty matches anything", "", []string{"villa"}, true},
		{"member matches", "villa", []string{"villa"}, true},
		{"member of composite matches", "penthouse", []string{"apartment", "penthouse"}, true},
		{"non-member does not match", "plot", []string{"apartment", "penthouse"}, false},
		{"empty type set only matches empty selection", "villa", nil, false},
		{"unknown value fails closed", "castle", []string{"villa"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesPropertyType(tt.selected, tt.types); got != tt.want {
				t.Errorf("MatchesPropertyType(%q, %v) = %v, want %v", tt.selected, tt.types, got, tt.want)
			}
		})
	}
}

func TestMatchesBudget(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		bucket   string
		want     bool
	}{
		{"empty matches anything", "", "10cr", true},
		{"range matches lower boundary bucket", "50-100", "50l", true},
		{"range matches upper boundary bucket", "50-100", "1cr", true},
		{"range does not match distant bucket", "50-100", "10cr", false},
		{"lowest range", "0-50", "50l", true},
		{"lowest range rejects above", "0-50", "1cr", false},
		{"top range matches 10cr", "1000+", "10cr", true},
		{"top range matches on-request", "1000+", "on-request", true},
		{"unknown selected range fails closed", "2000+", "10cr", false},
		{"unknown listing bucket fails closed", "0-50", "priceless", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesBudget(tt.selected, tt.bucket); got != tt.want {
				t.Errorf("MatchesBudget(%q, %q) = %v, want %v", tt.selected, tt.bucket, got, tt.want)
			}
		})
	}
}

func TestMatchesBedrooms(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		options  []int
		want     bool
	}{
		{"empty matches anything", "", []int{1}, true},
		{"literal membership", "3", []int{2, 3}, true},
		{"literal non-membership", "4", []int{2, 3}, false},
		{"sentinel matches five", "5+", []int{5, 6}, true},
		{"sentinel matches above five", "5+", []int{7}, true},
		{"sentinel rejects four", "5+", []int{4}, false},
		{"malformed value fails closed", "many", []int{2, 3}, false},
		{"empty options only match empty selection", "2", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesBedrooms(tt.selected, tt.options); got != tt.want {
				t.Errorf("MatchesBedrooms(%q, %v) = %v, want %v", tt.selected, tt.options, got, tt.want)
			}
		})
	}
}

func TestMatchesLocation(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		location string
		want     bool
	}{
		{"empty matches anything", "", "Juhu, Mumbai", true},
		{"case-insensitive substring", "miami", "South Beach, Miami", true},
		{"mixed case selection", "MuMbAi", "Juhu, Mumbai", true},
		{"partial word", "gur", "Sector 65, Gurugram", true},
		{"no substring", "pune", "Juhu, Mumbai", false},
		{"empty location only matches empty selection", "mumbai", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesLocation(tt.selected, tt.location); got != tt.want {
				t.Errorf("MatchesLocation(%q, %q) = %v, want %v", tt.selected, tt.location, got, tt.want)
			}
		})
	}
}

func TestMatchesPossession(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		status   listing.PossessionStatus
		want     bool
	}{
		{"empty matches anything", "", listing.PossessionReady, true},
		{"exact match", "ready", listing.PossessionReady, true},
		{"mismatch", "ready", listing.PossessionUnderConstruction, false},
		{"unknown value fails closed", "someday", listing.PossessionReady, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesPossession(tt.selected, tt.status); got != tt.want {
				t.Errorf("MatchesPossession(%q, %q) = %v, want %v", tt.selected, tt.status, got, tt.want)
			}
		})
	}
}

func TestMatchesAmenity(t *testing.T) {
	tests := []struct {
		name      string
		selected  string
		amenities []string
		want      bool
	}{
		{"empty matches anything", "", nil, true},
		{"canonical tag matches", "pool", []string{"pool", "gym"}, true},
		{"alias resolves to stored tag", "swimming-pool", []string{"pool", "gym"}, true},
		{"alias for gym", "gymnasium", []string{"gym"}, true},
		{"missing amenity", "garden", []string{"pool"}, false},
		{"unknown value fails closed", "helipad", []string{"pool"}, false},
		{"empty amenity set only matches empty selection", "pool", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesAmenity(tt.selected, tt.amenities); got != tt.want {
				t.Errorf("MatchesAmenity(%q, %v) = %v, want %v", tt.selected, tt.amenities, got, tt.want)
			}
		})
	}
}

// Visibility is the conjunction of all six facet predicates, each evaluated
// independently of the others.
func TestMatchesIsConjunction(t *testing.T) {
	l := &listing.Listing{
		ID:             1,
		Name:           "Test Towers",
		PropertyTypes:  []string{"apartment"},
		PriceBucket:    "1cr",
		BedroomOptions: []int{2, 3},
		Location:       "Lower Parel, Mumbai",
		Possession:     listing.PossessionReady,
		Amenities:      []string{"gym"},
	}

	all := Selection{
		PropertyType: "apartment",
		Budget:       "50-100",
		Bedrooms:     "3",
		Location:     "mumbai",
		Possession:   "ready",
		Amenity:      "gym",
	}
	if !Matches(all, l) {
		t.Fatal("expected listing to match when every facet matches")
	}

	// Flipping any single facet to a non-matching value must hide the listing.
	breaking := []Selection{
		{PropertyType: "villa", Budget: all.Budget, Bedrooms: all.Bedrooms, Location: all.Location, Possession: all.Possession, Amenity: all.Amenity},
		{PropertyType: all.PropertyType, Budget: "1000+", Bedrooms: all.Bedrooms, Location: all.Location, Possession: all.Possession, Amenity: all.Amenity},
		{PropertyType: all.PropertyType, Budget: all.Budget, Bedrooms: "5+", Location: all.Location, Possession: all.Possession, Amenity: all.Amenity},
		{PropertyType: all.PropertyType, Budget: all.Budget, Bedrooms: all.Bedrooms, Location: "pune", Possession: all.Possession, Amenity: all.Amenity},
		{PropertyType: all.PropertyType, Budget: all.Budget, Bedrooms: all.Bedrooms, Location: all.Location, Possession: "new-launch", Amenity: all.Amenity},
		{PropertyType: all.PropertyType, Budget: all.Budget, Bedrooms: all.Bedrooms, Location: all.Location, Possession: all.Possession, Amenity: "pool"},
	}
	for i, s := range breaking {
		if Matches(s, l) {
			t.Errorf("selection %d: expected one failing facet to hide the listing", i)
		}
	}

	// Conjunction agrees with the individual predicates.
	if Matches(all, l) != (MatchesPropertyType(all.PropertyType, l.PropertyTypes) &&
		MatchesBudget(all.Budget, l.PriceBucket) &&
		MatchesBedrooms(all.Bedrooms, l.BedroomOptions) &&
		MatchesLocation(all.Location, l.Location) &&
		MatchesPossession(all.Possession, l.Possession) &&
		MatchesAmenity(all.Amenity, l.Amenities)) {
		t.Error("Matches disagrees with the conjunction of its predicates")
	}
}
