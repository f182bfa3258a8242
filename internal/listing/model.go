// Package listing provides the property listing domain model and data access.
package listing

import "fmt"

// PossessionStatus represents a listing's construction/handover state.
type PossessionStatus string

const (
	PossessionReady             PossessionStatus = "ready"
	PossessionUnderConstruction PossessionStatus = "under-construction"
	PossessionNewLaunch         PossessionStatus = "new-launch"
)

// ValidPossession returns true if s is a known possession status.
func ValidPossession(s string) bool {
	switch PossessionStatus(s) {
	case PossessionReady, PossessionUnderConstruction, PossessionNewLaunch:
		return true
	}
	return false
}

// Price buckets a listing can be tagged with, ordered low to high.
const (
	Bucket50L       = "50l"
	Bucket1Cr       = "1cr"
	Bucket3Cr       = "3cr"
	Bucket10Cr      = "10cr"
	BucketOnRequest = "on-request"
)

// PriceBuckets lists the listing-side price buckets in ascending order.
var PriceBuckets = []string{Bucket50L, Bucket1Cr, Bucket3Cr, Bucket10Cr, BucketOnRequest}

// ValidPriceBucket returns true if b is a known listing price bucket.
func ValidPriceBucket(b string) bool {
	for _, known := range PriceBuckets {
		if b == known {
			return true
		}
	}
	return false
}

// Listing represents one property in the brokerage catalog.
// Instances are immutable once loaded; filtering never mutates them.
type Listing struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	PropertyTypes  []string         `json:"property_types"`
	PriceBucket    string           `json:"price_bucket"`
	BedroomOptions []int            `json:"bedroom_options"`
	Location       string           `json:"location"`
	Possession     PossessionStatus `json:"possession"`
	Amenities      []string         `json:"amenities"`
}

// Valid reports whether the listing satisfies the catalog invariants:
// positive ID, at least one property type, a single known price bucket,
// and at least one bedroom configuration.
func (l *Listing) Valid() error {
	if l.ID <= 0 {
		return fmt.Errorf("listing id must be positive, got %d", l.ID)
	}
	if len(l.PropertyTypes) == 0 {
		return fmt.Errorf("listing %d has no property types", l.ID)
	}
	if !ValidPriceBucket(l.PriceBucket) {
		return fmt.Errorf("listing %d has unknown price bucket %q", l.ID, l.PriceBucket)
	}
	if len(l.BedroomOptions) == 0 {
		return fmt.Errorf("listing %d has no bedroom options", l.ID)
	}
	return nil
}

// HasPropertyType returns true if tag is one of the listing's type tags.
func (l *Listing) HasPropertyType(tag string) bool {
	for _, t := range l.PropertyTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAmenity returns true if tag is one of the listing's amenity tags.
func (l *Listing) HasAmenity(tag string) bool {
	for _, a := range l.Amenities {
		if a == tag {
			return true
		}
	}
	return false
}

// HasBedrooms returns true if n is one of the listing's configurations.
func (l *Listing) HasBedrooms(n int) bool {
	for _, b := range l.BedroomOptions {
		if b == n {
			return true
		}
	}
	return false
}

// MaxBedrooms returns the largest bedroom configuration, or 0 if none.
func (l *Listing) MaxBedrooms() int {
	max := 0
	for _, b := range l.BedroomOptions {
		if b > max {
			max = b
		}
	}
	return max
}
