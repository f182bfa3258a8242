package filter

import "net/url"

// Query parameter names shared by the in-page panel and the cross-page
// redirect. An absent parameter means the facet does not constrain.
const (
	paramType       = "type"
	paramBudget     = "budget"
	paramBedrooms   = "bhk"
	paramLocation   = "location"
	paramPossession = "status"
	paramAmenity    = "amenities"
)

// EncodeQuery serializes a selection as URL query parameters. Empty facets
// are omitted entirely, never emitted as empty-string parameters.
func EncodeQuery(s Selection) url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set(paramType, s.PropertyType)
	set(paramBudget, s.Budget)
	set(paramBedrooms, s.Bedrooms)
	set(paramLocation, s.Location)
	set(paramPossession, s.Possession)
	set(paramAmenity, s.Amenity)
	return q
}

// DecodeQuery is the inverse of EncodeQuery. Missing parameters leave the
// facet empty and unknown parameter names are ignored, so decoding never
// fails; unrecognized values flow through and fail closed at match time.
func DecodeQuery(q url.Values) Selection {
	return Selection{
		PropertyType: q.Get(paramType),
		Budget:       q.Get(paramBudget),
		Bedrooms:     q.Get(paramBedrooms),
		Location:     q.Get(paramLocation),
		Possession:   q.Get(paramPossession),
		Amenity:      q.Get(paramAmenity),
	}
}
