// Package filter implements the facet matching rules and filter sessions
// that decide which catalog listings are visible for a set of user-selected
// facet values.
package filter

// Selection holds the user's current facet choices, one optional value per
// facet. An empty string means the facet does not constrain. A Selection is
// a plain value: it carries no reference to any rendering surface, so the
// in-page panel and the cross-page redirect share the same state shape.
type Selection struct {
	PropertyType string `json:"property_type,omitempty"`
	Budget       string `json:"budget,omitempty"`
	Bedrooms     string `json:"bedrooms,omitempty"`
	Location     string `json:"location,omitempty"`
	Possession   string `json:"possession,omitempty"`
	Amenity      string `json:"amenity,omitempty"`
}

// Active returns true if at least one facet is constraining.
func (s Selection) Active() bool {
	return s != Selection{}
}

// facet pairs a summary label with accessors for one selection field.
// The facets slice fixes the facet order used everywhere: type, budget,
// bedrooms, location, possession, amenity.
type facet struct {
	label string
	value func(Selection) string
	// render maps the raw selected value to its display form; facets
	// without a lookup table render the raw value.
	render func(string) string
}

func rawValue(v string) string { return v }

var facets = []facet{
	{"Type", func(s Selection) string { return s.PropertyType }, rawValue},
	{"Budget", func(s Selection) string { return s.Budget }, BudgetLabel},
	{"Bedrooms", func(s Selection) string { return s.Bedrooms }, BedroomLabel},
	{"Location", func(s Selection) string { return s.Location }, rawValue},
	{"Possession", func(s Selection) string { return s.Possession }, rawValue},
	{"Amenities", func(s Selection) string { return s.Amenity }, AmenityLabel},
}

// Describe returns one "Label: value" string per non-empty facet, in the
// fixed facet order. Bucket and amenity codes are rendered through their
// label tables; facets without a table show the raw selected value.
func (s Selection) Describe() []string {
	var out []string
	for _, f := range facets {
		v := f.value(s)
		if v == "" {
			continue
		}
		out = append(out, f.label+": "+f.render(v))
	}
	return out
}
