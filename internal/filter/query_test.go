package filter

import (
	"net/url"
	"testing"
)

func TestEncodeQueryOmitsEmptyFacets(t *testing.T) {
	q := EncodeQuery(Selection{PropertyType: "villa", Amenity: "pool"})

	if got := q.Get("type"); got != "villa" {
		t.Errorf("type = %q, want %q", got, "villa")
	}
	if got := q.Get("amenities"); got != "pool" {
		t.Errorf("amenities = %q, want %q", got, "pool")
	}
	for _, absent := range []string{"budget", "bhk", "location", "status"} {
		if _, ok := q[absent]; ok {
			t.Errorf("empty facet %q was emitted", absent)
		}
	}
	if len(q) != 2 {
		t.Errorf("expected 2 parameters, got %d: %v", len(q), q)
	}
}

func TestEncodeQueryEmptySelection(t *testing.T) {
	q := EncodeQuery(Selection{})
	if len(q) != 0 {
		t.Errorf("empty selection emitted parameters: %v", q)
	}
}

func TestDecodeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Selection
	}{
		{
			"all facets",
			"type=villa&budget=50-100&bhk=3&location=mumbai&status=ready&amenities=pool",
			Selection{PropertyType: "villa", Budget: "50-100", Bedrooms: "3", Location: "mumbai", Possession: "ready", Amenity: "pool"},
		},
		{
			"missing parameters leave facets empty",
			"type=apartment",
			Selection{PropertyType: "apartment"},
		},
		{
			"unknown keys ignored",
			"type=villa&utm_source=campaign&page=2",
			Selection{PropertyType: "villa"},
		},
		{
			"empty query",
			"",
			Selection{},
		},
		{
			"unrecognized values pass through to fail closed at match time",
			"budget=a-trillion",
			Selection{Budget: "a-trillion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			if got := DecodeQuery(q); got != tt.want {
				t.Errorf("DecodeQuery(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestQueryRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
	}{
		{"empty", Selection{}},
		{"single facet", Selection{Budget: "100-300"}},
		{"two facets", Selection{PropertyType: "villa", Amenity: "pool"}},
		{"all facets", Selection{
			PropertyType: "apartment",
			Budget:       "1000+",
			Bedrooms:     "5+",
			Location:     "Juhu, Mumbai",
			Possession:   "ready",
			Amenity:      "gym",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeQuery(EncodeQuery(tt.sel)); got != tt.sel {
				t.Errorf("round trip = %+v, want %+v", got, tt.sel)
			}
		})
	}
}

// The serialized form must survive a real URL: encode, render as a query
// string, re-parse, decode. This is the cross-page redirect path.
func TestQueryRoundTripThroughURL(t *testing.T) {
	sel := Selection{PropertyType: "villa", Location: "South Beach, Miami", Bedrooms: "5+"}

	raw := EncodeQuery(sel).Encode()
	parsed, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query %q: %v", raw, err)
	}

	if got := DecodeQuery(parsed); got != sel {
		t.Errorf("round trip through URL = %+v, want %+v", got, sel)
	}
}
