package filter

import "github.com/MitulSrivastava/urban-investor/internal/listing"

// Result is one evaluation of a selection against the catalog: the visible
// listings in their original order, plus the derived views the rendering
// layer consumes.
type Result struct {
	Visible       []*listing.Listing `json:"listings"`
	VisibleCount  int                `json:"visible_count"`
	ActiveFilters []string           `json:"active_filters,omitempty"`
	HasActive     bool               `json:"has_active_filters"`
}

// Evaluate applies every facet predicate to every listing and returns the
// ordered visible subsequence. The input order is preserved; evaluating the
// same selection twice yields an identical result.
func Evaluate(s Selection, listings []*listing.Listing) Result {
	visible := make([]*listing.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(s, l) {
			visible = append(visible, l)
		}
	}
	return Result{
		Visible:       visible,
		VisibleCount:  len(visible),
		ActiveFilters: s.Describe(),
		HasActive:     s.Active(),
	}
}
