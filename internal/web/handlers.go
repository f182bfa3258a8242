package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MitulSrivastava/urban-investor/internal/filter"
	"github.com/MitulSrivastava/urban-investor/internal/listing"
)

type listingsData struct {
	Listings      []*listing.Listing
	VisibleCount  int
	TotalCount    int
	HasActive     bool
	ActiveFilters []string
	Selection     filter.Selection
	Budgets       []string
}

type detailData struct {
	Listing *listing.Listing
}

// handleListings renders the listings page. The request query is the single
// source of filter state: a cross-page redirect and the in-page panel form
// both arrive here as query parameters.
func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sel := filter.DecodeQuery(r.URL.Query())
	result := filter.Evaluate(sel, s.catalog)

	s.render(w, "listings.html", listingsData{
		Listings:      result.Visible,
		VisibleCount:  result.VisibleCount,
		TotalCount:    len(s.catalog),
		HasActive:     result.HasActive,
		ActiveFilters: result.ActiveFilters,
		Selection:     sel,
		Budgets:       filter.BudgetBuckets(),
	})
}

// handleDetail renders a single listing page.
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/listing/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	for _, l := range s.catalog {
		if l.ID == id {
			s.render(w, "detail.html", detailData{Listing: l})
			return
		}
	}
	http.NotFound(w, r)
}

// Template helper functions

func tmplJoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func tmplBedroomList(options []int) string {
	parts := make([]string, len(options))
	for i, n := range options {
		parts[i] = fmt.Sprintf("%d BHK", n)
	}
	return strings.Join(parts, " / ")
}
