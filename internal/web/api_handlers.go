package web

import (
	"encoding/json"
	"net/http"

	"github.com/MitulSrivastava/urban-investor/internal/filter"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleAPIListings returns the filtered catalog as JSON. Filters come from
// the same query-string contract the HTML page uses; unknown parameters are
// ignored and unrecognized values simply narrow the result, never error.
func (s *Server) handleAPIListings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sel := filter.DecodeQuery(r.URL.Query())
	result := filter.Evaluate(sel, s.catalog)
	apiJSON(w, result, http.StatusOK)
}
