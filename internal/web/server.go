// Package web provides the HTTP server for the urban-investor listings site.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/MitulSrivastava/urban-investor/internal/filter"
	"github.com/MitulSrivastava/urban-investor/internal/listing"
	"github.com/MitulSrivastava/urban-investor/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server serves the listings page and the JSON API. Both surfaces decode
// filters from the same query-string contract, so a redirect from another
// page lands on the same visible set the in-page panel would produce.
type Server struct {
	catalog   []*listing.Listing
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates a web server over a fixed catalog.
func NewServer(catalog []*listing.Listing) (*Server, error) {
	funcMap := template.FuncMap{
		"budgetLabel":  filter.BudgetLabel,
		"bedroomLabel": filter.BedroomLabel,
		"amenityLabel": filter.AmenityLabel,
		"joinTags":     tmplJoinTags,
		"bedroomList":  tmplBedroomList,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		catalog:   catalog,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/", s.handleListings)
	s.mux.HandleFunc("/listing/", s.handleDetail)
	s.mux.HandleFunc("/api/listings", s.handleAPIListings)
	s.mux.HandleFunc("/health", s.handleHealth)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Serving listings on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

// render executes a template and writes the result.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering page: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
