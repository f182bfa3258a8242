// Package client provides an HTTP client for the urban-investor listings API.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MitulSrivastava/urban-investor/internal/filter"
	"github.com/MitulSrivastava/urban-investor/internal/listing"
)

// Client is an HTTP client for the listings API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListResponse is the response from GET /api/listings.
type ListResponse struct {
	Listings      []*listing.Listing `json:"listings"`
	VisibleCount  int                `json:"visible_count"`
	ActiveFilters []string           `json:"active_filters"`
	HasActive     bool               `json:"has_active_filters"`
}

// ListListings returns the catalog filtered by the given selection. The
// selection travels as the same query parameters the website uses, so a
// remote list is guaranteed to agree with the page a browser would see.
func (c *Client) ListListings(sel filter.Selection) (*ListResponse, error) {
	path := "/api/listings"
	if q := filter.EncodeQuery(sel); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
