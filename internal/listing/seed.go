package listing

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

//go:embed seed.json
var seedJSON []byte

// Seed returns the embedded brokerage catalog in source order.
func Seed() []*Listing {
	listings, err := Decode(bytes.NewReader(seedJSON))
	if err != nil {
		// The embedded catalog is validated by tests; a decode failure
		// here means a broken build, not a runtime condition.
		panic(fmt.Sprintf("embedded seed catalog: %v", err))
	}
	return listings
}

// Decode reads a JSON catalog and validates every listing.
func Decode(r io.Reader) ([]*Listing, error) {
	var listings []*Listing
	dec := json.NewDecoder(r)
	if err := dec.Decode(&listings); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if len(listings) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	seen := make(map[int64]bool, len(listings))
	for _, l := range listings {
		if err := l.Valid(); err != nil {
			return nil, err
		}
		if seen[l.ID] {
			return nil, fmt.Errorf("duplicate listing id %d", l.ID)
		}
		seen[l.ID] = true
	}
	return listings, nil
}

// LoadFile reads a catalog from a JSON file on disk.
func LoadFile(path string) ([]*Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}
