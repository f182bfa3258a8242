package listing

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Repository provides catalog persistence. The database only stores and
// reloads the fixed dataset; facet evaluation happens in memory.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a listing repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const insertSQL = `INSERT INTO listings
	(id, name, property_types, price_bucket, bedroom_options, location, possession, amenities)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const selectColumns = `id, name, property_types, price_bucket, bedroom_options, location, possession, amenities`

// Insert adds a listing to the catalog. The listing keeps its own ID so the
// catalog preserves the source dataset's ordering and identity.
func (r *Repository) Insert(l *Listing) error {
	if err := l.Valid(); err != nil {
		return err
	}

	types, err := json.Marshal(l.PropertyTypes)
	if err != nil {
		return fmt.Errorf("encoding property types: %w", err)
	}
	bedrooms, err := json.Marshal(l.BedroomOptions)
	if err != nil {
		return fmt.Errorf("encoding bedroom options: %w", err)
	}
	amenities := []byte("[]")
	if len(l.Amenities) > 0 {
		if amenities, err = json.Marshal(l.Amenities); err != nil {
			return fmt.Errorf("encoding amenities: %w", err)
		}
	}

	_, err = r.db.Exec(insertSQL,
		l.ID, l.Name, string(types), l.PriceBucket,
		string(bedrooms), l.Location, string(l.Possession), string(amenities),
	)
	if err != nil {
		return fmt.Errorf("inserting listing %d: %w", l.ID, err)
	}
	return nil
}

// GetByID returns a listing by its ID.
func (r *Repository) GetByID(id int64) (*Listing, error) {
	query := fmt.Sprintf("SELECT %s FROM listings WHERE id = ?", selectColumns)
	row := r.db.QueryRow(query, id)

	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("listing %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying listing %d: %w", id, err)
	}

	return l, nil
}

// List returns the full catalog in source order.
func (r *Repository) List() ([]*Listing, error) {
	query := fmt.Sprintf("SELECT %s FROM listings ORDER BY id", selectColumns)
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var listings []*Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, nil
}

// Count returns the number of listings in the catalog.
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM listings").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting listings: %w", err)
	}
	return n, nil
}

// ReplaceAll clears the catalog and inserts the given listings atomically.
func (r *Repository) ReplaceAll(listings []*Listing) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM listings"); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, l := range listings {
		if err := l.Valid(); err != nil {
			return err
		}
		types, err := json.Marshal(l.PropertyTypes)
		if err != nil {
			return fmt.Errorf("encoding property types: %w", err)
		}
		bedrooms, err := json.Marshal(l.BedroomOptions)
		if err != nil {
			return fmt.Errorf("encoding bedroom options: %w", err)
		}
		amenities := []byte("[]")
		if len(l.Amenities) > 0 {
			if amenities, err = json.Marshal(l.Amenities); err != nil {
				return fmt.Errorf("encoding amenities: %w", err)
			}
		}
		if _, err := stmt.Exec(
			l.ID, l.Name, string(types), l.PriceBucket,
			string(bedrooms), l.Location, string(l.Possession), string(amenities),
		); err != nil {
			return fmt.Errorf("inserting listing %d: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// scanListing scans a listing from a database row.
func scanListing(row interface{ Scan(...interface{}) error }) (*Listing, error) {
	var l Listing
	var types, bedrooms, amenities, possession string

	err := row.Scan(
		&l.ID, &l.Name, &types, &l.PriceBucket,
		&bedrooms, &l.Location, &possession, &amenities,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(types), &l.PropertyTypes); err != nil {
		return nil, fmt.Errorf("decoding property types for listing %d: %w", l.ID, err)
	}
	if err := json.Unmarshal([]byte(bedrooms), &l.BedroomOptions); err != nil {
		return nil, fmt.Errorf("decoding bedroom options for listing %d: %w", l.ID, err)
	}
	if err := json.Unmarshal([]byte(amenities), &l.Amenities); err != nil {
		return nil, fmt.Errorf("decoding amenities for listing %d: %w", l.ID, err)
	}
	l.Possession = PossessionStatus(possession)

	return &l, nil
}
