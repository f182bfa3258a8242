// Package cli defines the cobra command tree for urbaninv.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MitulSrivastava/urban-investor/internal/config"
	"github.com/MitulSrivastava/urban-investor/internal/db"
	"github.com/MitulSrivastava/urban-investor/internal/listing"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "urbaninv",
		Short:         "Browse and filter the Urban Investor property catalog",
		Long:          "Browse the Urban Investor brokerage catalog. Filter listings by type, budget, bedrooms, location, possession status, and amenities, exactly the way the website does.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite catalog path (default: ~/.urban-investor/catalog.db)")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newFacetsCmd(),
		newImportCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite catalog using the --db flag, the environment,
// or the default path.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		path = config.Load().DBPath
	}
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// loadCatalog returns the listing catalog: the SQLite catalog when it has
// been imported, the embedded seed otherwise.
func loadCatalog() ([]*listing.Listing, error) {
	database, err := openDB()
	if err != nil {
		return nil, err
	}
	defer closeDB(database)

	repo := listing.NewRepository(database)
	count, err := repo.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return listing.Seed(), nil
	}
	return repo.List()
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
