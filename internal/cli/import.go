package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitulSrivastava/urban-investor/internal/listing"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a listing catalog",
		Long:  "Replace the SQLite catalog with listings from a JSON file, or with the embedded seed catalog when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	var listings []*listing.Listing
	var err error

	if len(args) == 1 {
		listings, err = listing.LoadFile(args[0])
		if err != nil {
			return err
		}
	} else {
		listings = listing.Seed()
	}

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	repo := listing.NewRepository(database)
	if err := repo.ReplaceAll(listings); err != nil {
		return err
	}

	fmt.Printf("Imported %d listings.\n", len(listings))
	return nil
}
