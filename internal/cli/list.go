package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitulSrivastava/urban-investor/internal/client"
	"github.com/MitulSrivastava/urban-investor/internal/filter"
)

func newListCmd() *cobra.Command {
	var sel filter.Selection
	var remote string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings matching the selected filters",
		Long:  "List catalog listings. Each filter flag constrains one facet; listings must match every given facet to appear.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(sel, remote)
		},
	}

	cmd.Flags().StringVar(&sel.PropertyType, "type", "", "property type (apartment, villa, penthouse, plot, commercial)")
	cmd.Flags().StringVar(&sel.Budget, "budget", "", "budget range in lakh (0-50, 50-100, 100-300, 300-1000, 1000+)")
	cmd.Flags().StringVar(&sel.Bedrooms, "bhk", "", "bedroom count (1-4, or 5+ for five or more)")
	cmd.Flags().StringVar(&sel.Location, "location", "", "location substring, case-insensitive")
	cmd.Flags().StringVar(&sel.Possession, "status", "", "possession status (ready, under-construction, new-launch)")
	cmd.Flags().StringVar(&sel.Amenity, "amenity", "", "amenity tag (pool, gym, clubhouse, garden, security, parking)")
	cmd.Flags().StringVar(&remote, "remote", "", "query a running server at this base URL instead of the local catalog")

	return cmd
}

func runList(sel filter.Selection, remote string) error {
	if remote != "" {
		resp, err := client.New(remote).ListListings(sel)
		if err != nil {
			return err
		}
		if isJSON() {
			return printJSON(resp)
		}
		printActiveFilters(resp.ActiveFilters)
		return printListingTable(resp.Listings)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	result := filter.Evaluate(sel, catalog)

	if isJSON() {
		return printJSON(result)
	}

	printActiveFilters(result.ActiveFilters)
	return printListingTable(result.Visible)
}

// printActiveFilters prints the active-filter summary lines, if any.
func printActiveFilters(active []string) {
	for _, line := range active {
		fmt.Println(line)
	}
	if len(active) > 0 {
		fmt.Println()
	}
}
