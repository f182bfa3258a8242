package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitulSrivastava/urban-investor/internal/filter"
	"github.com/MitulSrivastava/urban-investor/internal/listing"
)

func newFacetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "Print the recognized filter vocabularies",
		Long:  "Print every value each filter facet recognizes, with its display label where one exists.",
		Args:  cobra.NoArgs,
		RunE:  runFacets,
	}
}

type facetValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type facetsOutput struct {
	Budgets    []facetValue `json:"budgets"`
	Bedrooms   []facetValue `json:"bedrooms"`
	Possession []string     `json:"possession"`
	Buckets    []string     `json:"price_buckets"`
}

func runFacets(cmd *cobra.Command, args []string) error {
	out := facetsOutput{
		Possession: []string{
			string(listing.PossessionReady),
			string(listing.PossessionUnderConstruction),
			string(listing.PossessionNewLaunch),
		},
		Buckets: listing.PriceBuckets,
	}
	for _, b := range filter.BudgetBuckets() {
		out.Budgets = append(out.Budgets, facetValue{Value: b, Label: filter.BudgetLabel(b)})
	}
	for _, b := range []string{"1", "2", "3", "4", "5+"} {
		out.Bedrooms = append(out.Bedrooms, facetValue{Value: b, Label: filter.BedroomLabel(b)})
	}

	if isJSON() {
		return printJSON(out)
	}

	fmt.Println("Budget ranges:")
	for _, b := range out.Budgets {
		fmt.Printf("  %-10s %s\n", b.Value, b.Label)
	}
	fmt.Println("Bedrooms:")
	for _, b := range out.Bedrooms {
		fmt.Printf("  %-10s %s\n", b.Value, b.Label)
	}
	fmt.Println("Possession:")
	for _, p := range out.Possession {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println("Listing price buckets:")
	for _, b := range out.Buckets {
		fmt.Printf("  %s\n", b)
	}

	return nil
}
