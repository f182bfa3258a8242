package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/MitulSrivastava/urban-investor/internal/filter"
	"github.com/MitulSrivastava/urban-investor/internal/listing"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printListingSummary prints a single listing in text format.
func printListingSummary(l *listing.Listing) {
	fmt.Printf("Listing #%d\n", l.ID)
	fmt.Printf("  Name:       %s\n", l.Name)
	fmt.Printf("  Type:       %s\n", strings.Join(l.PropertyTypes, ", "))
	fmt.Printf("  Price:      %s\n", formatBucket(l.PriceBucket))
	fmt.Printf("  Config:     %s\n", formatBedrooms(l.BedroomOptions))
	if l.Location != "" {
		fmt.Printf("  Location:   %s\n", l.Location)
	}
	if l.Possession != "" {
		fmt.Printf("  Possession: %s\n", l.Possession)
	}
	if len(l.Amenities) > 0 {
		labels := make([]string, len(l.Amenities))
		for i, a := range l.Amenities {
			labels[i] = filter.AmenityLabel(a)
		}
		fmt.Printf("  Amenities:  %s\n", strings.Join(labels, ", "))
	}
}

// printListingTable prints listings as a formatted table.
func printListingTable(listings []*listing.Listing) error {
	if len(listings) == 0 {
		fmt.Println("No listings match.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tTYPE\tPRICE\tCONFIG\tLOCATION\tPOSSESSION"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t----\t-----\t------\t--------\t----------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, l := range listings {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			truncate(l.Name, 32),
			strings.Join(l.PropertyTypes, "/"),
			formatBucket(l.PriceBucket),
			formatBedrooms(l.BedroomOptions),
			truncate(l.Location, 28),
			l.Possession,
		); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d listings\n", len(listings))
	return nil
}

// formatBucket renders a listing price bucket for display.
func formatBucket(bucket string) string {
	switch bucket {
	case listing.Bucket50L:
		return "₹50L"
	case listing.Bucket1Cr:
		return "₹1Cr"
	case listing.Bucket3Cr:
		return "₹3Cr"
	case listing.Bucket10Cr:
		return "₹10Cr"
	case listing.BucketOnRequest:
		return "On Request"
	}
	return bucket
}

// formatBedrooms renders bedroom configurations like "2/3 BHK".
func formatBedrooms(options []int) string {
	if len(options) == 0 {
		return "-"
	}
	parts := make([]string, len(options))
	for i, n := range options {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, "/") + " BHK"
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
