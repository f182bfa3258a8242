package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show listing details",
		Long:  "Show full details for one catalog listing.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid listing ID: %s", args[0])
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	for _, l := range catalog {
		if l.ID == id {
			if isJSON() {
				return printJSON(l)
			}
			printListingSummary(l)
			return nil
		}
	}

	return fmt.Errorf("listing %d not found", id)
}
