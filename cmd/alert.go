package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type alertCmd struct {
	listing   string
	threshold string
	clear     bool
}

func (*alertCmd) Name() string     { return "alert" }
func (*alertCmd) Synopsis() string { return "set or clear a listing's price-alert threshold" }
func (*alertCmd) Usage() string {
	return `alert -listing <id> (-threshold <price> | -clear)

  Sets a price-alert threshold on a listing. The catalog table flags parts
  whose current price is at or below their threshold.
`
}

func (c *alertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.listing, "listing", "", "Listing id, or any unique prefix (required)")
	f.StringVar(&c.threshold, "threshold", "", "Alert threshold, currency-prefixed")
	f.BoolVar(&c.clear, "clear", false, "Clear the threshold instead of setting one")
}

func (c *alertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.clear == (c.threshold != "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -threshold and -clear is required.")
		return subcommands.ExitUsageError
	}

	catalog, err := DecodeCatalogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	part, listing, err := findListing(catalog, c.listing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.clear {
		err = catalog.ClearAlert(part.ID, listing.ID)
	} else {
		err = catalog.SetAlert(part.ID, listing.ID, c.threshold)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeCatalogFile(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.clear {
		fmt.Printf("✅ Cleared alert on %s at %s.\n", part.Name, listing.Vendor)
	} else {
		fmt.Printf("✅ Alert on %s at %s when at or below %s.\n", part.Name, listing.Vendor, c.threshold)
	}
	return subcommands.ExitSuccess
}
