package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type stockCmd struct {
	listing string
	day     string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "toggle a listing between in stock and out of stock" }
func (*stockCmd) Usage() string {
	return `stock -listing <id> [-d <date>]

  Flips a listing's in-stock flag and refreshes the owning part's
  last-checked date.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.listing, "listing", "", "Listing id, or any unique prefix (required)")
	f.StringVar(&c.day, "d", "", "Date of the check (defaults to today)")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	if err := catalog.ToggleStock(on, part.ID, listing.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeCatalogFile(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	state := "in stock"
	if listing.InStock {
		state = "out of stock" // it was in stock, the toggle flipped it
	}
	fmt.Printf("✅ %s at %s is now %s.\n", part.Name, listing.Vendor, state)
	return subcommands.ExitSuccess
}
