package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type priceCmd struct {
	listing string
	price   string
	day     string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "update a listing's price" }
func (*priceCmd) Usage() string {
	return `price -listing <id> -price <price> [-d <date>]

  Sets a listing's current price (e.g., "$429.99") and refreshes the owning
  part's last-checked date. A parseable price is also recorded as a dated
  sample in the listing's history, unless an identical sample for the same
  date is already the most recent one.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.listing, "listing", "", "Listing id, or any unique prefix (required)")
	f.StringVar(&c.price, "price", "", "New price, currency-prefixed (required)")
	f.StringVar(&c.day, "d", "", "Date of the update (defaults to today)")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := catalog.UpdatePrice(on, part.ID, listing.ID, c.price); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeCatalogFile(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully set %s price at %s to %s.\n", part.Name, listing.Vendor, c.price)
	return subcommands.ExitSuccess
}
