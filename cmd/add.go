package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hgrv/partlog"
)

// listingList collects repeated -listing flags of the form
// "vendor|url|price[|in|out]".
type listingList []partlog.Listing

func (l *listingList) String() string {
	var parts []string
	for _, e := range *l {
		parts = append(parts, fmt.Sprintf("%s|%s|%s", e.Vendor, e.URL, e.Price))
	}
	return strings.Join(parts, " ")
}

func (l *listingList) Set(v string) error {
	fields := strings.Split(v, "|")
	if len(fields) < 3 || len(fields) > 4 {
		return fmt.Errorf("want vendor|url|price[|in|out], got %q", v)
	}
	listing := partlog.Listing{
		Vendor:  strings.TrimSpace(fields[0]),
		URL:     strings.TrimSpace(fields[1]),
		Price:   strings.TrimSpace(fields[2]),
		InStock: true,
	}
	if len(fields) == 4 {
		switch strings.TrimSpace(fields[3]) {
		case "in":
			listing.InStock = true
		case "out":
			listing.InStock = false
		default:
			return fmt.Errorf("stock field must be \"in\" or \"out\", got %q", fields[3])
		}
	}
	*l = append(*l, listing)
	return nil
}

type addCmd struct {
	name     string
	category string
	tags     string
	day      string
	listings listingList
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new part with its vendor listings to the catalog" }
func (*addCmd) Usage() string {
	return `add -name <name> -category <category> -listing <vendor|url|price[|in|out]> [-listing ...]

  Adds a new part to the catalog:
  - name: The part's display name (e.g., "RTX 4070"). Required.
  - category: One of cpu, gpu, motherboard, memory, storage, psu, case, cooler, other. Required.
  - listing: One vendor listing, repeatable. Vendor, url and price are all
    required; the trailing field marks initial stock ("in" by default).

  The add is refused, and nothing is created, when a required field is
  missing or a listing URL is not http(s).
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Part display name (required)")
	f.StringVar(&c.category, "category", "", "Part category (required)")
	f.StringVar(&c.tags, "tags", "", "Comma-separated compatibility tags")
	f.StringVar(&c.day, "d", "", "Date of the addition (defaults to today)")
	f.Var(&c.listings, "listing", "Vendor listing as vendor|url|price[|in|out] (repeatable, at least one)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := partlog.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var tags []string
	for _, t := range strings.Split(c.tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	catalog, err := DecodeCatalogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	part, err := catalog.AddPart(on, c.name, category, tags, c.listings...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := EncodeCatalogFile(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully added part %q with %d listing(s).\n", part.Name, len(part.Listings))
	return subcommands.ExitSuccess
}
