package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hgrv/partlog"
)

type importCmd struct {
	file    string
	vendor  string
	day     string
	items   string
	name    string
	price   string
	url     string
	inStock string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import listings from a vendor JSON price dump" }
func (*importCmd) Usage() string {
	return `import -file <dump.json> -vendor <name> -items <jsonpath> -name <jsonpath> -price <jsonpath> -url <jsonpath> [-stock <jsonpath>]

  Pulls listings out of a vendor's JSON export. The jsonpath expressions
  locate the item array and, relative to one item, its part name, price, URL
  and (optionally) stock flag. Items are matched to parts by name: a part
  already carrying a listing from this vendor gets a price update through
  the normal history rule, otherwise a new listing is appended. Items naming
  no known part are skipped.

Usage Example:
$ plog import -file dump.json -vendor Newegg \
    -items '$.products[*]' -name '$.title' -price '$.price' -url '$.link'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Vendor JSON dump to read (required)")
	f.StringVar(&c.vendor, "vendor", "", "Vendor name for the imported listings (required)")
	f.StringVar(&c.day, "d", "", "Date of the import (defaults to today)")
	f.StringVar(&c.items, "items", "", "jsonpath to the item array (required)")
	f.StringVar(&c.name, "name", "", "jsonpath to an item's part name (required)")
	f.StringVar(&c.price, "price", "", "jsonpath to an item's price (required)")
	f.StringVar(&c.url, "url", "", "jsonpath to an item's listing URL (required)")
	f.StringVar(&c.inStock, "stock", "", "jsonpath to an item's stock flag (optional, defaults to in stock)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	dump, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening dump %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer dump.Close()

	imported, err := partlog.ImportListings(dump, c.vendor, partlog.ImportQuery{
		Items:   c.items,
		Name:    c.name,
		Price:   c.price,
		URL:     c.url,
		InStock: c.inStock,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing from %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	catalog, err := DecodeCatalogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	updated, added, skipped := catalog.MergeListings(on, imported)

	if err := EncodeCatalogFile(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Import done: %d price(s) updated, %d listing(s) added, %d item(s) skipped.\n", updated, added, skipped)
	return subcommands.ExitSuccess
}
