package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hgrv/partlog"
	"github.com/hgrv/partlog/renderer"
)

type listCmd struct {
	category string
	sort     string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the catalog with best prices and total cost" }
func (*listCmd) Usage() string {
	return `list [-category <category>] [-sort name|price|availability]

  Displays every tracked part with its best price (minimum over its
  listings), availability, and last-checked date, plus the total build cost
  (the sum of best prices).
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Only show parts of this category")
	f.StringVar(&c.sort, "sort", "", "Sort order: name, price, or availability")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := DecodeCatalogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	parts := catalog.Parts()
	filter := ""
	if c.category != "" {
		category, err := partlog.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		parts = partlog.FilterByCategory(parts, category)
		filter = category.String()
	}

	switch c.sort {
	case "":
	case "name":
		partlog.SortByName(parts)
	case "price":
		partlog.SortByBestPrice(parts)
	case "availability":
		partlog.SortByAvailability(parts)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown sort order %q\n", c.sort)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.CatalogMarkdown(renderer.NewCatalogReport(parts, filter)))
	return subcommands.ExitSuccess
}
