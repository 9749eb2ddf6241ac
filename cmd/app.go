// Package cmd implements the CLI application to manage a part catalog.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hgrv/partlog"
	"github.com/hgrv/partlog/date"
	"github.com/hgrv/partlog/renderer"
	"github.com/hgrv/partlog/store"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "catalog")
	c.Register(&rmCmd{}, "catalog")
	c.Register(&listCmd{}, "catalog")
	c.Register(&showCmd{}, "catalog")
	c.Register(&openCmd{}, "catalog")

	c.Register(&priceCmd{}, "pricing")
	c.Register(&stockCmd{}, "pricing")
	c.Register(&alertCmd{}, "pricing")
	c.Register(&historyCmd{}, "pricing")

	c.Register(&saveCmd{}, "builds")
	c.Register(&buildsCmd{}, "builds")
	c.Register(&loadCmd{}, "builds")
	c.Register(&rmBuildCmd{}, "builds")

	c.Register(&exportCmd{}, "interchange")
	c.Register(&importCmd{}, "interchange")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var catalogFile = flag.String("catalog-file", "parts.jsonl", "Path to the catalog file containing tracked parts (JSONL format)")
var buildsDB = flag.String("builds-db", "builds.db", "Path to the saved-builds database file")
var plainOutput = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")

// DecodeCatalogFile loads the catalog from the app catalog file.
func DecodeCatalogFile() (*partlog.Catalog, error) {
	f, err := os.Open(*catalogFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, catalog file does not exist, starting with an empty catalog instead")
		return partlog.NewCatalog(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parts, err := partlog.DecodeCatalog(f)
	if err != nil {
		return nil, err
	}
	return partlog.NewCatalog(parts...), nil
}

// EncodeCatalogFile writes the catalog back into the app catalog file.
func EncodeCatalogFile(c *partlog.Catalog) error {
	f, err := os.Create(*catalogFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return partlog.EncodeCatalog(f, c.Parts())
}

// OpenBuilds opens the saved-builds database. Callers must Close it.
func OpenBuilds() (*store.DB, error) {
	return store.Open(*buildsDB)
}

// printMarkdown renders a markdown report for the terminal, or prints it
// verbatim with the -plain flag.
func printMarkdown(md string) {
	if *plainOutput {
		fmt.Print(md)
		return
	}
	fmt.Print(renderer.Pretty(md))
}

// parseDay parses a -d flag value, defaulting to today when empty.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// findPart resolves a part id, accepting any unique id prefix so that the
// short ids printed by `list` work on the command line.
func findPart(c *partlog.Catalog, id string) (partlog.Part, error) {
	if id == "" {
		return partlog.Part{}, fmt.Errorf("part id is required")
	}
	var matches []partlog.Part
	for _, p := range c.Parts() {
		if strings.HasPrefix(p.ID, id) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return partlog.Part{}, fmt.Errorf("no part with id %q", id)
	case 1:
		return matches[0], nil
	default:
		return partlog.Part{}, fmt.Errorf("part id %q is ambiguous", id)
	}
}

// findListing resolves a listing id prefix to its owning part and listing.
func findListing(c *partlog.Catalog, id string) (partlog.Part, partlog.Listing, error) {
	if id == "" {
		return partlog.Part{}, partlog.Listing{}, fmt.Errorf("listing id is required")
	}
	var parts []partlog.Part
	var listings []partlog.Listing
	for _, p := range c.Parts() {
		for _, l := range p.Listings {
			if strings.HasPrefix(l.ID, id) {
				parts = append(parts, p)
				listings = append(listings, l)
			}
		}
	}
	switch len(listings) {
	case 0:
		return partlog.Part{}, partlog.Listing{}, fmt.Errorf("no listing with id %q", id)
	case 1:
		return parts[0], listings[0], nil
	default:
		return partlog.Part{}, partlog.Listing{}, fmt.Errorf("listing id %q is ambiguous", id)
	}
}
