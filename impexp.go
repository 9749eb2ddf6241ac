package partlog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/uuid"
	"github.com/hgrv/partlog/date"
	"github.com/shopspring/decimal"
)

// this file contains functions to import listings from third-party vendor
// price dumps. Dumps come in whatever JSON shape a vendor exports, so the
// caller points at the interesting fields with jsonpath expressions.

// ImportQuery names the jsonpath expressions that locate listings inside a
// vendor price dump.
type ImportQuery struct {
	Items   string // path to the item array, e.g. "$.products[*]"
	Name    string // per item, e.g. "$.title"
	Price   string // per item; a number or a currency-prefixed string
	URL     string // per item
	InStock string // per item, optional; items default to in stock
}

// ImportedListing pairs a part name found in a dump with the listing built
// from that item.
type ImportedListing struct {
	PartName string
	Listing  Listing
}

// ImportListings extracts vendor listings from the JSON dump read from 'r'.
func ImportListings(r io.Reader, vendor string, q ImportQuery) ([]ImportedListing, error) {
	if vendor == "" {
		return nil, fmt.Errorf("vendor is required")
	}
	if q.Items == "" || q.Name == "" || q.Price == "" || q.URL == "" {
		return nil, fmt.Errorf("items, name, price and url queries are required")
	}

	var jobj any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse vendor dump: %w", err)
	}

	jitems, err := jsonpath.Get(q.Items, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating items query %q: %w", q.Items, err)
	}
	items, ok := jitems.([]any)
	if !ok {
		// a single object is treated as a one-item list.
		items = []any{jitems}
	}

	var out []ImportedListing
	for i, item := range items {
		name, err := queryString(q.Name, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		price, err := queryPrice(q.Price, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		rawURL, err := queryString(q.URL, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		u, err := SanitizeURL(rawURL)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		inStock := true
		if q.InStock != "" {
			inStock, err = queryBool(q.InStock, item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		out = append(out, ImportedListing{
			PartName: name,
			Listing: Listing{
				Vendor:  vendor,
				URL:     u,
				Price:   price,
				InStock: inStock,
			},
		})
	}
	return out, nil
}

// unwrap keeps the first answer when jsonpath returns a list of one:
// jsonpath is never clear about whether it returns a list or a single value.
func unwrap(v any) any {
	if jlist, ok := v.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return v
}

func queryString(path string, item any) (string, error) {
	jval, err := jsonpath.Get(path, item)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	s, ok := unwrap(jval).(string)
	if !ok || s == "" {
		return "", fmt.Errorf("query %q did not yield a string: %v", path, jval)
	}
	return s, nil
}

// queryPrice accepts a JSON number (taken as the default currency) or a
// currency-prefixed string, and returns the textual price form.
func queryPrice(path string, item any) (string, error) {
	jval, err := jsonpath.Get(path, item)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	switch v := unwrap(jval).(type) {
	case float64:
		return P(decimal.NewFromFloat(v), DefaultCurrency).String(), nil
	case string:
		p, err := ParsePrice(v)
		if err != nil {
			return "", fmt.Errorf("query %q: %w", path, err)
		}
		return p.String(), nil
	default:
		return "", fmt.Errorf("query %q did not yield a price: %v", path, jval)
	}
}

func queryBool(path string, item any) (bool, error) {
	jval, err := jsonpath.Get(path, item)
	if err != nil {
		return false, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	switch v := unwrap(jval).(type) {
	case bool:
		return v, nil
	case string:
		return strings.EqualFold(v, "true") || strings.EqualFold(v, "in stock"), nil
	default:
		return false, fmt.Errorf("query %q did not yield a stock flag: %v", path, jval)
	}
}

// MergeListings folds imported listings into the catalog by part name
// (case-insensitive). A part that already has a listing from the same vendor
// gets a price update through the usual history rule; otherwise the listing
// is appended. Items naming no known part are skipped.
func (c *Catalog) MergeListings(on date.Date, imported []ImportedListing) (updated, added, skipped int) {
	next := CloneParts(c.parts)
	for _, imp := range imported {
		i := partIndexByName(next, imp.PartName)
		if i < 0 {
			skipped++
			continue
		}
		p := &next[i]
		if j := listingIndexByVendor(p.Listings, imp.Listing.Vendor); j >= 0 {
			l := &p.Listings[j]
			l.Price = imp.Listing.Price
			l.URL = imp.Listing.URL
			l.InStock = imp.Listing.InStock
			l.recordPrice(on, l.Price)
			updated++
		} else {
			l := imp.Listing.Clone()
			l.ID = uuid.New().String()
			l.recordPrice(on, l.Price)
			p.Listings = append(p.Listings, l)
			added++
		}
		p.LastChecked = on
	}
	c.parts = next
	return updated, added, skipped
}

func partIndexByName(parts []Part, name string) int {
	for i, p := range parts {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}

func listingIndexByVendor(listings []Listing, vendor string) int {
	for i, l := range listings {
		if strings.EqualFold(l.Vendor, vendor) {
			return i
		}
	}
	return -1
}
