package partlog

import (
	"reflect"
	"strings"
	"testing"
)

const vendorDump = `{
  "products": [
    {"title": "RTX 4070", "pricing": {"current": 439.99}, "link": "https://microcenter.example/4070", "stock": "in stock"},
    {"title": "Ryzen 7600", "pricing": {"current": "$219.00"}, "link": "https://microcenter.example/7600", "stock": "backorder"}
  ]
}`

var dumpQuery = ImportQuery{
	Items:   "$.products[*]",
	Name:    "$.title",
	Price:   "$.pricing.current",
	URL:     "$.link",
	InStock: "$.stock",
}

func TestImportListings(t *testing.T) {
	got, err := ImportListings(strings.NewReader(vendorDump), "MicroCenter", dumpQuery)
	if err != nil {
		t.Fatalf("ImportListings: %v", err)
	}
	want := []ImportedListing{
		{PartName: "RTX 4070", Listing: Listing{Vendor: "MicroCenter", URL: "https://microcenter.example/4070", Price: "$439.99", InStock: true}},
		{PartName: "Ryzen 7600", Listing: Listing{Vendor: "MicroCenter", URL: "https://microcenter.example/7600", Price: "$219.00", InStock: false}},
	}
	if len(got) != len(want) {
		t.Fatalf("imported %d listings, want %d", len(got), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("listing %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestImportListings_defaultsToInStock(t *testing.T) {
	q := dumpQuery
	q.InStock = ""
	got, err := ImportListings(strings.NewReader(vendorDump), "MicroCenter", q)
	if err != nil {
		t.Fatalf("ImportListings: %v", err)
	}
	for _, imp := range got {
		if !imp.Listing.InStock {
			t.Errorf("%s: items with no stock query default to in stock", imp.PartName)
		}
	}
}

func TestImportListings_errors(t *testing.T) {
	if _, err := ImportListings(strings.NewReader(vendorDump), "", dumpQuery); err == nil {
		t.Errorf("an empty vendor should be rejected")
	}
	q := dumpQuery
	q.Price = ""
	if _, err := ImportListings(strings.NewReader(vendorDump), "MicroCenter", q); err == nil {
		t.Errorf("a missing price query should be rejected")
	}
	if _, err := ImportListings(strings.NewReader("not json"), "MicroCenter", dumpQuery); err == nil {
		t.Errorf("a malformed dump should be rejected")
	}
}

func TestCatalog_MergeListings(t *testing.T) {
	c, p := newTestCatalog(t)
	imported := []ImportedListing{
		// Same vendor, case-insensitive name match: a price update.
		{PartName: "rtx 4070", Listing: Listing{Vendor: "Newegg", URL: "https://newegg.example/4070-v2", Price: "$439.99", InStock: false}},
		// New vendor on a known part: appended.
		{PartName: "RTX 4070", Listing: Listing{Vendor: "MicroCenter", URL: "https://microcenter.example/4070", Price: "$444.99", InStock: true}},
		// Unknown part: skipped.
		{PartName: "Ryzen 7600", Listing: Listing{Vendor: "MicroCenter", URL: "https://microcenter.example/7600", Price: "$219.00", InStock: true}},
	}

	updated, added, skipped := c.MergeListings(day2, imported)
	if updated != 1 || added != 1 || skipped != 1 {
		t.Fatalf("merge counts = %d/%d/%d, want 1 updated, 1 added, 1 skipped", updated, added, skipped)
	}

	got, _ := c.Part(p.ID)
	if len(got.Listings) != 3 {
		t.Fatalf("part has %d listings, want 3", len(got.Listings))
	}
	newegg := got.Listings[0]
	if newegg.Price != "$439.99" || newegg.URL != "https://newegg.example/4070-v2" || newegg.InStock {
		t.Errorf("updated listing = %+v", newegg)
	}
	if len(newegg.History) != 2 {
		t.Errorf("updated listing history length = %d, want the new sample appended", len(newegg.History))
	}
	micro := got.Listings[2]
	if micro.Vendor != "MicroCenter" || micro.ID == "" || len(micro.History) != 1 {
		t.Errorf("appended listing = %+v", micro)
	}
	if got.LastChecked != day2 {
		t.Errorf("last checked = %v, want %v", got.LastChecked, day2)
	}
}
