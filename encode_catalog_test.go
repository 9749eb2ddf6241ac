package partlog

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCatalogRoundTrip(t *testing.T) {
	parts := []Part{
		{
			ID:          "p1",
			Name:        "RTX 4070",
			Category:    GPU,
			LastChecked: day2,
			Tags:        []string{"pcie4"},
			Listings: []Listing{
				{
					ID: "l1", Vendor: "Newegg", URL: "https://newegg.example/4070",
					Price: "$429.99", InStock: true, Alert: "$400.00",
					History: []PricePoint{
						{On: day1, Price: decimal.RequireFromString("449.99")},
						{On: day2, Price: decimal.RequireFromString("429.99")},
					},
				},
				{ID: "l2", Vendor: "BestBuy", URL: "https://bestbuy.example/4070", Price: "$459.99"},
			},
		},
		{
			ID: "p2", Name: "Ryzen 7600", Category: CPU, LastChecked: day1,
			Listings: []Listing{{ID: "l3", Vendor: "Amazon", URL: "https://amazon.example/7600", Price: "$229.00", InStock: true}},
		},
	}

	var buf bytes.Buffer
	if err := EncodeCatalog(&buf, parts); err != nil {
		t.Fatalf("EncodeCatalog: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != len(parts) {
		t.Errorf("encoded %d lines, want one per part (%d)", got, len(parts))
	}

	got, err := DecodeCatalog(&buf)
	if err != nil {
		t.Fatalf("DecodeCatalog: %v", err)
	}
	if !reflect.DeepEqual(got, parts) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, parts)
	}
}

func TestDecodeCatalog_errors(t *testing.T) {
	// A malformed line aborts the decode and is quoted in the error.
	_, err := DecodeCatalog(strings.NewReader("not json\n"))
	if err == nil || !strings.Contains(err.Error(), `"not json"`) {
		t.Errorf("malformed line: err = %v, want the line quoted", err)
	}

	line := `{"id":"p1","name":"x","category":"cpu","checked":"2024-01-01","listings":[{"id":"l1","vendor":"A","url":"https://a.example","price":"$1","inStock":true}]}`
	_, err = DecodeCatalog(strings.NewReader(line + "\n" + line + "\n"))
	if err == nil || !strings.Contains(err.Error(), "already defined") {
		t.Errorf("duplicate id: err = %v", err)
	}
}

func TestDecodeCatalog_skipsBlankLines(t *testing.T) {
	line := `{"id":"p1","name":"x","category":"cpu","checked":"2024-01-01","listings":[{"id":"l1","vendor":"A","url":"https://a.example","price":"$1","inStock":true}]}`
	parts, err := DecodeCatalog(strings.NewReader("\n" + line + "\n\n"))
	if err != nil {
		t.Fatalf("DecodeCatalog: %v", err)
	}
	if len(parts) != 1 || parts[0].ID != "p1" {
		t.Errorf("decoded %+v, want the single part p1", parts)
	}
}
