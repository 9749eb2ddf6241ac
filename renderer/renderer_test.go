package renderer

import (
	"strings"
	"testing"

	"github.com/hgrv/partlog"
	"github.com/hgrv/partlog/date"
	"github.com/shopspring/decimal"
)

func testParts() []partlog.Part {
	return []partlog.Part{
		{
			ID: "11112222-aaaa-bbbb-cccc-ddddeeeeffff", Name: "RTX 4070", Category: partlog.GPU,
			LastChecked: date.New(2024, 1, 2),
			Listings: []partlog.Listing{
				{ID: "l1", Vendor: "Newegg", URL: "https://newegg.example/4070", Price: "$449.99", InStock: true},
				{ID: "l2", Vendor: "BestBuy", URL: "https://bestbuy.example/4070", Price: "$459.99"},
			},
		},
		{
			ID: "33334444-aaaa-bbbb-cccc-ddddeeeeffff", Name: "Ryzen 7600", Category: partlog.CPU,
			LastChecked: date.New(2024, 1, 1),
			Listings: []partlog.Listing{
				{ID: "l3", Vendor: "Amazon", URL: "https://amazon.example/7600", Price: "$229.00", InStock: true},
			},
		},
	}
}

func TestCatalogMarkdown(t *testing.T) {
	md := CatalogMarkdown(NewCatalogReport(testParts(), ""))

	for _, want := range []string{"RTX 4070", "Ryzen 7600", "$449.99", "$229.00", "$678.99", "11112222"} {
		if !strings.Contains(md, want) {
			t.Errorf("catalog markdown misses %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "11112222-aaaa") {
		t.Errorf("catalog markdown should show shortened ids:\n%s", md)
	}

	md = CatalogMarkdown(NewCatalogReport(nil, ""))
	if !strings.Contains(md, "No parts tracked yet.") {
		t.Errorf("empty catalog markdown = %q", md)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	p := testParts()[0]
	l := p.Listings[0]
	l.History = []partlog.PricePoint{
		{On: date.New(2024, 1, 1), Price: decimal.RequireFromString("449.99")},
		{On: date.New(2024, 1, 2), Price: decimal.RequireFromString("429.99")},
	}

	md := HistoryMarkdown(NewHistoryReport(p, l))
	for _, want := range []string{"RTX 4070", "Newegg", "2024-01-01", "$449.99", "-20.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("history markdown misses %q:\n%s", want, md)
		}
	}
}

func TestBuildsMarkdown(t *testing.T) {
	if got := BuildsMarkdown(NewBuildsReport(nil)); !strings.Contains(got, "No saved builds.") {
		t.Errorf("empty builds markdown = %q", got)
	}

	builds := []partlog.SavedBuild{{ID: "b1", Name: "budget gamer", On: date.New(2024, 1, 2), Parts: testParts()}}
	md := BuildsMarkdown(NewBuildsReport(builds))
	for _, want := range []string{"budget gamer", "2024-01-02", "$678.99"} {
		if !strings.Contains(md, want) {
			t.Errorf("builds markdown misses %q:\n%s", want, md)
		}
	}
}
