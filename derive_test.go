package partlog

import "testing"

func part(name string, category Category, listings ...Listing) Part {
	return Part{ID: name, Name: name, Category: category, Listings: listings}
}

func TestBestPrice(t *testing.T) {
	// One vendor in stock at $449.99, one out of stock at $459.99: the best
	// price ignores stock and takes the minimum.
	p := part("RTX 4070", GPU,
		Listing{Vendor: "Newegg", Price: "$449.99", InStock: true},
		Listing{Vendor: "BestBuy", Price: "$459.99", InStock: false},
	)
	best, ok := BestPrice(p)
	if !ok {
		t.Fatalf("no best price found")
	}
	if got := best.String(); got != "$449.99" {
		t.Errorf("best price = %s, want $449.99", got)
	}

	// An unparseable price is skipped, not treated as zero.
	p = part("x", CPU,
		Listing{Vendor: "A", Price: "call for price"},
		Listing{Vendor: "B", Price: "$99.00"},
	)
	best, ok = BestPrice(p)
	if !ok || best.String() != "$99.00" {
		t.Errorf("best price = %s (ok=%v), want $99.00", best, ok)
	}

	if _, ok := BestPrice(part("x", CPU, Listing{Vendor: "A", Price: "tbd"})); ok {
		t.Errorf("a part with no parseable price has no best price")
	}

	// The first parseable listing fixes the currency; a cheaper listing in
	// another currency is not "best", it is ignored.
	p = part("x", CPU,
		Listing{Vendor: "A", Price: "$449.99"},
		Listing{Vendor: "B", Price: "€5.00"},
	)
	best, ok = BestPrice(p)
	if !ok || best.String() != "$449.99" {
		t.Errorf("best price = %s (ok=%v), want $449.99", best, ok)
	}
}

func TestAvailable(t *testing.T) {
	p := part("RTX 4070", GPU,
		Listing{Vendor: "Newegg", Price: "$449.99", InStock: true},
		Listing{Vendor: "BestBuy", Price: "$459.99", InStock: false},
	)
	if !Available(p) {
		t.Errorf("part with one in-stock listing should be available")
	}
	p.Listings[0].InStock = false
	if Available(p) {
		t.Errorf("part with no in-stock listing should not be available")
	}
}

func TestTotalCost(t *testing.T) {
	parts := []Part{
		part("RTX 4070", GPU,
			Listing{Vendor: "Newegg", Price: "$449.99", InStock: true},
			Listing{Vendor: "BestBuy", Price: "$459.99"},
		),
		part("Ryzen 7600", CPU, Listing{Vendor: "Amazon", Price: "$229.00", InStock: true}),
		part("Mystery", Other, Listing{Vendor: "A", Price: "tbd"}),
	}
	if got := TotalCost(parts).String(); got != "$678.99" {
		t.Errorf("total = %s, want $678.99", got)
	}
	if got := TotalCost(nil); !got.IsZero() {
		t.Errorf("total of no parts = %s, want zero", got)
	}
}

func TestTotalCost_mixedCurrencies(t *testing.T) {
	// Both listings are valid catalog entries. The total must stay a sum of
	// one currency, never abort the whole report.
	parts := []Part{
		part("RTX 4070", GPU, Listing{Vendor: "Newegg", Price: "$449.99", InStock: true}),
		part("Ryzen 7600", CPU, Listing{Vendor: "Mindfactory", Price: "€229.00", InStock: true}),
	}
	if got := TotalCost(parts).String(); got != "$449.99" {
		t.Errorf("total = %s, want $449.99 with the euro part left out", got)
	}
}

func TestFilterByCategory(t *testing.T) {
	parts := []Part{
		part("a", CPU, Listing{Vendor: "A", Price: "$1"}),
		part("b", GPU, Listing{Vendor: "A", Price: "$1"}),
		part("c", CPU, Listing{Vendor: "A", Price: "$1"}),
	}
	got := FilterByCategory(parts, CPU)
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
		t.Errorf("filter returned %v, want [a c] in order", names(got))
	}
	if n := FilterByCategory(parts, PSU); len(n) != 0 {
		t.Errorf("filter on an absent category returned %v", names(n))
	}
}

func TestSorts(t *testing.T) {
	build := func() []Part {
		return []Part{
			part("zeta", CPU, Listing{Vendor: "A", Price: "$50.00", InStock: false}),
			part("alpha", GPU, Listing{Vendor: "A", Price: "tbd", InStock: true}),
			part("mid", PSU, Listing{Vendor: "A", Price: "$20.00", InStock: true}),
		}
	}

	parts := build()
	SortByName(parts)
	if got, want := names(parts), "[alpha mid zeta]"; got != want {
		t.Errorf("by name: %s, want %s", got, want)
	}

	parts = build()
	SortByBestPrice(parts)
	// Unparseable prices sort last.
	if got, want := names(parts), "[mid zeta alpha]"; got != want {
		t.Errorf("by price: %s, want %s", got, want)
	}

	parts = build()
	SortByAvailability(parts)
	if Available(parts[2]) || !Available(parts[0]) {
		t.Errorf("by availability: %s, want in-stock parts first", names(parts))
	}
}

func TestAlertTriggered(t *testing.T) {
	testCases := []struct {
		name    string
		listing Listing
		want    bool
	}{
		{"below threshold", Listing{Price: "$449.99", Alert: "$460.00"}, true},
		{"at threshold", Listing{Price: "$460.00", Alert: "$460.00"}, true},
		{"above threshold", Listing{Price: "$469.99", Alert: "$460.00"}, false},
		{"no threshold", Listing{Price: "$449.99"}, false},
		{"unparseable price", Listing{Price: "tbd", Alert: "$460.00"}, false},
		{"unparseable threshold", Listing{Price: "$449.99", Alert: "cheap"}, false},
		{"threshold in another currency", Listing{Price: "€449.99", Alert: "$460.00"}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AlertTriggered(tc.listing); got != tc.want {
				t.Errorf("AlertTriggered = %v, want %v", got, tc.want)
			}
		})
	}
}

func names(parts []Part) string {
	s := "["
	for i, p := range parts {
		if i > 0 {
			s += " "
		}
		s += p.Name
	}
	return s + "]"
}
