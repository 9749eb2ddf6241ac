package partlog

import (
	"sort"
	"strings"
)

// This file contains the stateless derivation functions. They are pure,
// recomputed from scratch on every call, and never cache anything: callers
// hold the catalog snapshot and invoke them per render.

// BestPrice returns the minimum of a part's parseable listing prices.
// It returns false when no listing price parses. Comparing amounts across
// currencies is meaningless, so the first parseable listing fixes the
// currency and listings priced in another one are ignored.
func BestPrice(p Part) (Price, bool) {
	var best Price
	found := false
	for _, l := range p.Listings {
		price, err := ParsePrice(l.Price)
		if err != nil || !price.SameCurrency(best) {
			continue
		}
		if !found || price.LessThan(best) {
			best = price
			found = true
		}
	}
	return best, found
}

// Available reports whether any of the part's listings is in stock.
func Available(p Part) bool {
	for _, l := range p.Listings {
		if l.InStock {
			return true
		}
	}
	return false
}

// TotalCost sums the best prices across all parts. Parts without a
// parseable price, or whose best price is in a different currency than the
// running total, contribute nothing.
func TotalCost(parts []Part) Price {
	var total Price
	for _, p := range parts {
		best, ok := BestPrice(p)
		if !ok || !best.SameCurrency(total) {
			continue
		}
		total = total.Add(best)
	}
	return total
}

// AlertTriggered reports whether a listing's current price is at or below
// its alert threshold. A listing without a threshold, with an unparseable
// price or threshold, or with a threshold in another currency than the
// price, never triggers.
func AlertTriggered(l Listing) bool {
	if l.Alert == "" {
		return false
	}
	threshold, err := ParsePrice(l.Alert)
	if err != nil {
		return false
	}
	current, err := ParsePrice(l.Price)
	if err != nil || !current.SameCurrency(threshold) {
		return false
	}
	return current.LessThanOrEqual(threshold)
}

// FilterByCategory returns the parts of one category, order preserved.
func FilterByCategory(parts []Part, category Category) []Part {
	out := make([]Part, 0, len(parts))
	for _, p := range parts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SortByName sorts parts lexicographically by name, in place.
func SortByName(parts []Part) {
	sort.Slice(parts, func(i, j int) bool {
		return strings.Compare(parts[i].Name, parts[j].Name) < 0
	})
}

// SortByBestPrice sorts parts by ascending best price, in place. Parts
// without a parseable price sort last. Amounts are compared numerically,
// across currencies too, so a mixed catalog orders by bare amount.
func SortByBestPrice(parts []Part) {
	sort.Slice(parts, func(i, j int) bool {
		bi, oki := BestPrice(parts[i])
		bj, okj := BestPrice(parts[j])
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		return bi.LessThan(bj)
	})
}

// SortByAvailability sorts available parts first, in place. The comparison
// is a plain two-way test, so the sort is not stable within each group.
func SortByAvailability(parts []Part) {
	sort.Slice(parts, func(i, j int) bool {
		return Available(parts[i]) && !Available(parts[j])
	})
}
