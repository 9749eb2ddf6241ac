package renderer

import (
	"github.com/hgrv/partlog"
)

// CatalogRow is one part of the catalog table.
type CatalogRow struct {
	ID       string
	Name     string
	Category string
	Best     string
	Stock    string
	Checked  string
	Alert    string
}

// CatalogReport holds everything the catalog table template needs.
type CatalogReport struct {
	Filter string // category filter note, empty when unfiltered
	Rows   []CatalogRow
	Total  string
}

// ListingRow is one vendor listing of the part detail table.
type ListingRow struct {
	ID      string
	Vendor  string
	Price   string
	Stock   string
	Alert   string
	URL     string
	Samples int
}

// PartReport holds everything the part detail template needs.
type PartReport struct {
	Name     string
	Category string
	Best     string
	Stock    string
	Checked  string
	Tags     string
}

// NewCatalogReport derives the catalog table from a part list.
// The part order is kept: filter and sort before calling.
func NewCatalogReport(parts []partlog.Part, filter string) *CatalogReport {
	report := &CatalogReport{
		Filter: filter,
		Total:  partlog.TotalCost(parts).String(),
	}
	for _, p := range parts {
		report.Rows = append(report.Rows, CatalogRow{
			ID:       shortID(p.ID),
			Name:     p.Name,
			Category: p.Category.String(),
			Best:     bestOf(p),
			Stock:    stockOf(p),
			Checked:  p.LastChecked.String(),
			Alert:    alertOf(p),
		})
	}
	return report
}

func bestOf(p partlog.Part) string {
	best, ok := partlog.BestPrice(p)
	if !ok {
		return "-"
	}
	return best.String()
}

func stockOf(p partlog.Part) string {
	if partlog.Available(p) {
		return "yes"
	}
	return "no"
}

func alertOf(p partlog.Part) string {
	for _, l := range p.Listings {
		if partlog.AlertTriggered(l) {
			return "!"
		}
	}
	return ""
}

// shortID keeps the first uuid group, enough to identify user-scale data.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
