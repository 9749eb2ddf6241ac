package renderer

import (
	"strings"

	"github.com/hgrv/partlog"
)

// CatalogMarkdown renders the catalog table to a markdown string.
func CatalogMarkdown(report *CatalogReport) string {
	return renderTemplate("catalog", "catalog.md", nil, report)
}

// PartMarkdown renders one part with its vendor listings to a markdown string.
func PartMarkdown(p partlog.Part) string {
	data := struct {
		Part     PartReport
		Listings []ListingRow
	}{
		Part: PartReport{
			Name:     p.Name,
			Category: p.Category.String(),
			Best:     bestOf(p),
			Stock:    stockOf(p),
			Checked:  p.LastChecked.String(),
			Tags:     strings.Join(p.Tags, ", "),
		},
	}
	for _, l := range p.Listings {
		stock := "out of stock"
		if l.InStock {
			stock = "in stock"
		}
		data.Listings = append(data.Listings, ListingRow{
			ID:      l.ID,
			Vendor:  l.Vendor,
			Price:   l.Price,
			Stock:   stock,
			Alert:   l.Alert,
			URL:     l.URL,
			Samples: len(l.History),
		})
	}
	return renderTemplate("part", "part.md", nil, data)
}
