package renderer

import (
	"github.com/hgrv/partlog"
	"github.com/shopspring/decimal"
)

// HistoryRow is one dated price sample of the history table.
type HistoryRow struct {
	On     string
	Price  string
	Change string
}

// HistoryReport holds everything the price history template needs.
type HistoryReport struct {
	Part   string
	Vendor string
	Rows   []HistoryRow
}

// NewHistoryReport derives the history table for one listing of a part.
func NewHistoryReport(part partlog.Part, l partlog.Listing) *HistoryReport {
	report := &HistoryReport{Part: part.Name, Vendor: l.Vendor}
	var prev decimal.Decimal
	for i, sample := range l.History {
		change := "-"
		if i > 0 && !prev.IsZero() {
			diff := sample.Price.Sub(prev)
			switch {
			case diff.IsPositive():
				change = "+" + diff.StringFixed(2)
			case diff.IsNegative():
				change = diff.StringFixed(2)
			default:
				change = "="
			}
		}
		report.Rows = append(report.Rows, HistoryRow{
			On:     sample.On.String(),
			Price:  partlog.P(sample.Price, partlog.DefaultCurrency).String(),
			Change: change,
		})
		prev = sample.Price
	}
	return report
}

// HistoryMarkdown renders the price history table to a markdown string.
func HistoryMarkdown(report *HistoryReport) string {
	return renderTemplate("history", "history.md", nil, report)
}
