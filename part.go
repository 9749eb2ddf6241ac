package partlog

import (
	"encoding/json"
	"slices"

	"github.com/hgrv/partlog/date"
	"github.com/shopspring/decimal"
)

// PricePoint is one dated price sample in a listing's history.
type PricePoint struct {
	On    date.Date       `json:"on"`
	Price decimal.Decimal `json:"price"`
}

// Listing is one vendor's record for a part: URL, current price,
// availability, and the dated history of past prices.
type Listing struct {
	ID      string
	Vendor  string
	URL     string
	Price   string // textual, currency-prefixed, e.g. "$449.99"
	InStock bool
	Alert   string // optional price-alert threshold, empty when unset
	History []PricePoint
}

// Part is a tracked PC component with one or more vendor listings.
type Part struct {
	ID          string
	Name        string
	Category    Category
	Listings    []Listing // invariant: at least one
	LastChecked date.Date
	Tags        []string
}

// Clone returns a deep copy of the listing, history included.
func (l Listing) Clone() Listing {
	l.History = slices.Clone(l.History)
	return l
}

// Clone returns a deep copy of the part: listings, histories and tags are
// fully independent from the original.
func (p Part) Clone() Part {
	listings := make([]Listing, len(p.Listings))
	for i, l := range p.Listings {
		listings[i] = l.Clone()
	}
	p.Listings = listings
	p.Tags = slices.Clone(p.Tags)
	return p
}

// CloneParts returns a deep copy of a whole part list.
func CloneParts(parts []Part) []Part {
	out := make([]Part, len(parts))
	for i, p := range parts {
		out[i] = p.Clone()
	}
	return out
}

// recordPrice appends a dated sample for a newly set price.
//
// An unparseable price leaves the history untouched. A sample identical in
// both date and amount to the most recent entry is skipped, so repeating the
// same update in the same day appends nothing. The history is otherwise
// strictly append-only.
func (l *Listing) recordPrice(on date.Date, price string) {
	p, err := ParsePrice(price)
	if err != nil {
		return
	}
	if n := len(l.History); n > 0 {
		last := l.History[n-1]
		if last.On == on && last.Price.Equal(p.Amount()) {
			return
		}
	}
	l.History = append(l.History, PricePoint{On: on, Price: p.Amount()})
}

func (l Listing) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", l.ID)
	w.Append("vendor", l.Vendor)
	w.Append("url", l.URL)
	w.Append("price", l.Price)
	w.Append("inStock", l.InStock)
	w.Optional("alert", l.Alert)
	w.Optional("history", l.History)
	return w.MarshalJSON()
}

func (l *Listing) UnmarshalJSON(data []byte) error {
	// a dedicated local struct keeps the wire format explicit.
	type jlisting struct {
		ID      string       `json:"id"`
		Vendor  string       `json:"vendor"`
		URL     string       `json:"url"`
		Price   string       `json:"price"`
		InStock bool         `json:"inStock"`
		Alert   string       `json:"alert"`
		History []PricePoint `json:"history"`
	}
	var jl jlisting
	if err := json.Unmarshal(data, &jl); err != nil {
		return err
	}
	*l = Listing(jl)
	return nil
}

func (p Part) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.Append("category", p.Category)
	w.Append("checked", p.LastChecked)
	w.Optional("tags", p.Tags)
	w.Append("listings", p.Listings)
	return w.MarshalJSON()
}

func (p *Part) UnmarshalJSON(data []byte) error {
	type jpart struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Category    Category  `json:"category"`
		LastChecked date.Date `json:"checked"`
		Tags        []string  `json:"tags"`
		Listings    []Listing `json:"listings"`
	}
	var jp jpart
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	*p = Part{
		ID:          jp.ID,
		Name:        jp.Name,
		Category:    jp.Category,
		Listings:    jp.Listings,
		LastChecked: jp.LastChecked,
		Tags:        jp.Tags,
	}
	return nil
}
