package partlog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hgrv/partlog/date"
)

// Catalog owns the ordered list of tracked parts.
//
// Every mutating operation replaces the part list wholesale: the previous
// slice is never modified in place, so part values handed out earlier stay
// valid. A failed operation leaves the catalog untouched.
type Catalog struct {
	parts []Part
}

// NewCatalog creates a catalog owning the given parts.
func NewCatalog(parts ...Part) *Catalog {
	return &Catalog{parts: parts}
}

// Len returns the number of parts.
func (c *Catalog) Len() int { return len(c.parts) }

// Parts returns a copy of the part list in insertion order.
func (c *Catalog) Parts() []Part { return CloneParts(c.parts) }

// Part returns the part with the given id.
func (c *Catalog) Part(id string) (Part, bool) {
	for _, p := range c.parts {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Part{}, false
}

// Listing resolves a listing id to its owning part and the listing itself.
func (c *Catalog) Listing(listingID string) (Part, Listing, bool) {
	for _, p := range c.parts {
		for _, l := range p.Listings {
			if l.ID == listingID {
				return p.Clone(), l.Clone(), true
			}
		}
	}
	return Part{}, Listing{}, false
}

// Replace substitutes the whole part list, e.g. when loading a saved build.
func (c *Catalog) Replace(parts []Part) {
	c.parts = CloneParts(parts)
}

// AddPart validates and appends a new part built from the given listings.
// Fresh ids are assigned to the part and its listings, the last-checked date
// is set to 'on', and each listing's history is seeded with its initial
// price sample. On a validation failure no part is created.
func (c *Catalog) AddPart(on date.Date, name string, category Category, tags []string, listings ...Listing) (Part, error) {
	p := Part{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Category:    category,
		Listings:    listings,
		LastChecked: on,
		Tags:        tags,
	}
	if err := validatePart(&p); err != nil {
		return Part{}, err
	}
	for i := range p.Listings {
		p.Listings[i].ID = uuid.New().String()
		p.Listings[i].History = nil
		p.Listings[i].recordPrice(on, p.Listings[i].Price)
	}

	next := append(CloneParts(c.parts), p.Clone())
	c.parts = next
	return p, nil
}

// DeletePart removes the part with the given id.
func (c *Catalog) DeletePart(id string) error {
	next := make([]Part, 0, len(c.parts))
	found := false
	for _, p := range c.parts {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p.Clone())
	}
	if !found {
		return fmt.Errorf("unknown part id %q", id)
	}
	c.parts = next
	return nil
}

// ToggleStock flips a listing's in-stock flag and refreshes the owning
// part's last-checked date.
func (c *Catalog) ToggleStock(on date.Date, partID, listingID string) error {
	return c.updateListing(partID, listingID, func(p *Part, l *Listing) error {
		l.InStock = !l.InStock
		p.LastChecked = on
		return nil
	})
}

// UpdatePrice sets a listing's textual price, refreshes the owning part's
// last-checked date, and records the parsed sample in the price history.
// An unparseable price still updates the price field, it only skips the
// history sample.
func (c *Catalog) UpdatePrice(on date.Date, partID, listingID, price string) error {
	if strings.TrimSpace(price) == "" {
		return fmt.Errorf("price is required")
	}
	return c.updateListing(partID, listingID, func(p *Part, l *Listing) error {
		l.Price = price
		l.recordPrice(on, price)
		p.LastChecked = on
		return nil
	})
}

// SetAlert sets a listing's price-alert threshold.
func (c *Catalog) SetAlert(partID, listingID, threshold string) error {
	if _, err := ParsePrice(threshold); err != nil {
		return fmt.Errorf("invalid alert threshold: %w", err)
	}
	return c.updateListing(partID, listingID, func(_ *Part, l *Listing) error {
		l.Alert = threshold
		return nil
	})
}

// ClearAlert removes a listing's price-alert threshold.
func (c *Catalog) ClearAlert(partID, listingID string) error {
	return c.updateListing(partID, listingID, func(_ *Part, l *Listing) error {
		l.Alert = ""
		return nil
	})
}

// updateListing applies 'apply' to one listing on a deep copy of the list,
// then swaps the copy in. The copy is discarded on error.
func (c *Catalog) updateListing(partID, listingID string, apply func(*Part, *Listing) error) error {
	next := CloneParts(c.parts)
	for i := range next {
		if next[i].ID != partID {
			continue
		}
		for j := range next[i].Listings {
			if next[i].Listings[j].ID != listingID {
				continue
			}
			if err := apply(&next[i], &next[i].Listings[j]); err != nil {
				return err
			}
			c.parts = next
			return nil
		}
		return fmt.Errorf("unknown listing id %q on part %q", listingID, partID)
	}
	return fmt.Errorf("unknown part id %q", partID)
}
