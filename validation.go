package partlog

import (
	"fmt"
	"net/url"
	"strings"
)

// SanitizeURL validates a listing URL and returns it in canonical form.
// Only http and https schemes are accepted; anything else (javascript:,
// data:, file:, scheme-less text) is rejected.
func SanitizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", fmt.Errorf("unsupported url scheme %q in %q", u.Scheme, raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("url %q has no host", raw)
	}
	return u.String(), nil
}

// validatePart checks the add-part invariants: a non-empty name, a known
// category, and at least one listing with a non-empty vendor, a sanitizable
// URL and a non-empty price.
func validatePart(p *Part) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("part name is required")
	}
	if !p.Category.known() {
		return fmt.Errorf("unknown category %d", int(p.Category))
	}
	if len(p.Listings) == 0 {
		return fmt.Errorf("part %q needs at least one listing", p.Name)
	}
	for i := range p.Listings {
		l := &p.Listings[i]
		if strings.TrimSpace(l.Vendor) == "" {
			return fmt.Errorf("listing %d of part %q: vendor is required", i, p.Name)
		}
		if strings.TrimSpace(l.Price) == "" {
			return fmt.Errorf("listing %d of part %q: price is required", i, p.Name)
		}
		clean, err := SanitizeURL(l.URL)
		if err != nil {
			return fmt.Errorf("listing %d of part %q: %w", i, p.Name, err)
		}
		l.URL = clean
	}
	return nil
}
