package domain

import (
	"slices"
	"strings"
)

// Product is a material listed by a vendor.
// A nil PriceMin or PriceMax means the price is given on inquiry.
type Product struct {
	ID       string   `json:"id"`
	VendorID string   `json:"vendorId"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Desc     string   `json:"desc"`
	PriceMin *int64   `json:"priceMin,omitempty"`
	PriceMax *int64   `json:"priceMax,omitempty"`
	Keywords []string `json:"keywords"`
}

// RefreshKeywords recomputes the keyword set from the editable fields.
func (p *Product) RefreshKeywords() {
	p.Keywords = ProductKeywords(p.Name, p.Desc, p.Tags, p.Category)
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Product) Clone() Product {
	p.Tags = slices.Clone(p.Tags)
	p.Keywords = slices.Clone(p.Keywords)
	if p.PriceMin != nil {
		v := *p.PriceMin
		p.PriceMin = &v
	}
	if p.PriceMax != nil {
		v := *p.PriceMax
		p.PriceMax = &v
	}
	return p
}

// ProductKeywords is the deduplicated lowercase whitespace split of
// name, description, tags and category, in first-seen order.
func ProductKeywords(name, desc string, tags []string, category string) []string {
	parts := make([]string, 0, len(tags)+3)
	parts = append(parts, name, desc)
	parts = append(parts, tags...)
	parts = append(parts, category)

	fields := strings.Fields(strings.ToLower(strings.Join(parts, " ")))
	seen := make(map[string]struct{}, len(fields))
	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		keywords = append(keywords, f)
	}
	return keywords
}
