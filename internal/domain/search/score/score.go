// Package score computes token-overlap relevance between a query and a
// product listing.
package score

import (
	"strings"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/token"
)

// Terms are the query tokens for each scoring axis.
type Terms struct {
	// Product holds the free-text tokens merged with interpreter keywords.
	Product []string
	// Vendor holds the vendor-name query tokens.
	Vendor []string
}

// NewTerms merges the tokens of text with extra keywords (deduplicated,
// text tokens first) and tokenizes the vendor query.
func NewTerms(text string, keywords []string, vendorText string) Terms {
	product := token.Split(text)
	if len(keywords) > 0 {
		seen := token.FromSlice(product)
		for _, k := range keywords {
			if !seen.Has(k) {
				seen[k] = struct{}{}
				product = append(product, k)
			}
		}
	}
	return Terms{Product: product, Vendor: token.Split(vendorText)}
}

// IsEmpty reports whether both axes are empty.
func (t Terms) IsEmpty() bool {
	return len(t.Product) == 0 && len(t.Vendor) == 0
}

// Score is the per-axis relevance of one candidate.
type Score struct {
	Product int `json:"product"`
	Vendor  int `json:"vendor"`
}

// Total is the sum of both axes.
func (s Score) Total() int { return s.Product + s.Vendor }

// ProductTokens returns the searchable token set of a product, including
// its vendor's name and categories.
func ProductTokens(p *domain.Product, v *domain.Vendor) token.Set {
	return token.Of(
		p.Name,
		p.Desc,
		strings.Join(p.Tags, " "),
		strings.Join(p.Keywords, " "),
		v.CompanyName,
		strings.Join(v.Categories, " "),
	)
}

// VendorTokens returns the searchable token set of a vendor.
func VendorTokens(v *domain.Vendor) token.Set {
	return token.Of(v.CompanyName, strings.Join(v.Categories, " "))
}

// Evaluate scores a product against the terms. A candidate is excluded when
// an axis has query tokens but none of them match.
func Evaluate(t Terms, p *domain.Product, v *domain.Vendor) (Score, bool) {
	var s Score
	if len(t.Product) > 0 {
		s.Product = ProductTokens(p, v).Count(t.Product)
		if s.Product == 0 {
			return s, false
		}
	}
	if len(t.Vendor) > 0 {
		s.Vendor = VendorTokens(v).Count(t.Vendor)
		if s.Vendor == 0 {
			return s, false
		}
	}
	return s, true
}
