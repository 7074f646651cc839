// Package filter applies the hard constraints of a search in a fixed order.
package filter

import (
	"time"

	"github.com/estimatecheck/marketplace/internal/domain"
)

// Reason names the constraint that excluded a candidate.
type Reason string

// Constraints in evaluation order. The first failing one excludes.
const (
	ReasonVendorMissing    Reason = "vendor_missing"
	ReasonCategory         Reason = "category"
	ReasonInferredCategory Reason = "inferred_category"
	ReasonVendorID         Reason = "vendor_id"
	ReasonMinRating        Reason = "min_rating"
	ReasonBlocked          Reason = "blocked"
	// ReasonRelevance is reported by callers when the scorer excludes.
	ReasonRelevance Reason = "relevance"
)

// Reasons returns every exclusion reason in evaluation order.
func Reasons() []Reason {
	return []Reason{
		ReasonVendorMissing,
		ReasonCategory,
		ReasonInferredCategory,
		ReasonVendorID,
		ReasonMinRating,
		ReasonBlocked,
		ReasonRelevance,
	}
}

// Criteria is the set of hard constraints of one search.
// Zero-valued fields do not constrain.
type Criteria struct {
	Category string
	// InferredCategories come from the natural-query interpreter; a
	// candidate must match at least one of them.
	InferredCategories []string
	VendorID           string
	MinRating          float64
	// Admin callers see blocked vendors.
	Admin bool
	// Now is the instant sanctions are evaluated at.
	Now time.Time
}

// Apply checks a product and its vendor against the criteria.
// A nil vendor means the product references a vendor that does not exist.
func (c Criteria) Apply(p *domain.Product, v *domain.Vendor) (Reason, bool) {
	if v == nil {
		return ReasonVendorMissing, false
	}
	if c.Category != "" && !InCategory(p, v, c.Category) {
		return ReasonCategory, false
	}
	if len(c.InferredCategories) > 0 && !inAnyCategory(p, v, c.InferredCategories) {
		return ReasonInferredCategory, false
	}
	if c.VendorID != "" && v.ID != c.VendorID {
		return ReasonVendorID, false
	}
	if c.MinRating > 0 && v.AvgRating < c.MinRating {
		return ReasonMinRating, false
	}
	if !Visible(v, c.Admin, c.Now) {
		return ReasonBlocked, false
	}
	return "", true
}

// InCategory reports whether the product is in the category directly or
// through one of its vendor's categories.
func InCategory(p *domain.Product, v *domain.Vendor, category string) bool {
	return p.Category == category || v.HasCategory(category)
}

// Visible reports whether the vendor may be shown. Sanctioned vendors are
// hidden from everyone but administrators until the sanction expires.
func Visible(v *domain.Vendor, admin bool, now time.Time) bool {
	return admin || !v.BlockedAt(now)
}

func inAnyCategory(p *domain.Product, v *domain.Vendor, categories []string) bool {
	for _, c := range categories {
		if InCategory(p, v, c) {
			return true
		}
	}
	return false
}
