package domain

import (
	"slices"
	"time"
)

// VendorStatus is the administrative lifecycle state of a vendor.
type VendorStatus string

const (
	// VendorActive is the normal state.
	VendorActive VendorStatus = "active"
	// VendorBlocked is a sanctioned vendor, optionally until BlockedUntil.
	VendorBlocked VendorStatus = "blocked"
)

// DefaultCategory is assigned to vendors registered without categories.
const DefaultCategory = "기타"

// Categories lists the category labels offered to vendors and product forms.
var Categories = []string{"기계", "전기", "건축", "공구", "계장", "기타"}

// Contact holds the vendor's reachable channels.
type Contact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Kakao string `json:"kakao,omitempty"`
}

// Vendor is a seller company listed on the marketplace.
// AvgRating and ReviewCount are derived from reviews, see RecalcVendorStats.
type Vendor struct {
	ID            string       `json:"id"`
	OwnerUserID   string       `json:"ownerUserId"`
	CompanyName   string       `json:"companyName"`
	Categories    []string     `json:"categories"`
	Contact       Contact      `json:"contact"`
	ContactPublic bool         `json:"contactPublic"`
	AvgRating     float64      `json:"avgRating"`
	ReviewCount   int          `json:"reviewCount"`
	Status        VendorStatus `json:"status"`
	BlockedUntil  *time.Time   `json:"blockedUntil,omitempty"`
	IsSample      bool         `json:"isSample"`
}

// HasCategory reports whether the vendor lists the category label.
func (v *Vendor) HasCategory(category string) bool {
	return slices.Contains(v.Categories, category)
}

// BlockedAt reports whether the vendor is sanctioned at the given instant.
// A block without expiry is indefinite; an expired block no longer applies.
func (v *Vendor) BlockedAt(now time.Time) bool {
	if v.Status != VendorBlocked {
		return false
	}
	return v.BlockedUntil == nil || v.BlockedUntil.After(now)
}

// Clone returns a copy that shares no slices or pointers with v.
func (v Vendor) Clone() Vendor {
	v.Categories = slices.Clone(v.Categories)
	if v.BlockedUntil != nil {
		t := *v.BlockedUntil
		v.BlockedUntil = &t
	}
	return v
}
