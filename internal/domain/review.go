package domain

import "time"

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating left on a vendor.
type Review struct {
	ID             string    `json:"id"`
	VendorID       string    `json:"vendorId"`
	ReviewerUserID string    `json:"reviewerUserId"`
	ReviewerRole   Role      `json:"reviewerRole,omitempty"`
	Rating         int       `json:"rating"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ValidRating reports whether r is an accepted review rating.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
