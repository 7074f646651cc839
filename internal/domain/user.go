package domain

import (
	"slices"
	"time"
)

// UserStatus is the administrative state of an account.
type UserStatus string

const (
	// UserActive is the normal state.
	UserActive UserStatus = "active"
	// UserBlocked is a sanctioned account, optionally until BlockedUntil.
	UserBlocked UserStatus = "blocked"
)

// User is the marketplace record of an account, keyed by Actor.UserID.
// Credentials live with the identity provider; the record carries the
// role last seen and any sanction.
type User struct {
	ID           string     `json:"id"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	BlockedUntil *time.Time `json:"blockedUntil,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// BlockedAt reports whether the account is sanctioned at the given instant.
func (u *User) BlockedAt(now time.Time) bool {
	if u.Status != UserBlocked {
		return false
	}
	return u.BlockedUntil == nil || u.BlockedUntil.After(now)
}

// Clone returns a copy that shares no pointers with u.
func (u User) Clone() User {
	if u.BlockedUntil != nil {
		t := *u.BlockedUntil
		u.BlockedUntil = &t
	}
	return u
}

// FindUser returns the account record with the given id.
func (s *Snapshot) FindUser(id string) (*User, bool) {
	i := slices.IndexFunc(s.Users, func(u User) bool { return u.ID == id })
	if i < 0 {
		return nil, false
	}
	return &s.Users[i], true
}

// WithoutUser removes an account and everything it authored: its quotes,
// the reviews it wrote, and its vendor with that vendor's products and
// reviews. Vendor stats are recomputed afterwards.
func (s Snapshot) WithoutUser(userID string) Snapshot {
	next := s.Clone()
	next.Users = slices.DeleteFunc(next.Users, func(u User) bool { return u.ID == userID })
	next.Quotes = slices.DeleteFunc(next.Quotes, func(q Quote) bool { return q.BuyerUserID == userID })
	next.Reviews = slices.DeleteFunc(next.Reviews, func(r Review) bool { return r.ReviewerUserID == userID })

	if v, ok := next.VendorOwnedBy(userID); ok {
		vendorID := v.ID
		next.Vendors = slices.DeleteFunc(next.Vendors, func(v Vendor) bool { return v.ID == vendorID })
		next.Products = slices.DeleteFunc(next.Products, func(p Product) bool { return p.VendorID == vendorID })
		next.Reviews = slices.DeleteFunc(next.Reviews, func(r Review) bool { return r.VendorID == vendorID })
	}
	return RecalcAllVendorStats(next)
}
