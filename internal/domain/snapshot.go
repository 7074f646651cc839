package domain

import "slices"

// Snapshot is the whole marketplace state read by one search evaluation.
// Callers treat it as immutable; mutations produce a new Snapshot.
type Snapshot struct {
	Users    []User    `json:"users,omitempty"`
	Vendors  []Vendor  `json:"vendors"`
	Products []Product `json:"products"`
	Reviews  []Review  `json:"reviews"`
	Quotes   []Quote   `json:"quotes,omitempty"`
}

// Clone returns a deep copy. Nil slices stay nil.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Reviews: slices.Clone(s.Reviews)}
	if s.Vendors != nil {
		out.Vendors = make([]Vendor, len(s.Vendors))
		for i, v := range s.Vendors {
			out.Vendors[i] = v.Clone()
		}
	}
	if s.Products != nil {
		out.Products = make([]Product, len(s.Products))
		for i, p := range s.Products {
			out.Products[i] = p.Clone()
		}
	}
	if s.Users != nil {
		out.Users = make([]User, len(s.Users))
		for i, u := range s.Users {
			out.Users[i] = u.Clone()
		}
	}
	if s.Quotes != nil {
		out.Quotes = make([]Quote, len(s.Quotes))
		for i, q := range s.Quotes {
			out.Quotes[i] = q.Clone()
		}
	}
	return out
}

// VendorIndex maps vendor id to its position-stable pointer in s.Vendors.
func (s *Snapshot) VendorIndex() map[string]*Vendor {
	idx := make(map[string]*Vendor, len(s.Vendors))
	for i := range s.Vendors {
		idx[s.Vendors[i].ID] = &s.Vendors[i]
	}
	return idx
}

// FindVendor returns the vendor with the given id.
func (s *Snapshot) FindVendor(id string) (*Vendor, bool) {
	for i := range s.Vendors {
		if s.Vendors[i].ID == id {
			return &s.Vendors[i], true
		}
	}
	return nil, false
}

// VendorOwnedBy returns the vendor registered by the given user.
func (s *Snapshot) VendorOwnedBy(userID string) (*Vendor, bool) {
	if userID == "" {
		return nil, false
	}
	for i := range s.Vendors {
		if s.Vendors[i].OwnerUserID == userID {
			return &s.Vendors[i], true
		}
	}
	return nil, false
}

// ReviewsFor returns the reviews left on a vendor, in snapshot order.
func (s *Snapshot) ReviewsFor(vendorID string) []Review {
	var out []Review
	for _, r := range s.Reviews {
		if r.VendorID == vendorID {
			out = append(out, r)
		}
	}
	return out
}

// ProductsOf returns the products listed by a vendor, in snapshot order.
func (s *Snapshot) ProductsOf(vendorID string) []Product {
	var out []Product
	for _, p := range s.Products {
		if p.VendorID == vendorID {
			out = append(out, p)
		}
	}
	return out
}
