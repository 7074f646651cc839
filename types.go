package marketplace

import "time"

// View is the shape of a result page.
type View string

// Result views.
const (
	ViewProducts View = "product"
	ViewVendors  View = "vendor"
)

// Query describes what to search for. Blank fields mean "no constraint".
type Query struct {
	// Text is matched against product names, descriptions, tags and keywords.
	Text string
	// Vendor is matched against vendor names and categories.
	Vendor string
	// Natural runs the interpreter on Text, adding inferred unit phrases
	// and category constraints.
	Natural   bool
	Category  string
	VendorID  string
	MinRating float64
}

// SearchOptions select the presentation of a search.
type SearchOptions struct {
	View View
	// Page is 1-based; out-of-range values are clamped.
	Page int
	// Admin searches as an administrator: sanctioned vendors stay in the
	// results and contacts are shown in full.
	Admin bool
}

// Contact holds vendor contact channels. Private contacts are masked.
type Contact struct {
	Phone string
	Email string
	Kakao string
}

// Vendor is a supplier as shown in search results.
type Vendor struct {
	ID           string
	CompanyName  string
	Categories   []string
	Contact      Contact
	AvgRating    float64
	ReviewCount  int
	Status       string
	BlockedUntil *time.Time
	Sample       bool
}

// Product is a listed item.
type Product struct {
	ID          string
	VendorID    string
	Name        string
	Category    string
	Tags        []string
	Description string
	PriceMin    *int64
	PriceMax    *int64
}

// Hit is a ranked product with its vendor.
type Hit struct {
	Product Product
	Vendor  Vendor
	// Score is ProductScore + VendorScore.
	Score        int
	ProductScore int
	VendorScore  int
}

// Group is one vendor's hits in the vendor view.
type Group struct {
	Vendor    Vendor
	Items     []Hit
	BestScore int
}

// Interpretation is what the interpreter inferred from natural text.
type Interpretation struct {
	Keywords   []string
	Categories []string
}

// PageLink is a navigation entry: a page number or a gap.
type PageLink struct {
	Number   int
	Ellipsis bool
}

// Pagination describes the current page of a result list.
type Pagination struct {
	Current int
	Count   int
	Total   int
	Size    int
	Offset  int
	Limit   int
	Links   []PageLink
}

// SearchResult is one page of a search.
type SearchResult struct {
	View           View
	Interpretation *Interpretation
	Page           Pagination
	// Hits is set for ViewProducts, Groups for ViewVendors.
	Hits         []Hit
	Groups       []Group
	TotalHits    int
	TotalVendors int
}
