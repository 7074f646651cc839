package chi

import (
	"time"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/nlq"
	"github.com/estimatecheck/marketplace/internal/domain/search/page"
	"github.com/estimatecheck/marketplace/internal/domain/search/result"
	catalogcase "github.com/estimatecheck/marketplace/internal/usecase/catalog"
	searchuc "github.com/estimatecheck/marketplace/internal/usecase/search"
)

// ContactDTO is a vendor contact as shown to the caller.
type ContactDTO struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
	Kakao string `json:"kakao"`
}

// VendorDTO is a vendor as shown to the caller.
type VendorDTO struct {
	ID            string     `json:"id"`
	CompanyName   string     `json:"company_name"`
	Categories    []string   `json:"categories"`
	Contact       ContactDTO `json:"contact"`
	ContactPublic bool       `json:"contact_public"`
	AvgRating     float64    `json:"avg_rating"`
	ReviewCount   int        `json:"review_count"`
	Status        string     `json:"status"`
	BlockedUntil  *time.Time `json:"blocked_until,omitempty"`
	IsSample      bool       `json:"is_sample"`
}

// ProductDTO is a product listing.
type ProductDTO struct {
	ID       string   `json:"id"`
	VendorID string   `json:"vendor_id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Desc     string   `json:"desc"`
	PriceMin *int64   `json:"price_min,omitempty"`
	PriceMax *int64   `json:"price_max,omitempty"`
}

// ReviewDTO is a vendor review.
type ReviewDTO struct {
	ID           string    `json:"id"`
	VendorID     string    `json:"vendor_id"`
	ReviewerRole string    `json:"reviewer_role,omitempty"`
	Rating       int       `json:"rating"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

// HitDTO is one ranked product.
type HitDTO struct {
	Product      ProductDTO `json:"product"`
	Vendor       VendorDTO  `json:"vendor"`
	Score        int        `json:"score"`
	ProductScore int        `json:"product_score"`
	VendorScore  int        `json:"vendor_score"`
}

// GroupDTO is one vendor with its ranked products.
type GroupDTO struct {
	Vendor    VendorDTO `json:"vendor"`
	BestScore int       `json:"best_score"`
	Items     []HitDTO  `json:"items"`
}

// SearchResponse is the body of GET /search.
type SearchResponse struct {
	View           string              `json:"view"`
	Interpretation *nlq.Interpretation `json:"interpretation,omitempty"`
	Page           page.Page           `json:"page"`
	Hits           []HitDTO            `json:"hits,omitempty"`
	Groups         []GroupDTO          `json:"groups,omitempty"`
	TotalHits      int                 `json:"total_hits"`
	TotalVendors   int                 `json:"total_vendors"`
}

// VendorListResponse is the body of GET /vendors.
type VendorListResponse struct {
	Vendors []VendorDTO `json:"vendors"`
	Page    page.Page   `json:"page"`
}

// VendorDetailResponse is the body of GET /vendors/{id}.
type VendorDetailResponse struct {
	Vendor   VendorDTO    `json:"vendor"`
	Products []ProductDTO `json:"products"`
	Reviews  []ReviewDTO  `json:"reviews"`
}

// VendorRequest is the body of POST /vendors.
type VendorRequest struct {
	CompanyName   string     `json:"company_name"`
	Categories    []string   `json:"categories"`
	Contact       ContactDTO `json:"contact"`
	ContactPublic bool       `json:"contact_public"`
}

// VendorPatchRequest is the body of PATCH /vendors/me.
type VendorPatchRequest struct {
	CompanyName   *string     `json:"company_name"`
	Categories    []string    `json:"categories"`
	Contact       *ContactDTO `json:"contact"`
	ContactPublic *bool       `json:"contact_public"`
}

// ProductRequest is the body of POST /products and PUT /products/{id}.
type ProductRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Desc     string   `json:"desc"`
	PriceMin *int64   `json:"price_min"`
	PriceMax *int64   `json:"price_max"`
}

// ReviewRequest is the body of POST /vendors/{id}/reviews.
type ReviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// SanctionRequest is the body of POST /admin/vendors/{id}/sanction.
// Omitted days means an indefinite sanction.
type SanctionRequest struct {
	Days *int `json:"days"`
}

// QuoteItemDTO is one line of a quote.
type QuoteItemDTO struct {
	ProductID    string `json:"product_id,omitempty"`
	ProductName  string `json:"product_name"`
	Category     string `json:"category"`
	Qty          int    `json:"qty"`
	Detail       string `json:"detail"`
	Memo         string `json:"memo"`
	UnitPriceMin *int64 `json:"unit_price_min,omitempty"`
	UnitPriceMax *int64 `json:"unit_price_max,omitempty"`
}

// QuoteDTO is a saved quote.
type QuoteDTO struct {
	ID        string         `json:"id"`
	Items     []QuoteItemDTO `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
}

// QuoteRequest is the body of POST /quotes and PUT /quotes/{id}.
type QuoteRequest struct {
	Items []QuoteItemDTO `json:"items"`
}

// QuoteListResponse is the body of GET /quotes.
type QuoteListResponse struct {
	Quotes []QuoteDTO `json:"quotes"`
}

// UserDTO is an account record as shown to administrators.
type UserDTO struct {
	ID           string     `json:"id"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	BlockedUntil *time.Time `json:"blocked_until,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UserListResponse is the body of GET /admin/users.
type UserListResponse struct {
	Users []UserDTO `json:"users"`
}

// ContactRequest is the body of POST /contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	PageURL string `json:"page_url"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// vendorToDTO expects a vendor already presented to the caller.
func vendorToDTO(v *domain.Vendor) VendorDTO {
	return VendorDTO{
		ID:            v.ID,
		CompanyName:   v.CompanyName,
		Categories:    v.Categories,
		Contact:       ContactDTO(v.Contact),
		ContactPublic: v.ContactPublic,
		AvgRating:     v.AvgRating,
		ReviewCount:   v.ReviewCount,
		Status:        string(v.Status),
		BlockedUntil:  v.BlockedUntil,
		IsSample:      v.IsSample,
	}
}

func productToDTO(p *domain.Product) ProductDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProductDTO{
		ID:       p.ID,
		VendorID: p.VendorID,
		Name:     p.Name,
		Category: p.Category,
		Tags:     tags,
		Desc:     p.Desc,
		PriceMin: p.PriceMin,
		PriceMax: p.PriceMax,
	}
}

func reviewToDTO(r *domain.Review) ReviewDTO {
	return ReviewDTO{
		ID:           r.ID,
		VendorID:     r.VendorID,
		ReviewerRole: string(r.ReviewerRole),
		Rating:       r.Rating,
		Text:         r.Text,
		CreatedAt:    r.CreatedAt,
	}
}

func hitToDTO(h *result.Hit, a domain.Actor) HitDTO {
	v := h.Vendor.PresentedTo(a)
	return HitDTO{
		Product:      productToDTO(&h.Product),
		Vendor:       vendorToDTO(&v),
		Score:        h.Total(),
		ProductScore: h.Score.Product,
		VendorScore:  h.Score.Vendor,
	}
}

func searchResponseToDTO(resp *searchuc.Response, a domain.Actor) SearchResponse {
	out := SearchResponse{
		View:           string(resp.View),
		Interpretation: resp.Interpretation,
		Page:           resp.Page,
		TotalHits:      resp.TotalHits,
		TotalVendors:   resp.TotalVendors,
	}
	for i := range resp.Hits {
		out.Hits = append(out.Hits, hitToDTO(&resp.Hits[i], a))
	}
	for i := range resp.Groups {
		g := &resp.Groups[i]
		v := g.Vendor.PresentedTo(a)
		dto := GroupDTO{Vendor: vendorToDTO(&v), BestScore: g.BestScore}
		for j := range g.Items {
			dto.Items = append(dto.Items, hitToDTO(&g.Items[j], a))
		}
		out.Groups = append(out.Groups, dto)
	}
	return out
}

func vendorsPageToDTO(p *catalogcase.VendorsPage) VendorListResponse {
	out := VendorListResponse{Vendors: make([]VendorDTO, len(p.Vendors)), Page: p.Page}
	for i := range p.Vendors {
		out.Vendors[i] = vendorToDTO(&p.Vendors[i])
	}
	return out
}

func vendorDetailToDTO(d *catalogcase.VendorDetail) VendorDetailResponse {
	out := VendorDetailResponse{
		Vendor:   vendorToDTO(&d.Vendor),
		Products: make([]ProductDTO, len(d.Products)),
		Reviews:  make([]ReviewDTO, len(d.Reviews)),
	}
	for i := range d.Products {
		out.Products[i] = productToDTO(&d.Products[i])
	}
	for i := range d.Reviews {
		out.Reviews[i] = reviewToDTO(&d.Reviews[i])
	}
	return out
}

func (p ProductRequest) toInput() catalogcase.ProductInput {
	return catalogcase.ProductInput{
		Name:     p.Name,
		Category: p.Category,
		Tags:     p.Tags,
		Desc:     p.Desc,
		PriceMin: p.PriceMin,
		PriceMax: p.PriceMax,
	}
}

func (v VendorRequest) toInput() catalogcase.VendorInput {
	return catalogcase.VendorInput{
		CompanyName:   v.CompanyName,
		Categories:    v.Categories,
		Contact:       domain.Contact(v.Contact),
		ContactPublic: v.ContactPublic,
	}
}

func (v VendorPatchRequest) toPatch() catalogcase.VendorPatch {
	patch := catalogcase.VendorPatch{
		CompanyName:   v.CompanyName,
		Categories:    v.Categories,
		ContactPublic: v.ContactPublic,
	}
	if v.Contact != nil {
		c := domain.Contact(*v.Contact)
		patch.Contact = &c
	}
	return patch
}

func quoteToDTO(q *domain.Quote) QuoteDTO {
	items := make([]QuoteItemDTO, len(q.Items))
	for i, it := range q.Items {
		items[i] = QuoteItemDTO{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Category:     it.Category,
			Qty:          it.Qty,
			Detail:       it.Detail,
			Memo:         it.Memo,
			UnitPriceMin: it.UnitPriceMin,
			UnitPriceMax: it.UnitPriceMax,
		}
	}
	return QuoteDTO{ID: q.ID, Items: items, CreatedAt: q.CreatedAt}
}

func (q QuoteRequest) toItems() []domain.QuoteItem {
	items := make([]domain.QuoteItem, len(q.Items))
	for i, it := range q.Items {
		items[i] = domain.QuoteItem{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Category:     it.Category,
			Qty:          it.Qty,
			Detail:       it.Detail,
			Memo:         it.Memo,
			UnitPriceMin: it.UnitPriceMin,
			UnitPriceMax: it.UnitPriceMax,
		}
	}
	return items
}

func userToDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Role:         string(u.Role),
		Status:       string(u.Status),
		BlockedUntil: u.BlockedUntil,
		CreatedAt:    u.CreatedAt,
	}
}
