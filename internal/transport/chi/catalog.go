package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListVendors handles GET /vendors.
func (s *Server) ListVendors(w http.ResponseWriter, r *http.Request) {
	var category *string
	var pageNum *int
	if !bindQuery(w, r, queryParam{"category", &category}, queryParam{"page", &pageNum}) {
		return
	}

	p, err := s.catalog.ListVendors(r.Context(), deref(category), deref(pageNum))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vendorsPageToDTO(&p))
}

// GetVendor handles GET /vendors/{id}.
func (s *Server) GetVendor(w http.ResponseWriter, r *http.Request) {
	d, err := s.catalog.Vendor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vendorDetailToDTO(&d))
}

// RegisterVendor handles POST /vendors.
func (s *Server) RegisterVendor(w http.ResponseWriter, r *http.Request) {
	var req VendorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	v, err := s.catalog.RegisterVendor(r.Context(), req.toInput())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/vendors/"+v.ID)
	writeJSON(w, http.StatusCreated, vendorToDTO(&v))
}

// UpdateVendorProfile handles PATCH /vendors/me.
func (s *Server) UpdateVendorProfile(w http.ResponseWriter, r *http.Request) {
	var req VendorPatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	v, err := s.catalog.UpdateVendorProfile(r.Context(), req.toPatch())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vendorToDTO(&v))
}

// CreateProduct handles POST /products.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := s.catalog.CreateProduct(r.Context(), req.toInput())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, productToDTO(&p))
}

// UpdateProduct handles PUT /products/{id}.
func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := s.catalog.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productToDTO(&p))
}

// DeleteProduct handles DELETE /products/{id}.
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddReview handles POST /vendors/{id}/reviews.
func (s *Server) AddReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rev, err := s.catalog.AddReview(r.Context(), chi.URLParam(r, "id"), req.Rating, req.Text)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reviewToDTO(&rev))
}

// DeleteReview handles DELETE /admin/reviews/{id}.
func (s *Server) DeleteReview(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteReview(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SanctionVendor handles POST /admin/vendors/{id}/sanction.
func (s *Server) SanctionVendor(w http.ResponseWriter, r *http.Request) {
	var req SanctionRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}

	v, err := s.catalog.SanctionVendor(r.Context(), chi.URLParam(r, "id"), req.Days)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vendorToDTO(&v))
}

// ClearVendorSanction handles DELETE /admin/vendors/{id}/sanction.
func (s *Server) ClearVendorSanction(w http.ResponseWriter, r *http.Request) {
	v, err := s.catalog.ClearVendorSanction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vendorToDTO(&v))
}
