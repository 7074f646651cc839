package chi

import (
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/mode"
	"github.com/estimatecheck/marketplace/internal/domain/search/request"
	searchuc "github.com/estimatecheck/marketplace/internal/usecase/search"
)

// SearchParams are the query parameters of GET /search.
type SearchParams struct {
	Q         *string
	VendorQ   *string
	Category  *string
	VendorID  *string
	MinRating *float64
	AI        *bool
	View      *string
	Page      *int
}

// queryParam names an optional query parameter and where to bind it.
type queryParam struct {
	name string
	dst  any
}

// bindQuery binds optional form-style query parameters in the given order.
// It writes a 400 response and returns false on the first malformed value.
func bindQuery(w http.ResponseWriter, r *http.Request, params ...queryParam) bool {
	q := r.URL.Query()
	for _, p := range params {
		if err := runtime.BindQueryParameter("form", true, false, p.name, q, p.dst); err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid query parameter "+p.name+": "+err.Error())
			return false
		}
	}
	return true
}

// checkQueryLength writes a 422 response for an over-long search term.
func checkQueryLength(w http.ResponseWriter, terms ...string) bool {
	for _, t := range terms {
		if err := request.CheckLength(t); err != nil {
			writeError(w, http.StatusUnprocessableEntity, CodeValidationFailed, err.Error())
			return false
		}
	}
	return true
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Search handles GET /search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var p SearchParams
	if !bindQuery(w, r,
		queryParam{"q", &p.Q},
		queryParam{"vendor_q", &p.VendorQ},
		queryParam{"category", &p.Category},
		queryParam{"vendor_id", &p.VendorID},
		queryParam{"min_rating", &p.MinRating},
		queryParam{"ai", &p.AI},
		queryParam{"view", &p.View},
		queryParam{"page", &p.Page},
	) {
		return
	}

	view := mode.Products
	if p.View != nil {
		view = mode.View(*p.View)
		if !view.IsValid() {
			writeError(w, http.StatusBadRequest, CodeBadRequest,
				"Invalid query parameter view: want "+string(mode.Products)+" or "+string(mode.Vendors))
			return
		}
	}

	text, vendorText := deref(p.Q), deref(p.VendorQ)
	if !checkQueryLength(w, text, vendorText) {
		return
	}

	m := mode.Exact
	if deref(p.AI) {
		m = mode.Natural
	}
	req := request.New(text, vendorText, m, deref(p.Category), deref(p.VendorID), deref(p.MinRating))

	resp, err := s.search.Search(r.Context(), &req, searchuc.Options{
		View: view,
		Page: deref(p.Page),
	})
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponseToDTO(&resp, domain.ActorFromContext(r.Context())))
}

// Interpret handles GET /interpret.
func (s *Server) Interpret(w http.ResponseWriter, r *http.Request) {
	var q *string
	if !bindQuery(w, r, queryParam{"q", &q}) {
		return
	}
	text := deref(q)
	if !checkQueryLength(w, text) {
		return
	}
	writeJSON(w, http.StatusOK, s.search.Interpret(text))
}
