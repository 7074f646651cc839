package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListQuotes handles GET /quotes.
func (s *Server) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.catalog.Quotes(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	out := QuoteListResponse{Quotes: make([]QuoteDTO, len(quotes))}
	for i := range quotes {
		out.Quotes[i] = quoteToDTO(&quotes[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// SaveQuote handles POST /quotes.
func (s *Server) SaveQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	q, err := s.catalog.SaveQuote(r.Context(), req.toItems())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, quoteToDTO(&q))
}

// UpdateQuote handles PUT /quotes/{id}.
func (s *Server) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	q, err := s.catalog.UpdateQuote(r.Context(), chi.URLParam(r, "id"), req.toItems())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteToDTO(&q))
}

// DeleteAccount handles DELETE /me.
func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteAccount(r.Context()); err != nil {
		handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListUsers handles GET /admin/users.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.catalog.Users(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	out := UserListResponse{Users: make([]UserDTO, len(users))}
	for i := range users {
		out.Users[i] = userToDTO(&users[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// SanctionUser handles POST /admin/users/{id}/sanction.
func (s *Server) SanctionUser(w http.ResponseWriter, r *http.Request) {
	var req SanctionRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}

	u, err := s.catalog.SanctionUser(r.Context(), chi.URLParam(r, "id"), req.Days)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userToDTO(&u))
}

// ClearUserSanction handles DELETE /admin/users/{id}/sanction.
func (s *Server) ClearUserSanction(w http.ResponseWriter, r *http.Request) {
	u, err := s.catalog.ClearUserSanction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userToDTO(&u))
}

// DeleteUser handles DELETE /admin/users/{id}.
func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
