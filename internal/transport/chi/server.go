// Package chi exposes the marketplace over a JSON HTTP API.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/metrics"
	"github.com/estimatecheck/marketplace/internal/telemetry"
	"github.com/estimatecheck/marketplace/internal/transport/contact"
	catalogcase "github.com/estimatecheck/marketplace/internal/usecase/catalog"
	healthuc "github.com/estimatecheck/marketplace/internal/usecase/health"
	searchuc "github.com/estimatecheck/marketplace/internal/usecase/search"
)

// Server holds the HTTP handlers.
type Server struct {
	search  *searchuc.Service
	catalog *catalogcase.Service
	health  *healthuc.Service
	relay   *contact.Relay
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	catalog *catalogcase.Service,
	health *healthuc.Service,
	relay *contact.Relay,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:  search,
		catalog: catalog,
		health:  health,
		relay:   relay,
		logger:  logger,
	}
}

// Handler builds the router with the middleware chain. actors maps bearer
// tokens to callers.
func (s *Server) Handler(actors map[string]domain.Actor) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(telemetry.Middleware)
	r.Use(BearerAuthMiddleware(actors))
	r.Use(metrics.Middleware("/metrics"))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})

	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/search", s.Search)
	r.Get("/interpret", s.Interpret)

	r.Route("/vendors", func(r chi.Router) {
		r.Get("/", s.ListVendors)
		r.Post("/", s.RegisterVendor)
		r.Patch("/me", s.UpdateVendorProfile)
		r.Get("/{id}", s.GetVendor)
		r.Post("/{id}/reviews", s.AddReview)
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", s.CreateProduct)
		r.Put("/{id}", s.UpdateProduct)
		r.Delete("/{id}", s.DeleteProduct)
	})

	r.Route("/quotes", func(r chi.Router) {
		r.Get("/", s.ListQuotes)
		r.Post("/", s.SaveQuote)
		r.Put("/{id}", s.UpdateQuote)
	})

	r.Delete("/me", s.DeleteAccount)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/vendors/{id}/sanction", s.SanctionVendor)
		r.Delete("/vendors/{id}/sanction", s.ClearVendorSanction)
		r.Delete("/reviews/{id}", s.DeleteReview)
		r.Get("/users", s.ListUsers)
		r.Post("/users/{id}/sanction", s.SanctionUser)
		r.Delete("/users/{id}/sanction", s.ClearUserSanction)
		r.Delete("/users/{id}", s.DeleteUser)
	})

	r.Post("/contact", s.SendInquiry)
	return r
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// SendInquiry handles POST /contact.
func (s *Server) SendInquiry(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := s.relay.Send(r.Context(), contact.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		PageURL: req.PageURL,
	})
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
