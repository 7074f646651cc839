package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/logger"
	"github.com/estimatecheck/marketplace/internal/telemetry"
)

// ErrorCode is the machine-readable error identifier in error responses.
type ErrorCode string

// Error codes.
const (
	CodeBadRequest         ErrorCode = "bad_request"
	CodeValidationFailed   ErrorCode = "validation_failed"
	CodeInvalidRating      ErrorCode = "invalid_rating"
	CodeUnauthenticated    ErrorCode = "unauthenticated"
	CodeForbidden          ErrorCode = "forbidden"
	CodeVendorBlocked      ErrorCode = "vendor_blocked"
	CodeNotFound           ErrorCode = "not_found"
	CodeVendorNotFound     ErrorCode = "vendor_not_found"
	CodeProductNotFound    ErrorCode = "product_not_found"
	CodeUserNotFound       ErrorCode = "user_not_found"
	CodeQuoteNotFound      ErrorCode = "quote_not_found"
	CodeUserBlocked        ErrorCode = "user_blocked"
	CodeAlreadyExists      ErrorCode = "already_exists"
	CodeRelayNotConfigured ErrorCode = "relay_not_configured"
	CodeRelayFailed        ErrorCode = "relay_failed"
	CodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

var errorHandlers = []errorHandler{
	sentinelHandler(domain.ErrVendorNotFound, http.StatusNotFound, CodeVendorNotFound),
	sentinelHandler(domain.ErrProductNotFound, http.StatusNotFound, CodeProductNotFound),
	sentinelHandler(domain.ErrUserNotFound, http.StatusNotFound, CodeUserNotFound),
	sentinelHandler(domain.ErrQuoteNotFound, http.StatusNotFound, CodeQuoteNotFound),
	sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
	sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists),
	sentinelHandler(domain.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthenticated),
	sentinelHandler(domain.ErrForbidden, http.StatusForbidden, CodeForbidden),
	sentinelHandler(domain.ErrVendorBlocked, http.StatusForbidden, CodeVendorBlocked),
	sentinelHandler(domain.ErrUserBlocked, http.StatusForbidden, CodeUserBlocked),
	sentinelHandler(domain.ErrInvalidRating, http.StatusBadRequest, CodeInvalidRating),
	sentinelHandler(domain.ErrInvalidInput, http.StatusUnprocessableEntity, CodeValidationFailed),
	sentinelHandler(domain.ErrRelayNotConfigured, http.StatusServiceUnavailable, CodeRelayNotConfigured),
	sentinelHandler(domain.ErrRelayFailed, http.StatusBadGateway, CodeRelayFailed),
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrVendorNotFound,
		domain.ErrProductNotFound,
		domain.ErrUserNotFound,
		domain.ErrQuoteNotFound,
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrUnauthenticated,
		domain.ErrForbidden,
		domain.ErrVendorBlocked,
		domain.ErrUserBlocked,
		domain.ErrInvalidRating,
		domain.ErrInvalidInput,
		domain.ErrRelayNotConfigured,
		domain.ErrRelayFailed,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	msg := safeDomainMessage(err)
	for _, h := range errorHandlers {
		if h(w, err, msg) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	telemetry.CaptureError(r.Context(), err)
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
