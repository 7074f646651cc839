// Package telemetry wires Sentry error reporting.
package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/version"
)

const serviceName = "marketplace"

// Config holds the configuration for Sentry initialization.
type Config struct {
	DSN         string
	Environment string
	SampleRate  float64
	Debug       bool
}

// Init initializes Sentry and returns a function that flushes pending events.
// With an empty DSN it does nothing. An initialization failure is logged and
// the service continues without reporting.
func Init(cfg Config, logger *zap.Logger) func() {
	if cfg.DSN == "" {
		return func() {}
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 1.0
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          serviceName + "@" + version.Version,
		ServerName:       serviceName,
		SampleRate:       cfg.SampleRate,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
	})
	if err != nil {
		logger.Warn("sentry: failed to initialize, continuing without error reporting", zap.Error(err))
		return func() {}
	}

	logger.Info("sentry: error reporting initialized",
		zap.String("environment", cfg.Environment),
		zap.Float64("sample_rate", cfg.SampleRate),
	)
	return func() {
		sentry.Flush(5 * time.Second)
	}
}

// Middleware attaches a per-request hub so panics and captured errors carry
// request context. It re-panics after reporting so the outer recoverer can
// write the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub := sentry.GetHubFromContext(r.Context())
		if hub == nil {
			hub = sentry.CurrentHub().Clone()
		}
		hub.Scope().SetRequest(r)
		ctx := sentry.SetHubOnContext(r.Context(), hub)

		defer func() {
			if rvr := recover(); rvr != nil {
				hub.RecoverWithContext(ctx, rvr)
				panic(rvr)
			}
		}()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CaptureError reports err on the request hub when one is present.
func CaptureError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}

// Recovered reports a recovered panic value.
func Recovered(ctx context.Context, rvr any) {
	err, ok := rvr.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", rvr)
	}
	CaptureError(ctx, err)
}
