package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/metrics"
	"github.com/estimatecheck/marketplace/internal/telemetry"
	chiTransport "github.com/estimatecheck/marketplace/internal/transport/chi"
	"github.com/estimatecheck/marketplace/internal/transport/contact"
	"github.com/estimatecheck/marketplace/internal/version"
)

// ServeCmd starts the HTTP API server.
func ServeCmd(opts *Options) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the marketplace HTTP API. The port defaults to http.port from the config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on")

	return cmd
}

func runServe(ctx context.Context, opts *Options, port int) error {
	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	if port > 0 {
		a.cfg.HTTP.Port = port
	}

	logger := a.logger
	logger.Info("Starting marketplace API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", a.env),
		zap.Int("http_port", a.cfg.HTTP.Port),
		zap.String("store_driver", a.cfg.Store.Driver),
	)

	flush := telemetry.Init(telemetry.Config{
		DSN:         a.cfg.Telemetry.SentryDSN,
		Environment: a.cfg.Telemetry.Environment,
		SampleRate:  a.cfg.Telemetry.SampleRate,
	}, logger)
	defer flush()

	metrics.RegisterSearchMetrics()

	// Load once so an empty store is seeded before the first request.
	if _, err := a.snapshots.Load(ctx); err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:      a.handler(),
		ReadTimeout:  time.Duration(a.cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(a.cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	return serve(ctx, srv, ln, time.Duration(a.cfg.HTTP.ShutdownSec)*time.Second, logger)
}

// handler builds the HTTP router over the app's services.
func (a *app) handler() http.Handler {
	relay := contact.NewRelay(contact.Config{
		Endpoint: a.cfg.Contact.RelayURL,
		Timeout:  time.Duration(a.cfg.Contact.TimeoutSec) * time.Second,
	})
	server := chiTransport.NewServer(a.search, a.catalog, a.health, relay, a.logger)
	return server.Handler(a.cfg.Auth.Actors())
}

// serve runs srv on ln until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
