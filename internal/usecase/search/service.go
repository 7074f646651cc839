package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/mode"
	"github.com/estimatecheck/marketplace/internal/domain/search/nlq"
	"github.com/estimatecheck/marketplace/internal/domain/search/page"
	"github.com/estimatecheck/marketplace/internal/domain/search/request"
	"github.com/estimatecheck/marketplace/internal/domain/search/result"
	"github.com/estimatecheck/marketplace/internal/logger"
	"github.com/estimatecheck/marketplace/internal/metrics"
)

// Service evaluates searches against the current snapshot.
type Service struct {
	snapshots  SnapshotLoader
	interp     Interpreter
	now        func() time.Time
	pageSize   int
	pageWindow int
}

// New creates a search service.
func New(snapshots SnapshotLoader, interp Interpreter) *Service {
	return &Service{
		snapshots:  snapshots,
		interp:     interp,
		now:        time.Now,
		pageSize:   page.DefaultSize,
		pageWindow: page.DefaultWindow,
	}
}

// WithClock sets the time source used to evaluate sanctions.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithPagination sets page size and navigation window. Non-positive values
// keep the defaults.
func (s *Service) WithPagination(size, window int) *Service {
	if size > 0 {
		s.pageSize = size
	}
	if window > 0 {
		s.pageWindow = window
	}
	return s
}

// Options select the presentation of a search.
type Options struct {
	View mode.View
	// Page is 1-based; out-of-range values are clamped.
	Page int
}

// Response is one page of a search.
type Response struct {
	View           mode.View
	Interpretation *nlq.Interpretation
	Page           page.Page
	// Hits is set for the product view, Groups for the vendor view.
	Hits   []result.Hit
	Groups []result.Group
	// TotalHits and TotalVendors count the whole result, not the page.
	TotalHits    int
	TotalVendors int
}

// Interpret runs the natural-language interpreter on text.
func (s *Service) Interpret(text string) nlq.Interpretation {
	return s.interp.Interpret(text)
}

// Evaluate returns the full ranked outcome of req for the caller in ctx.
func (s *Service) Evaluate(ctx context.Context, req *request.Request) (Outcome, error) {
	start := time.Now()

	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("load snapshot: %w", err)
	}

	var interp *nlq.Interpretation
	if req.Natural() {
		i := s.interp.Interpret(req.Text())
		interp = &i
	}

	actor := domain.ActorFromContext(ctx)
	out := Evaluate(&snap, req, interp, Visibility{Admin: actor.IsAdmin(), Now: s.now()})

	m := string(req.Mode())
	metrics.SearchResults.WithLabelValues(m).Observe(float64(len(out.Hits)))
	metrics.SearchDuration.WithLabelValues(m).Observe(time.Since(start).Seconds())
	for reason, n := range out.Excluded {
		metrics.SearchExcludedTotal.WithLabelValues(string(reason)).Add(float64(n))
	}

	logger.FromContext(ctx).Debug("search evaluated",
		zap.String("mode", m),
		zap.Int("candidates", out.Candidates),
		zap.Int("hits", len(out.Hits)),
		zap.Bool("admin", actor.IsAdmin()),
	)
	return out, nil
}

// Search evaluates req and cuts the requested page of the chosen view.
func (s *Service) Search(ctx context.Context, req *request.Request, opts Options) (Response, error) {
	view := opts.View
	if !view.IsValid() {
		view = mode.Products
	}
	metrics.SearchRequestsTotal.WithLabelValues(string(req.Mode()), string(view)).Inc()

	out, err := s.Evaluate(ctx, req)
	if err != nil {
		return Response{}, err
	}

	groups := out.Groups()
	resp := Response{
		View:           view,
		Interpretation: out.Interpretation,
		TotalHits:      len(out.Hits),
		TotalVendors:   len(groups),
	}

	switch view {
	case mode.Vendors:
		resp.Page = page.PaginateWindow(len(groups), s.pageSize, opts.Page, s.pageWindow)
		resp.Groups = page.Slice(groups, resp.Page)
	default:
		resp.Page = page.PaginateWindow(len(out.Hits), s.pageSize, opts.Page, s.pageWindow)
		resp.Hits = page.Slice(out.Hits, resp.Page)
	}
	return resp, nil
}
