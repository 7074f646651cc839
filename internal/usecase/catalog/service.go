// Package catalog implements the store mutations behind the search core:
// vendor profiles, products, reviews, quotes and account sanctions.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/logger"
	"github.com/estimatecheck/marketplace/internal/metrics"
)

// DefaultCompanyName is used when a seller registers without a name.
const DefaultCompanyName = "신규 업체"

// Service serializes catalog mutations and persists the whole snapshot
// after each one.
type Service struct {
	repo  Repository
	mu    sync.Mutex
	now   func() time.Time
	newID func(prefix string) string

	pageSize   int
	pageWindow int
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: newID,
	}
}

// WithClock sets the time source for review timestamps and sanction expiry.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDGenerator replaces the entity id generator.
func (s *Service) WithIDGenerator(gen func(prefix string) string) *Service {
	s.newID = gen
	return s
}

// WithPagination sets the vendor list page size and navigation window.
func (s *Service) WithPagination(size, window int) *Service {
	s.pageSize = size
	s.pageWindow = window
	return s
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// mutate loads the snapshot, applies fn and saves the result, holding the
// service lock throughout. fn returns the snapshot to persist. A signed-in
// caller is enrolled first, so sanctioned accounts cannot change anything.
func (s *Service) mutate(ctx context.Context, op string, fn func(domain.Snapshot) (domain.Snapshot, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.mutateLocked(ctx, fn)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.CatalogMutationsTotal.WithLabelValues(op, status).Inc()

	if err != nil {
		logger.FromContext(ctx).Debug("catalog mutation rejected", zap.String("op", op), zap.Error(err))
		return err
	}
	logger.FromContext(ctx).Info("catalog mutation", zap.String("op", op))
	return nil
}

func (s *Service) mutateLocked(ctx context.Context, fn func(domain.Snapshot) (domain.Snapshot, error)) error {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if a := domain.ActorFromContext(ctx); !a.IsAnonymous() {
		if snap, err = s.enroll(snap, a); err != nil {
			return err
		}
	}
	next, err := fn(snap)
	if err != nil {
		return err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func requireSignedIn(ctx context.Context) (domain.Actor, error) {
	a := domain.ActorFromContext(ctx)
	if a.IsAnonymous() {
		return a, domain.ErrUnauthenticated
	}
	return a, nil
}

func requireAdmin(ctx context.Context) error {
	a, err := requireSignedIn(ctx)
	if err != nil {
		return err
	}
	if !a.IsAdmin() {
		return fmt.Errorf("%w: administrator role required", domain.ErrForbidden)
	}
	return nil
}

// ownVendor returns the index of the caller's vendor in snap.Vendors.
func ownVendor(snap *domain.Snapshot, a domain.Actor) (int, error) {
	if a.Role != domain.RoleSeller {
		return -1, fmt.Errorf("%w: seller role required", domain.ErrForbidden)
	}
	for i := range snap.Vendors {
		if snap.Vendors[i].OwnerUserID == a.UserID {
			return i, nil
		}
	}
	return -1, domain.ErrVendorNotFound
}

func normalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return []string{domain.DefaultCategory}
	}
	return out
}

func trimContact(c domain.Contact) domain.Contact {
	return domain.Contact{
		Phone: strings.TrimSpace(c.Phone),
		Email: strings.TrimSpace(c.Email),
		Kakao: strings.TrimSpace(c.Kakao),
	}
}
