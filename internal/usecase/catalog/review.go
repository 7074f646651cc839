package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/estimatecheck/marketplace/internal/domain"
)

// AddReview rates a vendor as the caller and refreshes the vendor's stats.
// Administrators cannot review, and sanctioned vendors cannot be reviewed.
func (s *Service) AddReview(ctx context.Context, vendorID string, rating int, text string) (domain.Review, error) {
	a, err := requireSignedIn(ctx)
	if err != nil {
		return domain.Review{}, err
	}
	if a.IsAdmin() {
		return domain.Review{}, fmt.Errorf("%w: administrators cannot write reviews", domain.ErrForbidden)
	}

	var created domain.Review
	err = s.mutate(ctx, "add_review", func(snap domain.Snapshot) (domain.Snapshot, error) {
		v, ok := snap.FindVendor(vendorID)
		if !ok {
			return snap, fmt.Errorf("vendor %s: %w", vendorID, domain.ErrVendorNotFound)
		}
		if v.BlockedAt(s.now()) {
			return snap, fmt.Errorf("vendor %s: %w", vendorID, domain.ErrVendorBlocked)
		}
		if !domain.ValidRating(rating) {
			return snap, domain.ErrInvalidRating
		}

		created = domain.Review{
			ID:             s.newID("review"),
			VendorID:       vendorID,
			ReviewerUserID: a.UserID,
			ReviewerRole:   a.Role,
			Rating:         rating,
			Text:           strings.TrimSpace(text),
			CreatedAt:      s.now().UTC(),
		}
		snap.Reviews = append(slices.Clone(snap.Reviews), created)
		return domain.RecalcVendorStats(snap, vendorID), nil
	})
	if err != nil {
		return domain.Review{}, fmt.Errorf("add review: %w", err)
	}
	return created, nil
}

// DeleteReview removes a review. Administrators only.
func (s *Service) DeleteReview(ctx context.Context, reviewID string) error {
	if err := requireAdmin(ctx); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	err := s.mutate(ctx, "delete_review", func(snap domain.Snapshot) (domain.Snapshot, error) {
		i := slices.IndexFunc(snap.Reviews, func(r domain.Review) bool { return r.ID == reviewID })
		if i < 0 {
			return snap, fmt.Errorf("review %s: %w", reviewID, domain.ErrNotFound)
		}
		vendorID := snap.Reviews[i].VendorID
		snap.Reviews = slices.Delete(slices.Clone(snap.Reviews), i, i+1)
		return domain.RecalcVendorStats(snap, vendorID), nil
	})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
