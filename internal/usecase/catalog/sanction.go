package catalog

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/estimatecheck/marketplace/internal/domain"
)

// Preset sanction lengths offered to administrators, in days.
const (
	SanctionWeek  = 7
	SanctionMonth = 30
)

// SanctionVendor blocks a vendor for the given number of days, or
// indefinitely when days is nil. Administrators only.
func (s *Service) SanctionVendor(ctx context.Context, vendorID string, days *int) (domain.Vendor, error) {
	if err := requireAdmin(ctx); err != nil {
		return domain.Vendor{}, fmt.Errorf("sanction vendor: %w", err)
	}
	if days != nil && *days <= 0 {
		return domain.Vendor{}, fmt.Errorf("sanction vendor: %w: days must be positive", domain.ErrInvalidInput)
	}

	v, err := s.setSanction(ctx, "sanction_vendor", vendorID, func(v *domain.Vendor) {
		v.Status = domain.VendorBlocked
		v.BlockedUntil = nil
		if days != nil {
			until := s.now().UTC().Add(time.Duration(*days) * 24 * time.Hour)
			v.BlockedUntil = &until
		}
	})
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("sanction vendor: %w", err)
	}
	return v, nil
}

// ClearVendorSanction lifts a vendor's sanction. Administrators only.
func (s *Service) ClearVendorSanction(ctx context.Context, vendorID string) (domain.Vendor, error) {
	if err := requireAdmin(ctx); err != nil {
		return domain.Vendor{}, fmt.Errorf("clear vendor sanction: %w", err)
	}

	v, err := s.setSanction(ctx, "clear_sanction", vendorID, func(v *domain.Vendor) {
		v.Status = domain.VendorActive
		v.BlockedUntil = nil
	})
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("clear vendor sanction: %w", err)
	}
	return v, nil
}

func (s *Service) setSanction(
	ctx context.Context, op, vendorID string, change func(*domain.Vendor),
) (domain.Vendor, error) {
	var updated domain.Vendor
	err := s.mutate(ctx, op, func(snap domain.Snapshot) (domain.Snapshot, error) {
		i := slices.IndexFunc(snap.Vendors, func(v domain.Vendor) bool { return v.ID == vendorID })
		if i < 0 {
			return snap, fmt.Errorf("vendor %s: %w", vendorID, domain.ErrVendorNotFound)
		}
		v := snap.Vendors[i].Clone()
		change(&v)
		snap.Vendors = slices.Clone(snap.Vendors)
		snap.Vendors[i] = v
		updated = v
		return snap, nil
	})
	if err != nil {
		return domain.Vendor{}, err
	}
	return updated, nil
}
