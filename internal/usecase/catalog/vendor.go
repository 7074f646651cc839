package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/filter"
	"github.com/estimatecheck/marketplace/internal/domain/search/page"
)

// VendorInput is the profile a seller registers with.
type VendorInput struct {
	CompanyName   string
	Categories    []string
	Contact       domain.Contact
	ContactPublic bool
}

// VendorPatch changes selected profile fields. Nil fields are left as is.
type VendorPatch struct {
	CompanyName   *string
	Categories    []string
	Contact       *domain.Contact
	ContactPublic *bool
}

// VendorsPage is one page of the vendor directory.
type VendorsPage struct {
	Vendors []domain.Vendor
	Page    page.Page
}

// VendorDetail is a vendor with its listings and reviews, newest first.
type VendorDetail struct {
	Vendor   domain.Vendor
	Products []domain.Product
	Reviews  []domain.Review
}

// RegisterVendor creates the caller's vendor. Each seller owns at most one.
func (s *Service) RegisterVendor(ctx context.Context, in VendorInput) (domain.Vendor, error) {
	a, err := requireSignedIn(ctx)
	if err != nil {
		return domain.Vendor{}, err
	}
	if a.Role != domain.RoleSeller {
		return domain.Vendor{}, fmt.Errorf("%w: seller role required", domain.ErrForbidden)
	}

	var created domain.Vendor
	err = s.mutate(ctx, "register_vendor", func(snap domain.Snapshot) (domain.Snapshot, error) {
		if _, ok := snap.VendorOwnedBy(a.UserID); ok {
			return snap, fmt.Errorf("vendor for user %s: %w", a.UserID, domain.ErrAlreadyExists)
		}

		name := strings.TrimSpace(in.CompanyName)
		if name == "" {
			name = DefaultCompanyName
		}
		created = domain.Vendor{
			ID:            s.newID("vendor"),
			OwnerUserID:   a.UserID,
			CompanyName:   name,
			Categories:    normalizeCategories(in.Categories),
			Contact:       trimContact(in.Contact),
			ContactPublic: in.ContactPublic,
			Status:        domain.VendorActive,
		}
		snap.Vendors = append(slices.Clone(snap.Vendors), created)
		return snap, nil
	})
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("register vendor: %w", err)
	}
	return created, nil
}

// UpdateVendorProfile applies patch to the caller's vendor. Identity,
// ownership, rating and sanction fields cannot be changed this way.
func (s *Service) UpdateVendorProfile(ctx context.Context, patch VendorPatch) (domain.Vendor, error) {
	a, err := requireSignedIn(ctx)
	if err != nil {
		return domain.Vendor{}, err
	}

	var updated domain.Vendor
	err = s.mutate(ctx, "update_vendor", func(snap domain.Snapshot) (domain.Snapshot, error) {
		i, err := ownVendor(&snap, a)
		if err != nil {
			return snap, err
		}

		v := snap.Vendors[i].Clone()
		if patch.CompanyName != nil {
			if name := strings.TrimSpace(*patch.CompanyName); name != "" {
				v.CompanyName = name
			}
		}
		if patch.Categories != nil {
			v.Categories = normalizeCategories(patch.Categories)
		}
		if patch.Contact != nil {
			v.Contact = trimContact(*patch.Contact)
		}
		if patch.ContactPublic != nil {
			v.ContactPublic = *patch.ContactPublic
		}

		snap.Vendors = slices.Clone(snap.Vendors)
		snap.Vendors[i] = v
		updated = v
		return snap, nil
	})
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("update vendor profile: %w", err)
	}
	return updated, nil
}

// ListVendors returns one page of vendors, optionally restricted to a
// category. Sanctioned vendors are listed for administrators only.
// Contacts are masked unless public or seen by their owner or an administrator.
func (s *Service) ListVendors(ctx context.Context, category string, pageNum int) (VendorsPage, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return VendorsPage{}, fmt.Errorf("list vendors: %w", err)
	}

	a := domain.ActorFromContext(ctx)
	now := s.now()
	category = strings.TrimSpace(category)

	var rows []domain.Vendor
	for i := range snap.Vendors {
		v := &snap.Vendors[i]
		if category != "" && !v.HasCategory(category) {
			continue
		}
		if !filter.Visible(v, a.IsAdmin(), now) {
			continue
		}
		rows = append(rows, v.PresentedTo(a))
	}

	p := page.PaginateWindow(len(rows), s.pageSize, pageNum, s.pageWindow)
	return VendorsPage{Vendors: page.Slice(rows, p), Page: p}, nil
}

// Vendor returns a vendor with its products and reviews.
// Non-administrators cannot view a sanctioned vendor.
func (s *Service) Vendor(ctx context.Context, id string) (VendorDetail, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return VendorDetail{}, fmt.Errorf("get vendor: %w", err)
	}

	v, ok := snap.FindVendor(id)
	if !ok {
		return VendorDetail{}, fmt.Errorf("vendor %s: %w", id, domain.ErrVendorNotFound)
	}
	a := domain.ActorFromContext(ctx)
	if !filter.Visible(v, a.IsAdmin(), s.now()) {
		return VendorDetail{}, fmt.Errorf("vendor %s: %w", id, domain.ErrVendorBlocked)
	}

	reviews := snap.ReviewsFor(id)
	slices.SortStableFunc(reviews, func(x, y domain.Review) int {
		return y.CreatedAt.Compare(x.CreatedAt)
	})

	return VendorDetail{
		Vendor:   v.PresentedTo(a),
		Products: snap.ProductsOf(id),
		Reviews:  reviews,
	}, nil
}
