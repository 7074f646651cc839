package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/estimatecheck/marketplace/internal/domain"
)

// ProductInput holds the editable fields of a product.
// Nil prices mean the price is given on inquiry.
type ProductInput struct {
	Name     string
	Category string
	Tags     []string
	Desc     string
	PriceMin *int64
	PriceMax *int64
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}
	if (in.PriceMin != nil && *in.PriceMin < 0) || (in.PriceMax != nil && *in.PriceMax < 0) {
		return fmt.Errorf("%w: prices must not be negative", domain.ErrInvalidInput)
	}
	if in.PriceMin != nil && in.PriceMax != nil && *in.PriceMin > *in.PriceMax {
		return fmt.Errorf("%w: priceMin exceeds priceMax", domain.ErrInvalidInput)
	}
	return nil
}

// apply copies the input onto p and recomputes its keywords.
func (in ProductInput) apply(p *domain.Product) {
	p.Name = strings.TrimSpace(in.Name)
	p.Category = strings.TrimSpace(in.Category)
	if p.Category == "" {
		p.Category = domain.DefaultCategory
	}
	p.Desc = strings.TrimSpace(in.Desc)
	p.Tags = make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		if t = strings.TrimSpace(t); t != "" {
			p.Tags = append(p.Tags, t)
		}
	}
	p.PriceMin = clonePrice(in.PriceMin)
	p.PriceMax = clonePrice(in.PriceMax)
	p.RefreshKeywords()
}

func clonePrice(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// sellerVendor resolves the caller's vendor and rejects sanctioned ones.
func (s *Service) sellerVendor(snap *domain.Snapshot, a domain.Actor) (*domain.Vendor, error) {
	i, err := ownVendor(snap, a)
	if err != nil {
		return nil, err
	}
	v := &snap.Vendors[i]
	if v.BlockedAt(s.now()) {
		return nil, fmt.Errorf("vendor %s: %w", v.ID, domain.ErrVendorBlocked)
	}
	return v, nil
}

// CreateProduct lists a new product under the caller's vendor.
func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (domain.Product, error) {
	a, err := requireSignedIn(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	var created domain.Product
	err = s.mutate(ctx, "create_product", func(snap domain.Snapshot) (domain.Snapshot, error) {
		v, err := s.sellerVendor(&snap, a)
		if err != nil {
			return snap, err
		}
		created = domain.Product{ID: s.newID("product"), VendorID: v.ID}
		in.apply(&created)
		snap.Products = append(slices.Clone(snap.Products), created)
		return snap, nil
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

// UpdateProduct replaces the editable fields of one of the caller's products.
func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (domain.Product, error) {
	a, err := requireSignedIn(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	var updated domain.Product
	err = s.mutate(ctx, "update_product", func(snap domain.Snapshot) (domain.Snapshot, error) {
		v, err := s.sellerVendor(&snap, a)
		if err != nil {
			return snap, err
		}
		i := slices.IndexFunc(snap.Products, func(p domain.Product) bool {
			return p.ID == id && p.VendorID == v.ID
		})
		if i < 0 {
			return snap, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
		}

		p := snap.Products[i].Clone()
		in.apply(&p)
		snap.Products = slices.Clone(snap.Products)
		snap.Products[i] = p
		updated = p
		return snap, nil
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// DeleteProduct removes one of the caller's products.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	a, err := requireSignedIn(ctx)
	if err != nil {
		return err
	}

	err = s.mutate(ctx, "delete_product", func(snap domain.Snapshot) (domain.Snapshot, error) {
		v, err := s.sellerVendor(&snap, a)
		if err != nil {
			return snap, err
		}
		n := len(snap.Products)
		snap.Products = slices.DeleteFunc(slices.Clone(snap.Products), func(p domain.Product) bool {
			return p.ID == id && p.VendorID == v.ID
		})
		if len(snap.Products) == n {
			return snap, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
		}
		return snap, nil
	})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
