package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/estimatecheck/marketplace/internal/domain"
)

// MaxQuoteItems caps the number of lines in one quote.
const MaxQuoteItems = 100

func normalizeQuoteItems(items []domain.QuoteItem) ([]domain.QuoteItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one quote item is required", domain.ErrInvalidInput)
	}
	if len(items) > MaxQuoteItems {
		return nil, fmt.Errorf("%w: at most %d quote items", domain.ErrInvalidInput, MaxQuoteItems)
	}

	out := make([]domain.QuoteItem, len(items))
	for i, it := range items {
		it.ProductID = strings.TrimSpace(it.ProductID)
		it.ProductName = strings.TrimSpace(it.ProductName)
		it.Category = strings.TrimSpace(it.Category)
		it.Detail = strings.TrimSpace(it.Detail)
		it.Memo = strings.TrimSpace(it.Memo)
		if it.ProductName == "" {
			return nil, fmt.Errorf("%w: items[%d]: product name is required", domain.ErrInvalidInput, i)
		}
		if it.Qty < 1 {
			return nil, fmt.Errorf("%w: items[%d]: quantity must be at least 1", domain.ErrInvalidInput, i)
		}
		if (it.UnitPriceMin != nil && *it.UnitPriceMin < 0) || (it.UnitPriceMax != nil && *it.UnitPriceMax < 0) {
			return nil, fmt.Errorf("%w: items[%d]: prices must not be negative", domain.ErrInvalidInput, i)
		}
		if it.UnitPriceMin != nil && it.UnitPriceMax != nil && *it.UnitPriceMin > *it.UnitPriceMax {
			return nil, fmt.Errorf("%w: items[%d]: unit price min exceeds max", domain.ErrInvalidInput, i)
		}
		it.UnitPriceMin = clonePrice(it.UnitPriceMin)
		it.UnitPriceMax = clonePrice(it.UnitPriceMax)
		out[i] = it
	}
	return out, nil
}

// requireQuoter resolves a caller allowed to keep quotes: a signed-in
// buyer or seller.
func requireQuoter(ctx context.Context) (domain.Actor, error) {
	a, err := requireSignedIn(ctx)
	if err != nil {
		return a, err
	}
	if a.Role != domain.RoleBuyer && a.Role != domain.RoleSeller {
		return a, fmt.Errorf("%w: buyer or seller role required", domain.ErrForbidden)
	}
	return a, nil
}

// SaveQuote stores a new quote for the caller.
func (s *Service) SaveQuote(ctx context.Context, items []domain.QuoteItem) (domain.Quote, error) {
	a, err := requireQuoter(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("save quote: %w", err)
	}
	lines, err := normalizeQuoteItems(items)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("save quote: %w", err)
	}

	var created domain.Quote
	err = s.mutate(ctx, "save_quote", func(snap domain.Snapshot) (domain.Snapshot, error) {
		created = domain.Quote{
			ID:          s.newID("quote"),
			BuyerUserID: a.UserID,
			Items:       lines,
			CreatedAt:   s.now().UTC(),
		}
		snap.Quotes = append(slices.Clone(snap.Quotes), created)
		return snap, nil
	})
	if err != nil {
		return domain.Quote{}, fmt.Errorf("save quote: %w", err)
	}
	return created.Clone(), nil
}

// UpdateQuote replaces the items of one of the caller's quotes and
// refreshes its timestamp.
func (s *Service) UpdateQuote(ctx context.Context, id string, items []domain.QuoteItem) (domain.Quote, error) {
	a, err := requireQuoter(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("update quote: %w", err)
	}
	lines, err := normalizeQuoteItems(items)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("update quote: %w", err)
	}

	var updated domain.Quote
	err = s.mutate(ctx, "update_quote", func(snap domain.Snapshot) (domain.Snapshot, error) {
		i := slices.IndexFunc(snap.Quotes, func(q domain.Quote) bool { return q.ID == id })
		if i < 0 {
			return snap, fmt.Errorf("quote %s: %w", id, domain.ErrQuoteNotFound)
		}
		if snap.Quotes[i].BuyerUserID != a.UserID {
			return snap, fmt.Errorf("%w: quote %s belongs to another user", domain.ErrForbidden, id)
		}

		q := snap.Quotes[i].Clone()
		q.Items = lines
		q.CreatedAt = s.now().UTC()
		snap.Quotes = slices.Clone(snap.Quotes)
		snap.Quotes[i] = q
		updated = q
		return snap, nil
	})
	if err != nil {
		return domain.Quote{}, fmt.Errorf("update quote: %w", err)
	}
	return updated.Clone(), nil
}

// Quotes returns the caller's quotes, newest first.
func (s *Service) Quotes(ctx context.Context) ([]domain.Quote, error) {
	a, err := requireQuoter(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	quotes := snap.QuotesOf(a.UserID)
	slices.SortStableFunc(quotes, func(x, y domain.Quote) int {
		return y.CreatedAt.Compare(x.CreatedAt)
	})
	return quotes, nil
}
