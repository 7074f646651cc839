package marketplace

import (
	"context"
	"errors"
	"fmt"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/mode"
	"github.com/estimatecheck/marketplace/internal/domain/search/page"
	"github.com/estimatecheck/marketplace/internal/domain/search/request"
	"github.com/estimatecheck/marketplace/internal/logger"
	searchuc "github.com/estimatecheck/marketplace/internal/usecase/search"
)

// ErrQueryTooLong is returned for a search term over MaxQueryLength runes.
var ErrQueryTooLong = errors.New("marketplace: query too long")

// MaxQueryLength is the longest accepted search term, in runes.
const MaxQueryLength = request.MaxQueryLength

// sdkAdmin is the caller behind SearchOptions.Admin.
var sdkAdmin = domain.Actor{UserID: "sdk", Role: domain.RoleAdmin}

// Search ranks the catalog against q and returns the requested page.
// An unknown view falls back to ViewProducts.
func (c *Client) Search(ctx context.Context, q Query, opts SearchOptions) (SearchResult, error) {
	for _, s := range []string{q.Text, q.Vendor} {
		if err := request.CheckLength(s); err != nil {
			return SearchResult{}, fmt.Errorf("%w: %w", ErrQueryTooLong, err)
		}
	}

	var actor domain.Actor
	if opts.Admin {
		actor = sdkAdmin
	}
	ctx = domain.ContextWithActor(ctx, actor)
	ctx = logger.ContextWithLogger(ctx, c.cfg.logger)

	m := mode.Exact
	if q.Natural {
		m = mode.Natural
	}
	req := request.New(q.Text, q.Vendor, m, q.Category, q.VendorID, q.MinRating)

	resp, err := c.searchSvc.Search(ctx, &req, searchuc.Options{
		View: mode.View(opts.View),
		Page: opts.Page,
	})
	if err != nil {
		return SearchResult{}, fmt.Errorf("search: %w", err)
	}
	return fromResponse(&resp, actor), nil
}

// Interpret shows what a natural-language search would infer from text.
func (c *Client) Interpret(text string) Interpretation {
	return fromInterpretation(c.searchSvc.Interpret(text))
}

// Paginate splits total entries into pages of size and describes page
// requested, with at most window consecutive page links around it.
// Non-positive size or window use the defaults.
func Paginate(total, size, requested, window int) Pagination {
	return fromPage(page.PaginateWindow(total, size, requested, window))
}
