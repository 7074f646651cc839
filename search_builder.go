package marketplace

import "context"

// SearchBuilder is a fluent builder for searches.
type SearchBuilder struct {
	client *Client
	query  Query
	opts   SearchOptions
}

// Find starts a search for text.
func (c *Client) Find(text string) *SearchBuilder {
	return &SearchBuilder{client: c, query: Query{Text: text}}
}

// Natural interprets the text as a conversational request.
func (b *SearchBuilder) Natural() *SearchBuilder {
	b.query.Natural = true
	return b
}

// Vendor adds a vendor name or category term.
func (b *SearchBuilder) Vendor(text string) *SearchBuilder {
	b.query.Vendor = text
	return b
}

// InCategory keeps vendors in category only.
func (b *SearchBuilder) InCategory(category string) *SearchBuilder {
	b.query.Category = category
	return b
}

// FromVendor keeps products of one vendor only.
func (b *SearchBuilder) FromVendor(id string) *SearchBuilder {
	b.query.VendorID = id
	return b
}

// MinRating drops vendors rated below r.
func (b *SearchBuilder) MinRating(r float64) *SearchBuilder {
	b.query.MinRating = r
	return b
}

// Page selects the 1-based result page.
func (b *SearchBuilder) Page(n int) *SearchBuilder {
	b.opts.Page = n
	return b
}

// GroupByVendor returns the vendor view.
func (b *SearchBuilder) GroupByVendor() *SearchBuilder {
	b.opts.View = ViewVendors
	return b
}

// AsAdmin searches as an administrator.
func (b *SearchBuilder) AsAdmin() *SearchBuilder {
	b.opts.Admin = true
	return b
}

// Do executes the search.
func (b *SearchBuilder) Do(ctx context.Context) (SearchResult, error) {
	return b.client.Search(ctx, b.query, b.opts)
}
