package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/estimatecheck/marketplace/internal/domain/search/mode"
)

// MaxQueryLength is the maximum accepted length of a free-text term, in runes.
const MaxQueryLength = 512

// Request is a normalized search query. It is ephemeral and never persisted.
type Request struct {
	text       string
	vendorText string
	searchMode mode.Mode
	category   string
	vendorID   string
	minRating  float64
}

// New normalizes search parameters. It never fails: an unknown mode falls
// back to exact matching and blank strings mean "no constraint".
// A non-positive minRating disables the rating constraint.
func New(text, vendorText string, m mode.Mode, category, vendorID string, minRating float64) Request {
	if !m.IsValid() {
		m = mode.Exact
	}
	return Request{
		text:       strings.TrimSpace(text),
		vendorText: strings.TrimSpace(vendorText),
		searchMode: m,
		category:   strings.TrimSpace(category),
		vendorID:   strings.TrimSpace(vendorID),
		minRating:  minRating,
	}
}

// CheckLength rejects free-text terms longer than MaxQueryLength.
// Transports call it before New; the search core itself accepts anything.
func CheckLength(text string) error {
	if n := utf8.RuneCountInString(text); n > MaxQueryLength {
		return fmt.Errorf("query too long (%d runes, max %d)", n, MaxQueryLength)
	}
	return nil
}

// Text returns the free-text product term.
func (r *Request) Text() string { return r.text }

// VendorText returns the vendor-name term.
func (r *Request) VendorText() string { return r.vendorText }

// Mode returns the interpretation strategy.
func (r *Request) Mode() mode.Mode { return r.searchMode }

// Natural reports whether the dictionary interpreter should run.
// An empty text has nothing to interpret.
func (r *Request) Natural() bool { return r.searchMode == mode.Natural && r.text != "" }

// Category returns the explicit category constraint ("" for none).
func (r *Request) Category() string { return r.category }

// VendorID returns the explicit vendor constraint ("" for none).
func (r *Request) VendorID() string { return r.vendorID }

// MinRating returns the minimum vendor rating (<= 0 for none).
func (r *Request) MinRating() float64 { return r.minRating }
