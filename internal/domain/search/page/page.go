// Package page splits a ranked list into pages and builds a compact
// page-navigation list.
package page

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	// DefaultSize is the number of entries per page.
	DefaultSize = 9
	// DefaultWindow is the number of consecutive page numbers shown
	// around the current page.
	DefaultWindow = 5
)

const ellipsisLabel = "ellipsis"

// Item is a navigation entry: a page number or a gap marker.
type Item struct {
	Number   int
	Ellipsis bool
}

// Num returns a page-number item.
func Num(n int) Item { return Item{Number: n} }

// Gap returns an ellipsis item.
func Gap() Item { return Item{Ellipsis: true} }

func (it Item) String() string {
	if it.Ellipsis {
		return "..."
	}
	return strconv.Itoa(it.Number)
}

// MarshalJSON encodes a page number as a JSON number and a gap as "ellipsis".
func (it Item) MarshalJSON() ([]byte, error) {
	if it.Ellipsis {
		return json.Marshal(ellipsisLabel)
	}
	return json.Marshal(it.Number)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (it *Item) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != ellipsisLabel {
			return fmt.Errorf("unknown page item %q", s)
		}
		*it = Gap()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode page item: %w", err)
	}
	*it = Num(n)
	return nil
}

// Page describes the current page of a result list.
type Page struct {
	Current int `json:"current"`
	Count   int `json:"count"`
	// Total is the number of entries across all pages.
	Total int    `json:"total"`
	Size  int    `json:"size"`
	Items []Item `json:"items"`
	// Offset and Limit bound the current page's entries in the full list.
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Paginate uses the default window.
func Paginate(total, size, requested int) Page {
	return PaginateWindow(total, size, requested, DefaultWindow)
}

// PaginateWindow clamps requested into [1, Count] and builds the navigation
// items. Non-positive size or window fall back to the defaults.
func PaginateWindow(total, size, requested, window int) Page {
	if size <= 0 {
		size = DefaultSize
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if total < 0 {
		total = 0
	}

	count := max(1, (total+size-1)/size)
	current := min(max(requested, 1), count)

	offset := min((current-1)*size, total)
	return Page{
		Current: current,
		Count:   count,
		Total:   total,
		Size:    size,
		Items:   Items(current, count, window),
		Offset:  offset,
		Limit:   min(size, total-offset),
	}
}

// Items lists the page numbers to show for current out of count pages.
// Short lists are shown in full. Longer lists keep the first and last page
// and a run of window pages around current, with a gap marker wherever
// pages are skipped.
func Items(current, count, window int) []Item {
	if count <= window+2 {
		items := make([]Item, count)
		for i := range items {
			items[i] = Num(i + 1)
		}
		return items
	}

	start := max(2, current-window/2)
	end := min(count-1, start+window-1)
	start = max(2, end-window+1)

	items := make([]Item, 0, window+4)
	items = append(items, Num(1))
	if start > 2 {
		items = append(items, Gap())
	}
	for p := start; p <= end; p++ {
		items = append(items, Num(p))
	}
	if end < count-1 {
		items = append(items, Gap())
	}
	return append(items, Num(count))
}

// Slice returns the entries of list on page p.
func Slice[T any](list []T, p Page) []T {
	if p.Offset >= len(list) {
		return nil
	}
	end := min(p.Offset+p.Limit, len(list))
	return list[p.Offset:end]
}
