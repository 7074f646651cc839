// Package rank orders search hits deterministically.
package rank

import (
	"cmp"
	"slices"

	"github.com/estimatecheck/marketplace/internal/domain/search/result"
)

// Compare orders hits: real vendors before sample vendors, then higher total
// score, then higher vendor rating. Equal hits compare as 0.
func Compare(a, b result.Hit) int {
	if c := compareSample(a.Vendor.IsSample, b.Vendor.IsSample); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Total(), a.Total()); c != 0 {
		return c
	}
	return cmp.Compare(b.Vendor.AvgRating, a.Vendor.AvgRating)
}

// Sort orders hits in place by Compare. Ties keep their input order.
func Sort(hits []result.Hit) {
	slices.SortStableFunc(hits, Compare)
}

// Group collects hits by vendor. Items keep the order of hits, which should
// already be sorted. Groups are ordered like hits, using the best score.
func Group(hits []result.Hit) []result.Group {
	index := make(map[string]int)
	var groups []result.Group
	for _, h := range hits {
		i, ok := index[h.Vendor.ID]
		if !ok {
			i = len(groups)
			index[h.Vendor.ID] = i
			groups = append(groups, result.Group{Vendor: h.Vendor})
		}
		groups[i].Add(h)
	}

	slices.SortStableFunc(groups, func(a, b result.Group) int {
		if c := compareSample(a.Vendor.IsSample, b.Vendor.IsSample); c != 0 {
			return c
		}
		if c := cmp.Compare(b.BestScore, a.BestScore); c != 0 {
			return c
		}
		return cmp.Compare(b.Vendor.AvgRating, a.Vendor.AvgRating)
	})
	return groups
}

func compareSample(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
