package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/result"
	"github.com/estimatecheck/marketplace/internal/domain/search/score"
)

func hit(productID, vendorID string, total int, rating float64, sample bool) result.Hit {
	return result.New(
		domain.Product{ID: productID, VendorID: vendorID},
		domain.Vendor{ID: vendorID, AvgRating: rating, IsSample: sample},
		score.Score{Product: total},
	)
}

func productIDs(hits []result.Hit) []string {
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.Product.ID
	}
	return ids
}

func TestSort(t *testing.T) {
	hits := []result.Hit{
		hit("sample-high", "s1", 9, 5, true),
		hit("low", "v1", 1, 4.9, false),
		hit("high-rated", "v2", 3, 4.5, false),
		hit("high", "v3", 3, 3.0, false),
		hit("sample-low", "s2", 0, 1, true),
		hit("tie-a", "v4", 2, 4.0, false),
		hit("tie-b", "v5", 2, 4.0, false),
	}
	Sort(hits)

	assert.Equal(t,
		[]string{"high-rated", "high", "tie-a", "tie-b", "low", "sample-high", "sample-low"},
		productIDs(hits))
}

func TestSort_SampleLast(t *testing.T) {
	hits := []result.Hit{
		hit("s1", "s", 100, 5, true),
		hit("a", "a", 0, 0, false),
		hit("s2", "s", 50, 5, true),
		hit("b", "b", 1, 1, false),
	}
	Sort(hits)

	seenSample := false
	for _, h := range hits {
		if h.Vendor.IsSample {
			seenSample = true
			continue
		}
		require.False(t, seenSample, "non-sample hit %s after a sample hit", h.Product.ID)
	}
}

func TestCompare_Equal(t *testing.T) {
	a := hit("a", "v", 2, 4, false)
	b := hit("b", "w", 2, 4, false)
	assert.Zero(t, Compare(a, b))
}

func TestGroup(t *testing.T) {
	hits := []result.Hit{
		hit("p1", "v1", 2, 3.0, false),
		hit("p2", "v2", 4, 4.0, false),
		hit("p3", "v1", 5, 3.0, false),
		hit("p4", "s1", 9, 5.0, true),
		hit("p5", "v3", 4, 4.8, false),
	}
	Sort(hits)
	groups := Group(hits)

	require.Len(t, groups, 4)
	assert.Equal(t, "v1", groups[0].Vendor.ID)
	assert.Equal(t, 5, groups[0].BestScore)
	assert.Equal(t, []string{"p3", "p1"}, productIDs(groups[0].Items))
	assert.Equal(t, "v3", groups[1].Vendor.ID)
	assert.Equal(t, "v2", groups[2].Vendor.ID)
	assert.Equal(t, "s1", groups[3].Vendor.ID)
}

func TestGroup_SameVendorsAsFlat(t *testing.T) {
	hits := []result.Hit{
		hit("p1", "v1", 1, 1, false),
		hit("p2", "v2", 1, 2, true),
		hit("p3", "v3", 0, 3, false),
		hit("p4", "v2", 2, 2, true),
		hit("p5", "v1", 3, 1, false),
	}
	Sort(hits)
	groups := Group(hits)

	var grouped []string
	total := 0
	for _, g := range groups {
		grouped = append(grouped, g.Vendor.ID)
		total += len(g.Items)
	}
	assert.ElementsMatch(t, result.VendorIDs(hits), grouped)
	assert.Equal(t, len(hits), total)
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, Group(nil))
}
