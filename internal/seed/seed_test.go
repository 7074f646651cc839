package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estimatecheck/marketplace/internal/domain"
)

func TestSnapshot_Consistent(t *testing.T) {
	snap, err := Snapshot()
	require.NoError(t, err)
	require.NotEmpty(t, snap.Vendors)
	require.NotEmpty(t, snap.Products)

	idx := snap.VendorIndex()
	for _, v := range snap.Vendors {
		assert.True(t, v.IsSample, "vendor %s", v.ID)
		assert.NotEmpty(t, v.Categories, "vendor %s", v.ID)
		assert.Equal(t, domain.VendorActive, v.Status)
	}
	for _, p := range snap.Products {
		_, ok := idx[p.VendorID]
		assert.True(t, ok, "product %s references unknown vendor %s", p.ID, p.VendorID)

		want := domain.ProductKeywords(p.Name, p.Desc, p.Tags, p.Category)
		assert.ElementsMatch(t, want, p.Keywords, "product %s keywords", p.ID)
	}
	for _, r := range snap.Reviews {
		assert.True(t, domain.ValidRating(r.Rating), "review %s", r.ID)
		_, ok := snap.FindUser(r.ReviewerUserID)
		assert.True(t, ok, "review %s has no reviewer account", r.ID)
	}
	for _, v := range snap.Vendors {
		u, ok := snap.FindUser(v.OwnerUserID)
		if assert.True(t, ok, "vendor %s has no owner account", v.ID) {
			assert.Equal(t, domain.RoleSeller, u.Role)
		}
	}
	for _, q := range snap.Quotes {
		_, ok := snap.FindUser(q.BuyerUserID)
		assert.True(t, ok, "quote %s has no owner account", q.ID)
		assert.NotEmpty(t, q.Items, "quote %s", q.ID)
	}
}

func TestSnapshot_StatsMatchReviews(t *testing.T) {
	snap := MustSnapshot()
	recalculated := domain.RecalcAllVendorStats(snap)
	for i, v := range snap.Vendors {
		assert.Equal(t, recalculated.Vendors[i].AvgRating, v.AvgRating, "vendor %s", v.ID)
		assert.Equal(t, recalculated.Vendors[i].ReviewCount, v.ReviewCount, "vendor %s", v.ID)
	}
}

func TestSnapshot_Fresh(t *testing.T) {
	a := MustSnapshot()
	a.Vendors[0].CompanyName = "changed"
	b := MustSnapshot()
	assert.NotEqual(t, "changed", b.Vendors[0].CompanyName)
}
