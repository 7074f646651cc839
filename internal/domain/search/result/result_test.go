package result

import (
	"testing"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/score"
)

func hit(vendorID string, total int) Hit {
	return New(
		domain.Product{ID: "p-" + vendorID, VendorID: vendorID},
		domain.Vendor{ID: vendorID},
		score.Score{Product: total},
	)
}

func TestGroup_Add(t *testing.T) {
	var g Group
	g.Add(hit("v1", 0))
	if g.BestScore != 0 {
		t.Fatalf("BestScore = %d, want 0", g.BestScore)
	}
	g.Add(hit("v1", 3))
	g.Add(hit("v1", 1))
	if g.BestScore != 3 {
		t.Errorf("BestScore = %d, want 3", g.BestScore)
	}
	if len(g.Items) != 3 {
		t.Errorf("len(Items) = %d, want 3", len(g.Items))
	}
}

func TestVendorIDs(t *testing.T) {
	ids := VendorIDs([]Hit{hit("v2", 1), hit("v1", 1), hit("v2", 0)})
	if len(ids) != 2 || ids[0] != "v2" || ids[1] != "v1" {
		t.Fatalf("VendorIDs = %v, want [v2 v1]", ids)
	}
	if VendorIDs(nil) != nil {
		t.Error("VendorIDs(nil) should be nil")
	}
}

func TestHit_Total(t *testing.T) {
	h := New(domain.Product{}, domain.Vendor{}, score.Score{Product: 2, Vendor: 1})
	if h.Total() != 3 {
		t.Errorf("Total = %d, want 3", h.Total())
	}
}
