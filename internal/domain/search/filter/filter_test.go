package filter

import (
	"testing"
	"time"

	"github.com/estimatecheck/marketplace/internal/domain"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func listing() (*domain.Product, *domain.Vendor) {
	v := &domain.Vendor{
		ID:          "v1",
		CompanyName: "대한모터",
		Categories:  []string{"기계", "전기"},
		AvgRating:   4.2,
		Status:      domain.VendorActive,
	}
	p := &domain.Product{ID: "p1", VendorID: "v1", Name: "모터", Category: "공구"}
	return p, v
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     Reason
		ok       bool
	}{
		{"no constraints", Criteria{}, "", true},
		{"product category", Criteria{Category: "공구"}, "", true},
		{"vendor category", Criteria{Category: "전기"}, "", true},
		{"category miss", Criteria{Category: "건축"}, ReasonCategory, false},
		{"unknown category", Criteria{Category: "우주"}, ReasonCategory, false},
		{"inferred any", Criteria{InferredCategories: []string{"건축", "전기"}}, "", true},
		{"inferred miss", Criteria{InferredCategories: []string{"건축", "계장"}}, ReasonInferredCategory, false},
		{"vendor id", Criteria{VendorID: "v1"}, "", true},
		{"vendor id miss", Criteria{VendorID: "v2"}, ReasonVendorID, false},
		{"min rating equal", Criteria{MinRating: 4.2}, "", true},
		{"min rating above", Criteria{MinRating: 4.3}, ReasonMinRating, false},
		{"min rating out of range", Criteria{MinRating: 6}, ReasonMinRating, false},
		{"negative min rating ignored", Criteria{MinRating: -1}, "", true},
		{"first failure wins", Criteria{Category: "건축", VendorID: "v2"}, ReasonCategory, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, v := listing()
			got, ok := tt.criteria.Apply(p, v)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("reason = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_MissingVendor(t *testing.T) {
	p, _ := listing()
	reason, ok := Criteria{}.Apply(p, nil)
	if ok || reason != ReasonVendorMissing {
		t.Fatalf("got (%q, %v), want vendor_missing", reason, ok)
	}
}

func TestApply_Visibility(t *testing.T) {
	tests := []struct {
		name    string
		until   *time.Time
		admin   bool
		visible bool
	}{
		{"indefinite block hidden", nil, false, false},
		{"indefinite block admin", nil, true, true},
		{"future block hidden", timePtr(now.Add(24 * time.Hour)), false, false},
		{"future block admin", timePtr(now.Add(24 * time.Hour)), true, true},
		{"expired block visible", timePtr(now.Add(-time.Second)), false, true},
		{"expiry at now visible", timePtr(now), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, v := listing()
			v.Status = domain.VendorBlocked
			v.BlockedUntil = tt.until

			reason, ok := Criteria{Admin: tt.admin, Now: now}.Apply(p, v)
			if ok != tt.visible {
				t.Fatalf("visible = %v, want %v", ok, tt.visible)
			}
			if !ok && reason != ReasonBlocked {
				t.Errorf("reason = %q, want blocked", reason)
			}
		})
	}
}

func TestApply_MinRatingMonotonic(t *testing.T) {
	ratings := []float64{0, 1.5, 3, 3.9, 4, 4.5, 5}
	thresholds := []float64{0, 1, 2, 3, 3.9, 4, 4.5, 5, 5.5}

	for _, r := range ratings {
		prev := true
		for _, th := range thresholds {
			p, v := listing()
			v.AvgRating = r
			_, ok := Criteria{MinRating: th}.Apply(p, v)
			if ok && !prev {
				t.Fatalf("rating %v: included at %v after exclusion at a lower threshold", r, th)
			}
			prev = ok
		}
	}
}

func TestReasons(t *testing.T) {
	seen := map[Reason]bool{}
	for _, r := range Reasons() {
		if r == "" || seen[r] {
			t.Fatalf("bad reason list: %v", Reasons())
		}
		seen[r] = true
	}
}
