package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/estimatecheck/marketplace/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestSanctionVendor(t *testing.T) {
	tests := []struct {
		name  string
		days  *int
		until *time.Time
	}{
		{"week", intPtr(SanctionWeek), timePtr(testNow.Add(7 * 24 * time.Hour))},
		{"month", intPtr(SanctionMonth), timePtr(testNow.Add(30 * 24 * time.Hour))},
		{"indefinite", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(fixture())

			v, err := svc.SanctionVendor(as(admin), "v-own", tt.days)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Status != domain.VendorBlocked {
				t.Errorf("status = %q, want blocked", v.Status)
			}
			switch {
			case tt.until == nil && v.BlockedUntil != nil:
				t.Errorf("indefinite sanction has expiry %v", v.BlockedUntil)
			case tt.until != nil && (v.BlockedUntil == nil || !v.BlockedUntil.Equal(*tt.until)):
				t.Errorf("BlockedUntil = %v, want %v", v.BlockedUntil, tt.until)
			}
			if !repo.snap.Vendors[0].BlockedAt(testNow) {
				t.Error("sanction not persisted")
			}
		})
	}
}

func TestSanctionVendor_Rejections(t *testing.T) {
	svc, _ := newService(fixture())

	if _, err := svc.SanctionVendor(context.Background(), "v-own", nil); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("anonymous: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.SanctionVendor(as(seller), "v-other", nil); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("seller: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.SanctionVendor(as(admin), "v-own", intPtr(0)); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("zero days: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.SanctionVendor(as(admin), "missing", nil); !errors.Is(err, domain.ErrVendorNotFound) {
		t.Errorf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestClearVendorSanction(t *testing.T) {
	svc, repo := newService(fixture())
	if _, err := svc.SanctionVendor(as(admin), "v-own", intPtr(7)); err != nil {
		t.Fatalf("sanction: %v", err)
	}

	if _, err := svc.ClearVendorSanction(as(buyer), "v-own"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("buyer: expected ErrForbidden, got %v", err)
	}

	v, err := svc.ClearVendorSanction(as(admin), "v-own")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Status != domain.VendorActive || v.BlockedUntil != nil {
		t.Errorf("sanction not cleared: %+v", v)
	}
	if repo.snap.Vendors[0].BlockedAt(testNow) {
		t.Error("cleared sanction not persisted")
	}

	// The seller can list products again.
	if _, err := svc.CreateProduct(as(seller), ProductInput{Name: "모터"}); err != nil {
		t.Errorf("create after clear: %v", err)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
