package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/estimatecheck/marketplace/internal/db"
	"github.com/estimatecheck/marketplace/internal/db/memory"
	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/seed"
)

const prefix = "marketplace:"

func oneVendor() (domain.Snapshot, error) {
	return domain.Snapshot{
		Vendors: []domain.Vendor{{ID: "v1", CompanyName: "Seeded", Categories: []string{"기계"}}},
	}, nil
}

func TestLoad_SeedsEmptyStore(t *testing.T) {
	s := newMockStore()
	r := New(s, prefix, oneVendor)

	snap, err := r.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Vendors) != 1 || snap.Vendors[0].ID != "v1" {
		t.Fatalf("expected seeded vendor, got %+v", snap.Vendors)
	}
	if _, ok := s.data[prefix+Key]; !ok {
		t.Error("expected seed to be persisted")
	}

	// Second load reads the stored document and does not write again.
	if _, err := r.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.sets != 1 {
		t.Errorf("expected 1 write, got %d", s.sets)
	}
}

func TestLoad_NilSeed(t *testing.T) {
	r := New(newMockStore(), prefix, nil)
	snap, err := r.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Vendors) != 0 {
		t.Errorf("expected empty snapshot, got %d vendors", len(snap.Vendors))
	}
}

func TestLoad_CorruptFallsBackToSeed(t *testing.T) {
	s := newMockStore()
	s.data[prefix+Key] = []byte("{not json")
	r := New(s, prefix, oneVendor)

	snap, err := r.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Vendors) != 1 {
		t.Fatalf("expected seed, got %+v", snap)
	}
	if string(s.data[prefix+Key]) != "{not json" {
		t.Error("corrupt document must be left in place")
	}
}

func TestLoad_StoreError(t *testing.T) {
	s := newMockStore()
	s.getFn = func(context.Context, string) ([]byte, error) {
		return nil, &db.Error{Op: db.OpGet, Err: errors.New("connection refused")}
	}
	r := New(s, prefix, oneVendor)

	if _, err := r.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if s.sets != 0 {
		t.Error("must not seed when the store is unreachable")
	}
}

func TestLoad_SeedSaveError(t *testing.T) {
	s := newMockStore()
	s.setFn = func(context.Context, string, []byte) error { return errors.New("read only") }
	r := New(s, prefix, oneVendor)

	if _, err := r.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoad_SeedLosesToConcurrentSave(t *testing.T) {
	s := newMockStore()
	r := New(s, prefix, oneVendor)

	saved := domain.Snapshot{
		Vendors: []domain.Vendor{{ID: "v-new", CompanyName: "Registered first", Categories: []string{"전기"}}},
	}
	// The key is empty on Get; a catalog Save lands before the seed write.
	s.setNXFn = func(ctx context.Context, _ string, _ []byte) (bool, error) {
		if err := r.Save(ctx, saved); err != nil {
			return false, err
		}
		return false, nil
	}

	snap, err := r.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Vendors) != 1 || snap.Vendors[0].ID != "v-new" {
		t.Fatalf("expected the concurrently saved snapshot, got %+v", snap.Vendors)
	}

	s.setNXFn = nil
	again, err := r.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Vendors[0].ID != "v-new" {
		t.Errorf("seed overwrote the saved snapshot: %+v", again.Vendors)
	}
}

func TestLoad_ConcurrentFirstBoot(t *testing.T) {
	store := memory.NewStore()
	r := New(store, prefix, seed.Snapshot)
	ctx := context.Background()

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Load(ctx); err != nil {
				t.Errorf("load: %v", err)
			}
		}()
	}
	want := domain.Snapshot{Vendors: []domain.Vendor{{ID: "v-only", Categories: []string{"기타"}}}}
	if err := r.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	wg.Wait()

	got, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Vendors) != 1 || got.Vendors[0].ID != "v-only" {
		t.Errorf("first-boot seeding overwrote a save: %+v", got.Vendors)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	r := New(memory.NewStore(), prefix, seed.Snapshot)
	ctx := context.Background()

	snap, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap.Vendors[0].CompanyName = "Renamed"
	snap.Products = snap.Products[:1]
	if err := r.Save(ctx, snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Vendors[0].CompanyName != "Renamed" {
		t.Errorf("expected Renamed, got %q", got.Vendors[0].CompanyName)
	}
	if len(got.Products) != 1 {
		t.Errorf("expected 1 product, got %d", len(got.Products))
	}
}

func TestReset(t *testing.T) {
	r := New(memory.NewStore(), prefix, seed.Snapshot)
	ctx := context.Background()

	if err := r.Save(ctx, domain.Snapshot{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, err := r.Reset(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := seed.MustSnapshot()
	if len(snap.Vendors) != len(want.Vendors) {
		t.Errorf("expected %d vendors after reset, got %d", len(want.Vendors), len(snap.Vendors))
	}
}

func TestReset_DelError(t *testing.T) {
	s := newMockStore()
	s.delFn = func(context.Context, string) error { return errors.New("boom") }
	if _, err := New(s, prefix, oneVendor).Reset(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
