package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/estimatecheck/marketplace/internal/db"
)

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "k"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	value := []byte("v1")
	if err := s.Set(ctx, "k", value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("stored value aliased caller slice: %q", got)
	}
	got[0] = 'y'
	again, _ := s.Get(ctx, "k")
	if string(again) != "v1" {
		t.Errorf("returned value aliases store: %q", again)
	}

	if ok, _ := s.Exists(ctx, "k"); !ok {
		t.Error("expected key to exist")
	}
	if err := s.Del(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := s.Exists(ctx, "k"); ok {
		t.Error("expected key to be deleted")
	}
}

func TestStore_Closed(t *testing.T) {
	s := NewStore()
	s.Close()
	ctx := context.Background()

	if err := s.Ping(ctx); !errors.Is(err, db.ErrClosed) {
		t.Errorf("Ping: expected ErrClosed, got %v", err)
	}
	if err := s.Set(ctx, "k", nil); !errors.Is(err, db.ErrClosed) {
		t.Errorf("Set: expected ErrClosed, got %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, db.ErrClosed) {
		t.Errorf("Get: expected ErrClosed, got %v", err)
	}
}

func TestStore_SetNX(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	ok, err := s.SetNX(ctx, "k", []byte("first"))
	if err != nil || !ok {
		t.Fatalf("SetNX on empty key: ok=%v err=%v", ok, err)
	}
	ok, err = s.SetNX(ctx, "k", []byte("second"))
	if err != nil || ok {
		t.Fatalf("SetNX on set key: ok=%v err=%v", ok, err)
	}
	if got, _ := s.Get(ctx, "k"); string(got) != "first" {
		t.Errorf("SetNX overwrote value: %q", got)
	}

	s.Close()
	if _, err := s.SetNX(ctx, "other", nil); !errors.Is(err, db.ErrClosed) {
		t.Errorf("SetNX: expected ErrClosed, got %v", err)
	}
}
