// Package snapshot persists the marketplace as a single JSON document in a
// key-value store.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/db"
	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/logger"
)

// Key is the storage key under the configured prefix.
const Key = "db:v1"

// store is the consumer interface for snapshot persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	Del(ctx context.Context, key string) error
}

// SeedFunc supplies the snapshot written to an empty store.
type SeedFunc func() (domain.Snapshot, error)

// Repo implements usecase/catalog.Repository and usecase/search.SnapshotLoader.
type Repo struct {
	store  store
	prefix string
	seed   SeedFunc
}

// New creates a snapshot repository. A nil seed starts from an empty marketplace.
func New(s store, prefix string, seed SeedFunc) *Repo {
	if seed == nil {
		seed = func() (domain.Snapshot, error) { return domain.Snapshot{}, nil }
	}
	return &Repo{store: s, prefix: prefix, seed: seed}
}

func (r *Repo) key() string { return r.prefix + Key }

// Load returns the stored snapshot. An empty store is seeded with a
// conditional write, so a concurrent Save that lands first wins and its
// document is returned instead. A stored document that no longer decodes is
// replaced by the seed in memory only, leaving the stored bytes for
// inspection.
func (r *Repo) Load(ctx context.Context) (domain.Snapshot, error) {
	data, err := r.store.Get(ctx, r.key())
	if err == nil {
		return r.decode(ctx, data)
	}
	if !errors.Is(err, db.ErrKeyNotFound) {
		return domain.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	snap, err := r.seed()
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("seed snapshot: %w", err)
	}
	encoded, err := json.Marshal(snap)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("encode snapshot: %w", err)
	}
	created, err := r.store.SetNX(ctx, r.key(), encoded)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	if !created {
		data, err := r.store.Get(ctx, r.key())
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
		}
		return r.decode(ctx, data)
	}

	logger.FromContext(ctx).Info("snapshot seeded",
		zap.Int("vendors", len(snap.Vendors)),
		zap.Int("products", len(snap.Products)),
	)
	return snap, nil
}

func (r *Repo) decode(ctx context.Context, data []byte) (domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.FromContext(ctx).Warn("stored snapshot is corrupt, using seed",
			zap.String("key", r.key()),
			zap.Error(err),
		)
		seeded, seedErr := r.seed()
		if seedErr != nil {
			return domain.Snapshot{}, fmt.Errorf("seed snapshot: %w", seedErr)
		}
		return seeded, nil
	}
	return snap, nil
}

// Save replaces the stored snapshot.
func (r *Repo) Save(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.store.Set(ctx, r.key(), data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Reset drops the stored snapshot and writes a fresh seed.
func (r *Repo) Reset(ctx context.Context) (domain.Snapshot, error) {
	if err := r.store.Del(ctx, r.key()); err != nil {
		return domain.Snapshot{}, fmt.Errorf("reset snapshot: %w", err)
	}
	return r.Load(ctx)
}
