package health

import (
	"context"

	"github.com/estimatecheck/marketplace/internal/domain"
)

// DBPinger checks store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// SnapshotReader loads the marketplace snapshot.
type SnapshotReader interface {
	Load(ctx context.Context) (domain.Snapshot, error)
}
