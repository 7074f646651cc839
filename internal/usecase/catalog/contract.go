package catalog

import (
	"context"

	"github.com/estimatecheck/marketplace/internal/domain"
)

// Repository loads and persists the whole marketplace snapshot.
type Repository interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snap domain.Snapshot) error
}
