package search

import (
	"context"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/nlq"
)

// SnapshotLoader reads the current marketplace state.
type SnapshotLoader interface {
	Load(ctx context.Context) (domain.Snapshot, error)
}

// Interpreter turns conversational text into keywords and categories.
type Interpreter interface {
	Interpret(text string) nlq.Interpretation
}
