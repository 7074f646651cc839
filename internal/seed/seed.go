// Package seed provides the sample marketplace written to an empty store.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/estimatecheck/marketplace/internal/domain"
)

//go:embed seed.json
var raw []byte

// Snapshot decodes the embedded sample marketplace. Each call returns a
// fresh value the caller may modify.
func Snapshot() (domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode seed: %w", err)
	}
	return snap, nil
}

// MustSnapshot is Snapshot for callers that treat a broken embed as a bug.
func MustSnapshot() domain.Snapshot {
	snap, err := Snapshot()
	if err != nil {
		panic(err)
	}
	return snap
}
