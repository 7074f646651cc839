// Package driver opens the configured db.Store implementation.
package driver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/db"
	dbBadger "github.com/estimatecheck/marketplace/internal/db/badger"
	"github.com/estimatecheck/marketplace/internal/db/memory"
	dbRedis "github.com/estimatecheck/marketplace/internal/db/redis"
)

// Config selects and parameterizes a driver.
type Config struct {
	Driver   string
	Addrs    []string
	Password string
	DB       int
	Path     string
}

// Open creates the store named by cfg.Driver. Redis and Valkey share one
// client implementation.
func Open(cfg Config, logger *zap.Logger) (db.Store, error) {
	switch cfg.Driver {
	case db.DriverMemory:
		return memory.NewStore(), nil
	case db.DriverRedis, db.DriverValkey:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.Addrs,
			Password:   cfg.Password,
			DB:         cfg.DB,
			ClientName: "marketplace",
		})
		if err != nil {
			return nil, fmt.Errorf("%s store: %w", cfg.Driver, err)
		}
		return s, nil
	case db.DriverBadger:
		s, err := dbBadger.NewStore(dbBadger.Config{
			Path:     cfg.Path,
			InMemory: cfg.Path == "",
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("badger store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
