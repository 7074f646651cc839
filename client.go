// Package marketplace embeds the materials marketplace search core in a Go
// program: product search with an optional natural-language interpreter,
// vendor grouping and pagination over a stored catalog snapshot.
package marketplace

import (
	"context"
	"fmt"
	"time"

	"github.com/estimatecheck/marketplace/internal/db"
	"github.com/estimatecheck/marketplace/internal/db/driver"
	"github.com/estimatecheck/marketplace/internal/domain/search/nlq"
	"github.com/estimatecheck/marketplace/internal/logger"
	"github.com/estimatecheck/marketplace/internal/repository/snapshot"
	"github.com/estimatecheck/marketplace/internal/seed"
	searchuc "github.com/estimatecheck/marketplace/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the marketplace SDK entry point.
type Client struct {
	cfg       *clientConfig
	store     db.Store
	snapshots *snapshot.Repo
	searchSvc *searchuc.Service
}

// New creates a Client. Without options the catalog lives in memory and
// starts from the sample marketplace.
func New(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	dict := nlq.DefaultDictionary()
	if cfg.dictionaryPath != "" {
		d, err := nlq.LoadDictionary(cfg.dictionaryPath)
		if err != nil {
			return nil, fmt.Errorf("marketplace: %w", err)
		}
		dict = d
	}

	store, err := driver.Open(driver.Config{
		Driver:   cfg.driver,
		Addrs:    cfg.addrs,
		Password: cfg.password,
		Path:     cfg.path,
	}, cfg.logger)
	if err != nil {
		return nil, fmt.Errorf("marketplace: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("marketplace: store not ready: %w", err)
	}

	return wireClient(store, cfg, dict), nil
}

func wireClient(store db.Store, cfg *clientConfig, dict nlq.Dictionary) *Client {
	var seedFn snapshot.SeedFunc
	if !cfg.skipSeed {
		seedFn = seed.Snapshot
	}
	repo := snapshot.New(store, cfg.keyPrefix, seedFn)

	svc := searchuc.New(repo, nlq.NewInterpreter(dict)).
		WithClock(cfg.now).
		WithPagination(cfg.pageSize, cfg.pageWindow)

	return &Client{
		cfg:       cfg,
		store:     store,
		snapshots: repo,
		searchSvc: svc,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Reset replaces the stored catalog with a fresh seed (or an empty one
// under WithoutSeed).
func (c *Client) Reset(ctx context.Context) error {
	ctx = logger.ContextWithLogger(ctx, c.cfg.logger)
	if _, err := c.snapshots.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}
