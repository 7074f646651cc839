package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/config"
	"github.com/estimatecheck/marketplace/internal/db"
	"github.com/estimatecheck/marketplace/internal/db/driver"
	"github.com/estimatecheck/marketplace/internal/domain/search/nlq"
	logpkg "github.com/estimatecheck/marketplace/internal/logger"
	"github.com/estimatecheck/marketplace/internal/repository/snapshot"
	"github.com/estimatecheck/marketplace/internal/seed"
	catalogcase "github.com/estimatecheck/marketplace/internal/usecase/catalog"
	healthuc "github.com/estimatecheck/marketplace/internal/usecase/health"
	searchuc "github.com/estimatecheck/marketplace/internal/usecase/search"
)

// app is the composition root shared by the subcommands.
type app struct {
	env       string
	cfg       config.Config
	logger    *zap.Logger
	store     db.Store
	snapshots *snapshot.Repo
	search    *searchuc.Service
	catalog   *catalogcase.Service
	health    *healthuc.Service
}

func (o *Options) loadConfig() (config.Config, error) {
	if o.ConfigPath == "" {
		cfg, err := config.Load(o.Env)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	_ = godotenv.Load()
	cfg, err := config.LoadFile(o.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newApp loads configuration, opens the store and wires the services.
// The caller must Close the returned app.
func newApp(ctx context.Context, opts *Options) (*app, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logpkg.NewLogger(opts.Env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	store, err := driver.Open(driver.Config{
		Driver:   cfg.Store.Driver,
		Addrs:    cfg.Store.Addrs,
		Password: cfg.Store.Password,
		DB:       cfg.Store.DB,
		Path:     cfg.Store.Path,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	readiness := time.Duration(cfg.Store.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, readiness); err != nil {
		store.Close()
		return nil, fmt.Errorf("store not ready: %w", err)
	}

	dict := nlq.DefaultDictionary()
	if cfg.Search.DictionaryPath != "" {
		dict, err = nlq.LoadDictionary(cfg.Search.DictionaryPath)
		if err != nil {
			store.Close()
			return nil, err
		}
	}

	var seedFn snapshot.SeedFunc
	if !cfg.Store.SkipSeed {
		seedFn = seed.Snapshot
	}
	repo := snapshot.New(store, cfg.Store.KeyPrefix, seedFn)

	return &app{
		env:       opts.Env,
		cfg:       cfg,
		logger:    logger,
		store:     store,
		snapshots: repo,
		search: searchuc.New(repo, nlq.NewInterpreter(dict)).
			WithPagination(cfg.Search.PageSize, cfg.Search.PageWindow),
		catalog: catalogcase.New(repo).
			WithPagination(cfg.Search.PageSize, cfg.Search.PageWindow),
		health: healthuc.New(store, repo),
	}, nil
}

// Close releases the store and flushes the logger.
func (a *app) Close() {
	a.store.Close()
	_ = a.logger.Sync()
}
