package marketplace

import (
	"time"

	"go.uber.org/zap"

	"github.com/estimatecheck/marketplace/internal/db"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // memory, badger, redis or valkey
	addrs    []string
	password string
	path     string

	keyPrefix      string
	skipSeed       bool
	dictionaryPath string

	pageSize   int
	pageWindow int

	now    func() time.Time
	logger *zap.Logger
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		driver:    db.DriverMemory,
		keyPrefix: "marketplace:",
		now:       time.Now,
		logger:    zap.NewNop(),
	}
}

// WithMemory keeps the marketplace in process memory. This is the default.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = db.DriverMemory
	})
}

// WithBadger stores the marketplace in an embedded Badger database at path.
// An empty path keeps Badger in memory.
func WithBadger(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = db.DriverBadger
		c.path = path
	})
}

// WithValkey stores the marketplace in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = db.DriverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis stores the marketplace in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = db.DriverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix namespaces the storage key. Default: "marketplace:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithoutSeed starts an empty store with no marketplace instead of the
// sample data.
func WithoutSeed() Option {
	return optionFunc(func(c *clientConfig) {
		c.skipSeed = true
	})
}

// WithDictionary loads the interpreter dictionary from a YAML file.
func WithDictionary(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.dictionaryPath = path
	})
}

// WithPagination sets the page size and the navigation window.
// Defaults: 9 entries per page, 5 page links.
func WithPagination(size, window int) Option {
	return optionFunc(func(c *clientConfig) {
		c.pageSize = size
		c.pageWindow = window
	})
}

// WithClock sets the time source used to expire sanctions.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *clientConfig) {
		c.now = now
	})
}

// WithLogger enables structured logging. Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	})
}
