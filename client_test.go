package marketplace

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestNew_DefaultsToMemory(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.cfg.driver != "memory" {
		t.Errorf("driver = %q, want memory", c.cfg.driver)
	}
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}

	c.Close()
	if err := c.Ping(context.Background()); err == nil {
		t.Error("expected ping error after Close")
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(optionFunc(func(c *clientConfig) { c.driver = "unknown" }))
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNew_MissingDictionary(t *testing.T) {
	_, err := New(WithDictionary(filepath.Join(t.TempDir(), "missing.yaml")))
	if err == nil {
		t.Fatal("expected error for missing dictionary file")
	}
}

func TestNew_Badger(t *testing.T) {
	c := newTestClient(t, WithBadger(""))

	res, err := c.Search(context.Background(), Query{Text: "모터"}, SearchOptions{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.TotalHits == 0 {
		t.Error("expected seeded products in badger store")
	}
}

func TestWithoutSeed(t *testing.T) {
	c := newTestClient(t, WithoutSeed())

	res, err := c.Search(context.Background(), Query{}, SearchOptions{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.TotalHits != 0 {
		t.Errorf("TotalHits = %d, want 0", res.TotalHits)
	}
	if res.Page.Current != 1 || res.Page.Count != 1 {
		t.Errorf("page = %+v, want 1/1", res.Page)
	}
}

func TestReset(t *testing.T) {
	c := newTestClient(t, WithKeyPrefix("reset:"))

	if err := c.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	res, err := c.Search(context.Background(), Query{}, SearchOptions{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.TotalHits != 6 {
		t.Errorf("TotalHits = %d, want the 6 sample products", res.TotalHits)
	}
}

func TestWithLogger_Nil(t *testing.T) {
	cfg := defaultConfig()
	WithLogger(nil).apply(cfg)
	if cfg.logger == nil {
		t.Fatal("nil logger must be replaced by a no-op logger")
	}
}
