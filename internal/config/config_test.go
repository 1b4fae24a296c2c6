package config

import "testing"

func TestLoadRequiresDSNForPostgres(t *testing.T) {
	t.Setenv("DARKLIFE_DB_DSN", "")
	t.Setenv("DARKLIFE_MEMORY_STORE", "false")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without a DSN")
	}
}

func TestLoadMemoryStoreSkipsDSN(t *testing.T) {
	t.Setenv("DARKLIFE_DB_DSN", "")
	t.Setenv("DARKLIFE_MEMORY_STORE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.MemoryStore {
		t.Fatal("memory store flag not set")
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("listen addr = %q, want default", cfg.ListenAddr)
	}
	if cfg.RateLimitPerSecond != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("unexpected limiter defaults: %v %v", cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("DARKLIFE_MEMORY_STORE", "true")
	t.Setenv("DARKLIFE_LISTEN_ADDR", ":9090")
	t.Setenv("DARKLIFE_RAND_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":9090" || cfg.RandSeed != 42 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
