package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":8090" {
		t.Fatalf("listen=%q, want :8090", cfg.Listen)
	}
	if got := cfg.LockWaitDuration(); got != 10*time.Second {
		t.Fatalf("lock wait=%v, want 10s", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "listen: \":9100\"\ndb_path: /tmp/grid.db\nlock_wait: 2s\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":9100" || cfg.DBPath != "/tmp/grid.db" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if got := cfg.LockWaitDuration(); got != 2*time.Second {
		t.Fatalf("lock wait=%v, want 2s", got)
	}
}

func TestLockWaitFallback(t *testing.T) {
	cfg := Config{LockWait: "soon"}
	if got := cfg.LockWaitDuration(); got != 10*time.Second {
		t.Fatalf("lock wait=%v, want fallback 10s", got)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config path")
	}
}
