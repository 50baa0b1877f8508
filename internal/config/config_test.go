package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte("storage:\n  backend: memory\nserver:\n  port: 9090\n")
	if err := os.WriteFile(path, yaml, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Storage.Backend != "memory" {
		t.Errorf("backend = %s, want memory", cfg.Storage.Backend)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	// Unset keys fall back to the defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %s, want default 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Redis.Address != "localhost:6379" {
		t.Errorf("redis address = %s, want default", cfg.Redis.Address)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFromFileRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  backend: cassandra\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown storage backend")
	}
}
