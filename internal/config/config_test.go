package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scramble.Length != 25 {
		t.Errorf("default scramble length = %d, want 25", cfg.Scramble.Length)
	}
	if cfg.Database.Path != "" {
		t.Errorf("default database path = %q, want empty", cfg.Database.Path)
	}
}

func TestLoadReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "scramble:\n  length: 30\ndatabase:\n  path: /tmp/test.db\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scramble.Length != 30 {
		t.Errorf("scramble length = %d, want 30", cfg.Scramble.Length)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scramble: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed config should fail to load")
	}
}

func TestLoadRejectsNegativeLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scramble:\n  length: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("negative scramble length should fail validation")
	}
}
