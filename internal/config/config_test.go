package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrepareDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cellar")

	got, err := PrepareDataDir(dir)
	if err != nil {
		t.Fatalf("PrepareDataDir() error = %v", err)
	}
	if got != dir {
		t.Errorf("PrepareDataDir() = %q, want %q", got, dir)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat data dir: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%q is not a directory", dir)
	}
}

func TestEnsureDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cellar")
	cfg := NewAppConfigWithOptions(WithDataDir(dir))

	if err := cfg.EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat data dir: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%q is not a directory", dir)
	}

	// creating an existing directory is not an error
	if err := cfg.EnsureDataDir(); err != nil {
		t.Errorf("EnsureDataDir() on existing dir error = %v", err)
	}
}
