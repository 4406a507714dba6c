package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesSidecarOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	store := &Store{Dir: dir, ToolVersion: "0.9.0"}

	conf, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if conf.Version != "0.9.0" {
		t.Errorf("Expected tool version recorded, got %q", conf.Version)
	}
	if conf.UpdatedAt == 0 {
		t.Error("Expected first-run timestamp recorded")
	}

	if _, err := os.Stat(filepath.Join(dir, FileName)); err != nil {
		t.Errorf("Expected sidecar file created: %v", err)
	}
}

func TestLoadReadsExistingSidecar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(`{"updated_at": 1700000000.5, "version": "0.1.0"}`), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	store := &Store{Dir: dir, ToolVersion: "0.9.0"}
	conf, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// An existing sidecar is never overwritten with the current version.
	if conf.Version != "0.1.0" {
		t.Errorf("Expected stored version preserved, got %q", conf.Version)
	}
	if conf.UpdatedAt != 1700000000.5 {
		t.Errorf("Expected stored timestamp preserved, got %g", conf.UpdatedAt)
	}
}

func TestLoadRejectsCorruptSidecar(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("not json"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	store := &Store{Dir: dir, ToolVersion: "0.9.0"}
	if _, err := store.Load(); err == nil {
		t.Fatal("Expected error for corrupt sidecar")
	}
}
