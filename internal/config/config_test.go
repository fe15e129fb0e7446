package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.RouteCacheTTL != 5*time.Minute {
		t.Errorf("Expected 5m route cache TTL, got %s", cfg.RouteCacheTTL)
	}
	if cfg.ArtisanTimeout != 15*time.Second {
		t.Errorf("Expected 15s artisan timeout, got %s", cfg.ArtisanTimeout)
	}
	if cfg.AnalyzeTimeout != 30*time.Second {
		t.Errorf("Expected 30s analyze timeout, got %s", cfg.AnalyzeTimeout)
	}
	if cfg.PHPBinary != "php" {
		t.Errorf("Expected php binary, got %q", cfg.PHPBinary)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FLEETLENS_APP_PATH", "/srv/fleet")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AppPath != "/srv/fleet" {
		t.Errorf("Expected env override, got %q", cfg.AppPath)
	}
}

func TestValidateRejectsPlaceholder(t *testing.T) {
	cfg := &Config{AppPath: PlaceholderAppPath}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Placeholder app path must fail validation")
	}

	cfg = &Config{AppPath: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Empty app path must fail validation")
	}
}

func TestValidateRequiresLaravelRoot(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{AppPath: root}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Directory without artisan must fail validation")
	}

	if err := os.WriteFile(filepath.Join(root, "artisan"), []byte("#!/usr/bin/env php\n"), 0755); err != nil {
		t.Fatalf("Failed to write artisan stub: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid app root, got %v", err)
	}
}
