package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjectConfig_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg := loadProjectConfig(dir, "3000")
	if cfg.AppDir != "app" || cfg.PagesDir != "pages" || cfg.Port != "3000" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadProjectConfig_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := "appDir: src/app\npagesDir: src/pages\nport: \"4000\"\n"
	if err := os.WriteFile(filepath.Join(dir, "nextvfs.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := loadProjectConfig(dir, "3000")
	if cfg.AppDir != "src/app" {
		t.Errorf("expected appDir override, got %q", cfg.AppDir)
	}
	if cfg.PagesDir != "src/pages" {
		t.Errorf("expected pagesDir override, got %q", cfg.PagesDir)
	}
	if cfg.Port != "4000" {
		t.Errorf("expected port override, got %q", cfg.Port)
	}
}
