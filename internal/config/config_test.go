package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bindery/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "bindery")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.LogDir != filepath.Join(wantData, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Archive.ContentVersion != 1 {
		t.Fatalf("unexpected archive version: %d", cfg.Archive.ContentVersion)
	}
	wantArchive := filepath.Join(wantData, "downloads", "archive_1")
	if cfg.ArchiveDir() != wantArchive {
		t.Fatalf("unexpected archive dir: %q", cfg.ArchiveDir())
	}
	if cfg.ResourcesDir() != filepath.Join(wantArchive, "Endless Learning") {
		t.Fatalf("unexpected resources dir: %q", cfg.ResourcesDir())
	}
	if cfg.SpreadsheetPath() != filepath.Join(wantArchive, "Resources.xlsx") {
		t.Fatalf("unexpected spreadsheet path: %q", cfg.SpreadsheetPath())
	}
	if cfg.LedgerPath() != filepath.Join(cfg.Paths.LogDir, "ledger.db") {
		t.Fatalf("unexpected ledger path: %q", cfg.LedgerPath())
	}
	if !cfg.Ledger.Enabled {
		t.Fatal("expected ledger enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	tokens, ok := cfg.Categories["Board Books"]
	if !ok || len(tokens) != 1 || tokens[0] != "Board Book" {
		t.Fatalf("unexpected Board Books tokens: %v", tokens)
	}
	if cfg.Variants.ThreeDToken != "MGCB.3D.ANIM" {
		t.Fatalf("unexpected 3-D token: %q", cfg.Variants.ThreeDToken)
	}
	if len(cfg.Resolver.Substitutions) == 0 || cfg.Resolver.Substitutions[0].Find != "," {
		t.Fatalf("unexpected substitutions: %v", cfg.Resolver.Substitutions)
	}
	if len(cfg.Resolver.ExcludedExtensions) != 1 || cfg.Resolver.ExcludedExtensions[0] != ".mov" {
		t.Fatalf("unexpected excluded extensions: %v", cfg.Resolver.ExcludedExtensions)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir, cfg.Paths.StagingDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	content := `
[paths]
data_dir = "~/archive-root"

[archive]
content_version = 3

[categories]
"Songs" = ["Song.ANIM"]

[resolver]
excluded_extensions = ["MOV", " "]

[[resolver.substitutions]]
find = ";"
replace = ""

[[resolver.substitutions]]
find = ""
replace = "dropped"
`
	path := filepath.Join(tempHome, "bindery.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config loaded from %q, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Paths.DataDir != filepath.Join(tempHome, "archive-root") {
		t.Fatalf("unexpected data dir: %q", cfg.Paths.DataDir)
	}
	if !strings.HasSuffix(cfg.ArchiveDir(), filepath.Join("downloads", "archive_3")) {
		t.Fatalf("unexpected archive dir: %q", cfg.ArchiveDir())
	}
	tokens, ok := cfg.Categories["Songs"]
	if !ok || len(tokens) != 1 || tokens[0] != "Song.ANIM" {
		t.Fatalf("expected Songs category from file, got %v", cfg.Categories)
	}
	if len(cfg.Resolver.ExcludedExtensions) != 1 || cfg.Resolver.ExcludedExtensions[0] != ".mov" {
		t.Fatalf("expected extension normalization, got %v", cfg.Resolver.ExcludedExtensions)
	}
	if len(cfg.Resolver.Substitutions) != 1 || cfg.Resolver.Substitutions[0].Find != ";" {
		t.Fatalf("expected blank-find substitution dropped, got %v", cfg.Resolver.Substitutions)
	}
}

func TestValidateRejectsEmptyTokenList(t *testing.T) {
	cfg := config.Default()
	cfg.Categories = map[string][]string{"Ghost Category": {}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty token list")
	} else if !strings.Contains(err.Error(), "Ghost Category") {
		t.Fatalf("expected error to name the category, got %v", err)
	}
}

func TestValidateRejectsBadLogging(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unsupported log format")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	target := filepath.Join(tempHome, "conf", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Channel.Name == "" {
		t.Fatal("expected channel name in sample")
	}
	if len(cfg.Categories) == 0 {
		t.Fatal("expected categories in sample")
	}
}
