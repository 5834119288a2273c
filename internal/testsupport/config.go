package testsupport

import (
	"path/filepath"
	"testing"

	"bindery/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It keeps the repository's default category and substitution tables.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StagingDir = filepath.Join(base, "staging")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithCategories replaces the category token table on the test config.
func WithCategories(categories map[string][]string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Categories = categories
	}
}

// WithArchiveVersion pins the archive snapshot version.
func WithArchiveVersion(version int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Archive.ContentVersion = version
	}
}
