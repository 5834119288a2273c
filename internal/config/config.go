package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and workbook location configuration.
type Paths struct {
	DataDir         string `toml:"data_dir"`
	LogDir          string `toml:"log_dir"`
	StagingDir      string `toml:"staging_dir"`
	ResourcesSubdir string `toml:"resources_subdir"`
	Spreadsheet     string `toml:"spreadsheet"`
}

// Archive pins the versioned download snapshot a reconciliation pass reads.
// Bump ContentVersion whenever the source assets are re-downloaded.
type Archive struct {
	ContentVersion int `toml:"content_version"`
}

// Channel carries the identity attached to the assembled content package.
type Channel struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	SourceID      string `toml:"source_id"`
	Domain        string `toml:"domain"`
	Language      string `toml:"language"`
	Description   string `toml:"description"`
	Thumbnail     string `toml:"thumbnail"`
	LicenseHolder string `toml:"license_holder"`
}

// Substitution is one entry in the resolver's textual fallback table. Find is
// replaced with Replace inside a candidate prefix before re-testing filenames.
type Substitution struct {
	Find    string `toml:"find"`
	Replace string `toml:"replace"`
}

// Resolver contains the file resolver's fallback and exclusion tables.
type Resolver struct {
	ExcludedExtensions []string       `toml:"excluded_extensions"`
	Substitutions      []Substitution `toml:"substitutions"`
}

// Variants names the prefix tokens selected when a title carries a
// dimensionality marker. These override the category's base token list.
type Variants struct {
	TwoDToken   string `toml:"two_d_token"`
	ThreeDToken string `toml:"three_d_token"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Ledger contains configuration for the pass-outcome database.
type Ledger struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config encapsulates all configuration values for bindery.
//
// Configuration sections by subsystem:
//   - Paths: data/log/staging directories, workbook location
//   - Archive: versioned download snapshot selection
//   - Channel: identity attached to the assembled package
//   - Categories: spreadsheet category to filename-prefix token table
//   - Variants: 2-D/3-D override tokens
//   - Resolver: substitution fallback table and excluded extensions
//   - Logging: log format and level
//   - Ledger: pass-outcome database settings
type Config struct {
	Paths      Paths               `toml:"paths"`
	Archive    Archive             `toml:"archive"`
	Channel    Channel             `toml:"channel"`
	Categories map[string][]string `toml:"categories"`
	Variants   Variants            `toml:"variants"`
	Resolver   Resolver            `toml:"resolver"`
	Logging    Logging             `toml:"logging"`
	Ledger     Ledger              `toml:"ledger"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/bindery/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("bindery.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a reconciliation pass writes to.
// The data directory is created too so a fresh install has somewhere to land
// downloaded archives.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir, c.Paths.StagingDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ArchiveDir returns the directory of the pinned download snapshot.
func (c *Config) ArchiveDir() string {
	return filepath.Join(c.Paths.DataDir, "downloads", fmt.Sprintf("archive_%d", c.Archive.ContentVersion))
}

// ResourcesDir returns the directory holding the downloaded asset files.
func (c *Config) ResourcesDir() string {
	return filepath.Join(c.ArchiveDir(), c.Paths.ResourcesSubdir)
}

// SpreadsheetPath returns the location of the curated workbook.
func (c *Config) SpreadsheetPath() string {
	return filepath.Join(c.ArchiveDir(), c.Paths.Spreadsheet)
}

// LedgerPath returns the pass-outcome database location.
func (c *Config) LedgerPath() string {
	if strings.TrimSpace(c.Ledger.Path) != "" {
		return c.Ledger.Path
	}
	return filepath.Join(c.Paths.LogDir, "ledger.db")
}

// ManifestPath returns where the assembled channel manifest is written.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.Paths.StagingDir, "channel_manifest.json")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
