package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeLedger(); err != nil {
		return err
	}
	c.normalizeCategories()
	c.normalizeResolver()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ResourcesSubdir) == "" {
		c.Paths.ResourcesSubdir = defaultResourcesSubdir
	}
	if strings.TrimSpace(c.Paths.Spreadsheet) == "" {
		c.Paths.Spreadsheet = defaultSpreadsheet
	}
	return nil
}

func (c *Config) normalizeLedger() error {
	if strings.TrimSpace(c.Ledger.Path) == "" {
		return nil
	}
	expanded, err := expandPath(c.Ledger.Path)
	if err != nil {
		return fmt.Errorf("ledger.path: %w", err)
	}
	c.Ledger.Path = expanded
	return nil
}

// normalizeCategories trims category names and tokens and drops blank tokens.
// A category left with zero tokens is caught later by Validate.
func (c *Config) normalizeCategories() {
	if len(c.Categories) == 0 {
		return
	}
	cleaned := make(map[string][]string, len(c.Categories))
	for name, tokens := range c.Categories {
		trimmedName := strings.TrimSpace(name)
		if trimmedName == "" {
			continue
		}
		kept := make([]string, 0, len(tokens))
		for _, token := range tokens {
			if trimmed := strings.TrimSpace(token); trimmed != "" {
				kept = append(kept, trimmed)
			}
		}
		cleaned[trimmedName] = kept
	}
	c.Categories = cleaned
}

func (c *Config) normalizeResolver() {
	kept := c.Resolver.ExcludedExtensions[:0]
	for _, ext := range c.Resolver.ExcludedExtensions {
		trimmed := strings.ToLower(strings.TrimSpace(ext))
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		kept = append(kept, trimmed)
	}
	c.Resolver.ExcludedExtensions = kept

	subs := c.Resolver.Substitutions[:0]
	for _, sub := range c.Resolver.Substitutions {
		if sub.Find == "" {
			continue
		}
		subs = append(subs, sub)
	}
	c.Resolver.Substitutions = subs
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}
