package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateArchive(); err != nil {
		return err
	}
	if err := c.validateChannel(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	if err := c.validateVariants(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateArchive() error {
	if c.Archive.ContentVersion < 1 {
		return errors.New("archive.content_version must be at least 1")
	}
	return nil
}

func (c *Config) validateChannel() error {
	if c.Channel.ID == "" {
		return errors.New("channel.id must be set")
	}
	if c.Channel.Name == "" {
		return errors.New("channel.name must be set")
	}
	if c.Channel.SourceID == "" {
		return errors.New("channel.source_id must be set")
	}
	if c.Channel.Language == "" {
		return errors.New("channel.language must be set")
	}
	return nil
}

// validateCategories rejects empty token lists up front. A category that
// appears in a spreadsheet header with no tokens would abort the pass anyway;
// failing at load time points at the config file instead of the workbook.
func (c *Config) validateCategories() error {
	if len(c.Categories) == 0 {
		return errors.New("categories table must define at least one category")
	}
	for name, tokens := range c.Categories {
		if len(tokens) == 0 {
			return fmt.Errorf("categories[%q] must list at least one prefix token", name)
		}
	}
	return nil
}

func (c *Config) validateVariants() error {
	if c.Variants.TwoDToken == "" {
		return errors.New("variants.two_d_token must be set")
	}
	if c.Variants.ThreeDToken == "" {
		return errors.New("variants.three_d_token must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
