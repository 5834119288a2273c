package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bindery/internal/config"
	"bindery/internal/reconcile"
)

// Kind distinguishes node media types.
type Kind string

const (
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

// Node is one content file bound under a topic.
type Node struct {
	Kind     Kind   `json:"kind"`
	SourceID string `json:"source_id"`
	Title    string `json:"title"`
	Path     string `json:"path"`
}

// Topic groups the nodes of one spreadsheet category.
type Topic struct {
	SourceID string `json:"source_id"`
	Title    string `json:"title"`
	Nodes    []Node `json:"nodes"`
}

// Channel is the root of the assembled package.
type Channel struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SourceID    string  `json:"source_id"`
	Domain      string  `json:"domain"`
	Language    string  `json:"language"`
	Description string  `json:"description,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	License     string  `json:"license"`
	Topics      []Topic `json:"topics"`
}

// Build converts a reconciled tree into a channel rooted at the config's
// channel identity. Node paths point into the archive's resources directory.
func Build(cfg *config.Config, tree *reconcile.Tree) *Channel {
	resourcesDir := cfg.ResourcesDir()
	channel := &Channel{
		ID:          cfg.Channel.ID,
		Name:        cfg.Channel.Name,
		SourceID:    cfg.Channel.SourceID,
		Domain:      cfg.Channel.Domain,
		Language:    cfg.Channel.Language,
		Description: cfg.Channel.Description,
		Thumbnail:   cfg.Channel.Thumbnail,
		License:     fmt.Sprintf("All Rights Reserved - %s", cfg.Channel.LicenseHolder),
	}

	for _, group := range tree.Groups() {
		topic := Topic{SourceID: group.Category, Title: group.Category}
		for _, entry := range group.Entries {
			title := entry.Title
			if title == "" {
				title = deriveTitle(entry.File)
			}
			topic.Nodes = append(topic.Nodes, Node{
				Kind:     kindForFile(entry.File),
				SourceID: entry.File,
				Title:    title,
				Path:     filepath.Join(resourcesDir, entry.File),
			})
		}
		channel.Topics = append(channel.Topics, topic)
	}
	return channel
}

// WriteFile persists the channel manifest as indented JSON.
func (c *Channel) WriteFile(path string) error {
	encoded, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create manifest directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func kindForFile(name string) Kind {
	if strings.EqualFold(filepath.Ext(name), ".mp4") {
		return KindVideo
	}
	return KindDocument
}

// deriveTitle recovers a presentable title from a filename when the curated
// title stripped down to nothing.
func deriveTitle(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled"
	}
	return cases.Title(language.Und).String(strings.ToLower(title))
}
