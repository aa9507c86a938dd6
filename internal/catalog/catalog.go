// Package catalog loads the portfolio content: the profile and its projects.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/domain"
)

//go:embed projects.toml
var embedded []byte

// Catalog is the full portfolio content
type Catalog struct {
	Profile  domain.Profile   `toml:"profile"`
	Projects []domain.Project `toml:"projects"`
}

// Load parses the catalog compiled into the binary
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// LoadFile parses a catalog from path, or the embedded one when path is empty
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a TOML catalog
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate requires unique, non-empty slugs
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if p.Slug == "" {
			return fmt.Errorf("project %d (%q) has no slug", i, p.Title)
		}
		if seen[p.Slug] {
			return fmt.Errorf("duplicate project slug %q", p.Slug)
		}
		seen[p.Slug] = true
	}
	return nil
}

// BySlug finds a project by its slug
func (c *Catalog) BySlug(slug string) (domain.Project, bool) {
	for _, p := range c.Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.Project{}, false
}

// IndexOf returns the position of slug in the project list, or -1
func (c *Catalog) IndexOf(slug string) int {
	for i, p := range c.Projects {
		if p.Slug == slug {
			return i
		}
	}
	return -1
}
