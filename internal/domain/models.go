package domain

import "strings"

// Link is a labelled external link
type Link struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

// Profile is the portfolio owner shown in the header
type Profile struct {
	Name     string `toml:"name"`
	Title    string `toml:"title"`
	Tagline  string `toml:"tagline"`
	About    string `toml:"about"`
	Contacts []Link `toml:"contacts"`
}

// Screen is one slide of a project's screenshot carousel
type Screen struct {
	Title   string `toml:"title"`
	Caption string `toml:"caption"`
}

// Project is a portfolio entry
type Project struct {
	ID           int      `toml:"id"`
	Title        string   `toml:"title"`
	Slug         string   `toml:"slug"`
	Subtitle     string   `toml:"subtitle"`
	Description  string   `toml:"description"`
	Technologies []string `toml:"technologies"`
	Features     []string `toml:"features"`
	Links        []Link   `toml:"links"`
	Screens      []Screen `toml:"screens"`
}

// IsPlaceholder reports whether the entry still carries "coming soon" copy
func (p Project) IsPlaceholder() bool {
	return containsFold(p.Title, "coming soon") || containsFold(p.Description, "coming soon")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
