// Package changelog parses and renders the easter egg report.
package changelog

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultVersion is shown when the report does not carry a version line
const DefaultVersion = "dev"

//go:embed CHANGELOG.md
var embedded string

var versionLine = regexp.MustCompile(`(?i)^version\s*:\s*(.+)$`)

// Report is a parsed changelog
type Report struct {
	Version string
	Body    string
}

// Embedded returns the changelog compiled into the binary
func Embedded() string {
	return embedded
}

// Parse extracts a leading "version: X" line from markdown. Without one the
// whole document is the body and fallbackVersion is used.
func Parse(markdown, fallbackVersion string) Report {
	lines := strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n")
	first := strings.TrimSpace(lines[0])

	match := versionLine.FindStringSubmatch(first)
	if match == nil {
		return Report{Version: fallbackVersion, Body: markdown}
	}

	version := strings.TrimSpace(match[1])
	if version == "" {
		version = fallbackVersion
	}
	return Report{
		Version: version,
		Body:    strings.TrimLeft(strings.Join(lines[1:], "\n"), "\n"),
	}
}

// Style names a glamour style
type Style string

const (
	StyleDark  Style = "dark"
	StyleLight Style = "light"
	// StylePlain renders without escape sequences, for output that is not a terminal
	StylePlain Style = "notty"
)

// StyleFor picks the terminal style matching the background
func StyleFor(dark bool) Style {
	if dark {
		return StyleDark
	}
	return StyleLight
}

// Render formats the report body as terminal markdown
func Render(r Report, width int, dark bool) (string, error) {
	return RenderStyle(r, width, StyleFor(dark))
}

// RenderStyle formats the report body with an explicit style
func RenderStyle(r Report, width int, style Style) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(string(style)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(r.Body)
	if err != nil {
		return "", fmt.Errorf("failed to render changelog: %w", err)
	}
	return out, nil
}
