// Package links decides which URLs folio is willing to show or copy.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
)

var allowedSchemes = map[string]bool{
	"https":  true,
	"mailto": true,
	"tel":    true,
}

var allowedDomains = []string{
	"github.com",
	"linkedin.com",
	"www.linkedin.com",
	"t.me",
}

// Sanitize trims raw and returns its normalized form when the scheme is
// https, mailto or tel.
func Sanitize(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	u, err := url.Parse(trimmed)
	if err != nil || !allowedSchemes[strings.ToLower(u.Scheme)] {
		return "", false
	}
	if u.Scheme == "https" && u.Host == "" {
		return "", false
	}
	u.Scheme = strings.ToLower(u.Scheme)
	return u.String(), true
}

// IsAllowedExternal reports whether raw is an https link to one of the known
// profile hosts or a subdomain of one.
func IsAllowedExternal(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !strings.EqualFold(u.Scheme, "https") {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	for _, domain := range allowedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// Displayable reports whether a contact link may be rendered. Non-https
// schemes only need to sanitize; https links must also point at an allowed host.
func Displayable(raw string) (string, bool) {
	clean, ok := Sanitize(raw)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(clean, "https:") && !IsAllowedExternal(clean) {
		return "", false
	}
	return clean, true
}

// Writer puts text on the system clipboard
type Writer func(text string) error

// Copier copies vetted links to the clipboard
type Copier struct {
	write Writer
}

// NewCopier returns a copier backed by the system clipboard when write is nil
func NewCopier(write Writer) *Copier {
	if write == nil {
		write = clipboard.WriteAll
	}
	return &Copier{write: write}
}

// Copy writes raw to the clipboard if it passes the link policy
func (c *Copier) Copy(raw string) (string, error) {
	clean, ok := Displayable(raw)
	if !ok {
		return "", fmt.Errorf("link %q is not allowed", raw)
	}
	if err := c.write(clean); err != nil {
		return "", fmt.Errorf("failed to copy link: %w", err)
	}
	return clean, nil
}
