// Package routes maps folio paths to screens and keeps navigation history.
package routes

import "strings"

const (
	HomePath      = "/"
	EasterPath    = "/easter"
	ProjectPrefix = "/projects/"
)

// Kind identifies the screen a route renders
type Kind int

const (
	Home Kind = iota
	Project
	Easter
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Home:
		return "home"
	case Project:
		return "project"
	case Easter:
		return "easter"
	default:
		return "not-found"
	}
}

// Route is a parsed path
type Route struct {
	Kind Kind
	Slug string // set for Project routes
	Raw  string // the path as requested, kept for NotFound
}

// ProjectPath builds the detail path for slug
func ProjectPath(slug string) string {
	return ProjectPrefix + slug
}

// Parse resolves path to a route. Query strings, fragments and a trailing
// slash are ignored.
func Parse(path string) Route {
	raw := path
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = HomePath
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	switch {
	case path == HomePath:
		return Route{Kind: Home, Raw: raw}
	case path == EasterPath:
		return Route{Kind: Easter, Raw: raw}
	case strings.HasPrefix(path, ProjectPrefix):
		slug := strings.TrimPrefix(path, ProjectPrefix)
		if slug != "" && !strings.Contains(slug, "/") {
			return Route{Kind: Project, Slug: slug, Raw: raw}
		}
	}
	return Route{Kind: NotFound, Raw: raw}
}

// Path returns the canonical path of the route
func (r Route) Path() string {
	switch r.Kind {
	case Home:
		return HomePath
	case Project:
		return ProjectPath(r.Slug)
	case Easter:
		return EasterPath
	default:
		return r.Raw
	}
}

// History is a navigation stack that always holds at least one route
type History struct {
	stack []Route
}

// NewHistory starts a history at start
func NewHistory(start Route) *History {
	return &History{stack: []Route{start}}
}

// Current returns the route on top of the stack
func (h *History) Current() Route {
	return h.stack[len(h.stack)-1]
}

// Push navigates to r. Pushing the current path again is a no-op.
func (h *History) Push(r Route) bool {
	if r.Path() == h.Current().Path() {
		return false
	}
	h.stack = append(h.stack, r)
	return true
}

// Back pops the current route. From the root of the stack it falls back to
// home, and reports false when already there.
func (h *History) Back() (Route, bool) {
	if len(h.stack) > 1 {
		h.stack = h.stack[:len(h.stack)-1]
		return h.Current(), true
	}
	if h.Current().Kind != Home {
		h.stack[0] = Route{Kind: Home, Raw: HomePath}
		return h.Current(), true
	}
	return h.Current(), false
}

// Len returns the depth of the stack
func (h *History) Len() int {
	return len(h.stack)
}
