package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"folio/internal/domain"
)

var sampleProjects = []domain.Project{
	{Title: "Alpha", Slug: "alpha", Subtitle: "first", Description: "The first one.", Technologies: []string{"Go"}},
	{Title: "Beta", Slug: "beta", Description: "Coming soon..."},
}

func homeState() ViewState {
	return ViewState{
		Width:      80,
		Height:     30,
		Screen:     ScreenHome,
		Profile:    domain.Profile{Name: "Ada", Title: "Engineer"},
		Contacts:   []domain.Link{{Label: "GitHub", URL: "https://github.com/ada"}},
		Projects:   sampleProjects,
		SlideTotal: len(sampleProjects),
		CursorOn:   true,
	}
}

func TestRenderHome(t *testing.T) {
	r := NewRenderer(NewStyles(true))
	layout := r.Render(homeState())

	assert.Contains(t, layout.Content, "Ada")
	assert.Contains(t, layout.Content, "▌")
	assert.Contains(t, layout.Content, "Alpha")
	assert.Contains(t, layout.Content, "1/2")
	assert.Contains(t, layout.Content, "●")
	assert.NotContains(t, layout.Content, "Beta")

	lines := strings.Split(layout.Content, "\n")
	assert.Less(t, layout.CardTop, layout.CardBottom)
	assert.Contains(t, lines[layout.CardTop], "╭")
	assert.Contains(t, lines[layout.CardBottom-1], "╰")
	assert.True(t, layout.Contains(layout.CardTop))
	assert.False(t, layout.Contains(layout.CardBottom))
}

func TestRenderHomeCursorOffAndPlaceholder(t *testing.T) {
	r := NewRenderer(NewStyles(false))
	state := homeState()
	state.CursorOn = false
	state.Slide = 1

	layout := r.Render(state)
	assert.NotContains(t, layout.Content, "▌")
	assert.Contains(t, layout.Content, "Beta")
	assert.Contains(t, layout.Content, "coming soon")
	assert.Contains(t, layout.Content, "2/2")
}

func TestRenderProjectNotFound(t *testing.T) {
	r := NewRenderer(NewStyles(true))
	layout := r.Render(ViewState{Width: 80, Height: 24, Screen: ScreenProject})

	assert.Contains(t, layout.Content, "404: Project Not Found")
	assert.False(t, layout.Contains(0))
}

func TestRenderProject(t *testing.T) {
	r := NewRenderer(NewStyles(true))
	p := domain.Project{
		Title:    "Alpha",
		Features: []string{"Fast"},
		Screens:  []domain.Screen{{Title: "One", Caption: "first"}, {Title: "Two", Caption: "second"}},
	}
	layout := r.Render(ViewState{
		Width: 80, Height: 40, Screen: ScreenProject,
		Project: &p, Slide: 1, SlideTotal: 2, SlideDirection: "left",
		ProjectLinks: []domain.Link{{Label: "GitHub", URL: "https://github.com/x"}},
	})

	assert.Contains(t, layout.Content, "Two")
	assert.NotContains(t, layout.Content, "One")
	assert.Contains(t, layout.Content, "Fast")
	assert.Contains(t, layout.Content, "GitHub")
	assert.True(t, layout.CardBottom > layout.CardTop)
}

func TestRenderNotFound(t *testing.T) {
	r := NewRenderer(NewStyles(true))
	layout := r.Render(ViewState{Width: 80, Height: 24, Screen: ScreenNotFound, MissingPath: "/nowhere"})

	assert.Contains(t, layout.Content, "404")
	assert.Contains(t, layout.Content, "/nowhere")
}

func TestRenderHelpPopup(t *testing.T) {
	r := NewRenderer(NewStyles(true))
	state := homeState()
	state.ShowHelp = true
	state.FullHelp = "q quit"

	layout := r.Render(state)
	assert.Contains(t, layout.Content, "q quit")
	assert.NotContains(t, layout.Content, "Alpha")
}

func TestFooterSitsAtBottom(t *testing.T) {
	r := NewRenderer(NewStyles(true))
	state := ViewState{Width: 80, Height: 24, Screen: ScreenNotFound, HelpText: "? help"}

	layout := r.Render(state)
	assert.Equal(t, 24, lipgloss.Height(layout.Content))
}
