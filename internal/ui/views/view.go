package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/domain"
)

// Screen selects which page is rendered
type Screen int

const (
	ScreenHome Screen = iota
	ScreenProject
	ScreenEaster
	ScreenNotFound
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Screen Screen

	Profile  domain.Profile
	Contacts []domain.Link // already vetted for display
	Projects []domain.Project

	// Project is nil on a detail route whose slug is unknown
	Project      *domain.Project
	ProjectLinks []domain.Link

	Slide          int
	SlideTotal     int
	SlideDirection string
	AutoAdvance    bool

	CursorOn bool

	Version       string
	EasterContent string
	MissingPath   string

	StatusMessage string
	StatusIsError bool
	Prompt        string
	HelpText      string
	ShowHelp      bool
	FullHelp      string
}

// Layout is a rendered frame plus the rows occupied by the carousel card,
// used to hit-test mouse gestures
type Layout struct {
	Content    string
	CardTop    int
	CardBottom int
}

// Contains reports whether screen row y falls on the carousel card
func (l Layout) Contains(y int) bool {
	return l.CardBottom > l.CardTop && y >= l.CardTop && y < l.CardBottom
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// SetStyles swaps the palette after a theme change
func (r *Renderer) SetStyles(styles *Styles) {
	r.styles = styles
	r.popupRender = NewPopupRenderer(styles)
}

// Styles returns the active styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) Layout {
	if state.ShowHelp {
		return Layout{Content: r.popupRender.RenderPopup(state.FullHelp, state.Width, state.Height)}
	}

	var body string
	cardTop, cardHeight := -1, 0

	switch state.Screen {
	case ScreenHome:
		body, cardTop, cardHeight = r.renderHome(state)
	case ScreenProject:
		if state.Project == nil {
			body = r.renderNotFound("404: Project Not Found", "", "esc to go back")
		} else {
			body, cardTop, cardHeight = r.renderProject(state)
		}
	case ScreenEaster:
		body = r.renderEaster(state)
	default:
		body = r.renderNotFound("404", state.MissingPath, "esc to return home")
	}

	content := r.withFooter(body, state)
	layout := Layout{Content: r.styles.Main.Render(content)}
	if cardTop >= 0 {
		// Main adds one row of top padding
		layout.CardTop = cardTop + 1
		layout.CardBottom = layout.CardTop + cardHeight
	}
	return layout
}

func (r *Renderer) renderHome(state ViewState) (string, int, int) {
	var b strings.Builder

	cursor := " "
	if state.CursorOn {
		cursor = "▌"
	}
	b.WriteString(r.styles.Title.Render(state.Profile.Name))
	b.WriteString(r.styles.Cursor.Render(cursor))
	b.WriteString("\n")
	if state.Profile.Title != "" {
		b.WriteString(r.styles.Subtitle.Render(state.Profile.Title))
		b.WriteString("\n")
	}
	if state.Profile.Tagline != "" {
		b.WriteString(r.styles.Text.Render(state.Profile.Tagline))
		b.WriteString("\n")
	}
	if len(state.Contacts) > 0 {
		b.WriteString(r.renderLinks(state.Contacts))
		b.WriteString("\n")
	}
	if state.Profile.About != "" {
		b.WriteString(r.styles.Section.Render("About"))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Width(contentWidth(state.Width)).Render(state.Profile.About))
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Section.Render("Projects"))
	b.WriteString("  ")
	b.WriteString(r.renderCounter(state))
	b.WriteString("\n")

	if len(state.Projects) == 0 {
		b.WriteString(r.styles.Dim.Render("Nothing here yet."))
		return b.String(), -1, 0
	}

	top := lipgloss.Height(b.String()) - 1
	p := state.Projects[clampIndex(state.Slide, len(state.Projects))]
	card := r.renderProjectCard(p, state.Width)
	b.WriteString(card)
	b.WriteString("\n")
	b.WriteString(r.renderDots(state.Slide, state.SlideTotal))

	return b.String(), top, lipgloss.Height(card)
}

func (r *Renderer) renderProjectCard(p domain.Project, width int) string {
	var lines []string
	lines = append(lines, r.styles.CardTitle.Render(p.Title))
	if p.IsPlaceholder() {
		lines = append(lines, r.styles.Badge.Render("coming soon"))
	} else {
		if p.Subtitle != "" {
			lines = append(lines, r.styles.Subtitle.Render(p.Subtitle))
		}
		lines = append(lines, "", r.styles.Text.Render(p.Description))
	}
	if len(p.Technologies) > 0 {
		lines = append(lines, "", r.renderTags(p.Technologies))
	}
	return r.styles.Card.Width(cardWidth(width)).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderProject(state ViewState) (string, int, int) {
	p := state.Project
	var b strings.Builder

	b.WriteString(r.styles.Dim.Render("← esc"))
	b.WriteString("  ")
	b.WriteString(r.styles.Title.Render(p.Title))
	b.WriteString("\n")
	if p.Subtitle != "" && !p.IsPlaceholder() {
		b.WriteString(r.styles.Subtitle.Render(p.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Text.Width(contentWidth(state.Width)).Render(p.Description))
	b.WriteString("\n")
	if len(p.Technologies) > 0 {
		b.WriteString(r.renderTags(p.Technologies))
		b.WriteString("\n")
	}

	top, height := -1, 0
	if len(p.Screens) > 0 {
		b.WriteString(r.styles.Section.Render("Screens"))
		b.WriteString("  ")
		b.WriteString(r.renderCounter(state))
		b.WriteString("\n")

		top = lipgloss.Height(b.String()) - 1
		s := p.Screens[clampIndex(state.Slide, len(p.Screens))]
		card := r.styles.Card.Width(cardWidth(state.Width)).Render(
			r.styles.CardTitle.Render(s.Title) + "\n" + r.styles.Dim.Render(s.Caption))
		height = lipgloss.Height(card)
		b.WriteString(card)
		b.WriteString("\n")
		b.WriteString(r.renderDots(state.Slide, state.SlideTotal))
		b.WriteString("\n")
	}

	if len(p.Features) > 0 {
		b.WriteString(r.styles.Section.Render("Features"))
		b.WriteString("\n")
		for _, f := range p.Features {
			b.WriteString(r.styles.Bullet.Render("• "))
			b.WriteString(r.styles.Text.Render(f))
			b.WriteString("\n")
		}
	}

	if len(state.ProjectLinks) > 0 {
		b.WriteString(r.styles.Section.Render("Links"))
		b.WriteString("\n")
		b.WriteString(r.renderLinks(state.ProjectLinks))
	}

	return strings.TrimRight(b.String(), "\n"), top, height
}

func (r *Renderer) renderEaster(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Changelog"))
	b.WriteString("  ")
	b.WriteString(r.styles.Dim.Render("v" + strings.TrimPrefix(state.Version, "v")))
	b.WriteString("\n")
	b.WriteString(state.EasterContent)
	return b.String()
}

func (r *Renderer) renderNotFound(headline, path, hint string) string {
	var b strings.Builder
	b.WriteString(r.styles.NotFound.Render(headline))
	b.WriteString("\n\n")
	if path != "" {
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("Oops! %s not found", path)))
	} else {
		b.WriteString(r.styles.Dim.Render("Oops! Page not found"))
	}
	b.WriteString("\n\n")
	b.WriteString(r.styles.Link.Render(hint))
	return b.String()
}

func (r *Renderer) renderCounter(state ViewState) string {
	if state.SlideTotal == 0 {
		return ""
	}
	arrow := "›"
	if state.SlideDirection == "right" {
		arrow = "‹"
	}
	counter := fmt.Sprintf("%s %d/%d", arrow, state.Slide+1, state.SlideTotal)
	if state.AutoAdvance {
		counter += " ▸"
	}
	return r.styles.Dim.Render(counter)
}

func (r *Renderer) renderDots(index, total int) string {
	if total <= 1 {
		return ""
	}
	dots := make([]string, total)
	for i := range dots {
		if i == index {
			dots[i] = r.styles.DotActive.Render("●")
		} else {
			dots[i] = r.styles.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (r *Renderer) renderTags(tags []string) string {
	rendered := make([]string, len(tags))
	for i, t := range tags {
		rendered[i] = r.styles.Tag.Render("#" + t)
	}
	return strings.Join(rendered, " ")
}

func (r *Renderer) renderLinks(links []domain.Link) string {
	rendered := make([]string, len(links))
	for i, l := range links {
		rendered[i] = r.styles.Link.Render(l.Label)
	}
	return strings.Join(rendered, r.styles.Dim.Render(" · "))
}

// withFooter pads content so the prompt, status and help sit at the bottom
func (r *Renderer) withFooter(body string, state ViewState) string {
	var footer []string
	if state.Prompt != "" {
		footer = append(footer, r.styles.Prompt.Render(state.Prompt))
	}
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.Error
		}
		footer = append(footer, style.Render(state.StatusMessage))
	}
	if state.HelpText != "" {
		footer = append(footer, state.HelpText)
	}
	if len(footer) == 0 {
		return body
	}

	bottom := strings.Join(footer, "\n")

	// Account for container padding (1 top, 1 bottom from Padding(1, 2))
	available := state.Height - 2
	if available <= 0 {
		available = 22
	}
	// One newline always separates body and footer
	padding := available - lipgloss.Height(body) - lipgloss.Height(bottom) + 1
	if padding < 1 {
		padding = 1
	}
	return body + strings.Repeat("\n", padding) + bottom
}

func contentWidth(width int) int {
	if width <= 0 {
		width = 80
	}
	w := width - 4
	if w > 96 {
		w = 96
	}
	if w < 20 {
		w = 20
	}
	return w
}

func clampIndex(i, n int) int {
	if i < 0 || i >= n {
		return 0
	}
	return i
}

func cardWidth(width int) int {
	return contentWidth(width) - 2
}
