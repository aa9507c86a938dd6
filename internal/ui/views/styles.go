package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors for one resolved theme
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Accent2 lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
}

var (
	darkPalette = Palette{
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("241"),
		Accent:  lipgloss.Color("99"),
		Accent2: lipgloss.Color("39"),
		Border:  lipgloss.Color("238"),
		Error:   lipgloss.Color("203"),
		Success: lipgloss.Color("78"),
	}
	lightPalette = Palette{
		Text:    lipgloss.Color("235"),
		Muted:   lipgloss.Color("245"),
		Accent:  lipgloss.Color("55"),
		Accent2: lipgloss.Color("25"),
		Border:  lipgloss.Color("250"),
		Error:   lipgloss.Color("160"),
		Success: lipgloss.Color("28"),
	}
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Dark bool

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Text      lipgloss.Style
	Dim       lipgloss.Style
	Cursor    lipgloss.Style
	Section   lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Badge     lipgloss.Style
	Tag       lipgloss.Style
	Link      lipgloss.Style
	DotActive lipgloss.Style
	Dot       lipgloss.Style
	Bullet    lipgloss.Style
	Help      lipgloss.Style
	HelpBox   lipgloss.Style
	Main      lipgloss.Style
	Prompt    lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	NotFound  lipgloss.Style
}

// NewStyles creates the styles for a dark or light terminal
func NewStyles(dark bool) *Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return &Styles{
		Dark: dark,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Subtitle: lipgloss.NewStyle().Foreground(p.Accent2),
		Text:     lipgloss.NewStyle().Foreground(p.Text),
		Dim:      lipgloss.NewStyle().Foreground(p.Muted),
		Cursor:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent2).
			MarginTop(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Badge: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Tag:       lipgloss.NewStyle().Foreground(p.Accent2),
		Link:      lipgloss.NewStyle().Foreground(p.Accent2).Underline(true),
		DotActive: lipgloss.NewStyle().Foreground(p.Accent),
		Dot:       lipgloss.NewStyle().Foreground(p.Muted),
		Bullet:    lipgloss.NewStyle().Foreground(p.Accent),
		Help:      lipgloss.NewStyle().Foreground(p.Muted),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
		Main:     lipgloss.NewStyle().Padding(1, 2),
		Prompt:   lipgloss.NewStyle().Foreground(p.Accent),
		Status:   lipgloss.NewStyle().Foreground(p.Success),
		Error:    lipgloss.NewStyle().Foreground(p.Error),
		NotFound: lipgloss.NewStyle().Bold(true).Foreground(p.Error),
	}
}
