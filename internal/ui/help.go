package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"folio/internal/ui/views"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// renderHelpContent renders the help popup body
func (r *HelpRenderer) renderHelpContent(styles *views.Styles) string {
	sections := []helpSection{
		{"Carousel", []key.Binding{r.keys.Prev, r.keys.Next, r.keys.Jump, r.keys.Open}},
		{"Navigation", []key.Binding{r.keys.Back, r.keys.Goto, r.keys.Easter, r.keys.Pager, r.keys.Scroll}},
		{"Other", []key.Binding{r.keys.Theme, r.keys.Copy, r.keys.Help, r.keys.Quit}},
	}

	var help strings.Builder
	help.WriteString(styles.Title.Render("folio help"))
	help.WriteString("\n")

	for _, section := range sections {
		help.WriteString(styles.Section.Render(section.title))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, h.Desc))
		}
	}
	help.WriteString("\n")
	help.WriteString(styles.Dim.Render("Drag the card sideways to swipe, click it to open."))

	return help.String()
}

// PagerOps opens long content in ov
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager shows content using the ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to restore the screen before Bubble Tea takes it back
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
