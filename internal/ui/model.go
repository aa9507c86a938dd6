package ui

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"folio/internal/blink"
	"folio/internal/carousel"
	"folio/internal/catalog"
	"folio/internal/changelog"
	"folio/internal/clock"
	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/gesture"
	"folio/internal/host"
	"folio/internal/links"
	"folio/internal/routes"
	"folio/internal/storage"
	"folio/internal/theme"
	"folio/internal/ui/handlers"
	"folio/internal/ui/input"
	inputtypes "folio/internal/ui/input/types"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

// statusTTL is how long a status line message stays up
const statusTTL = 4 * time.Second

// Options wires the model to its collaborators. Zero values get in-memory
// defaults. Without a Scheduler the model owns a clock.Queued and runs its
// callbacks on the Bubble Tea goroutine through commands.
type Options struct {
	Config      *config.Config
	Bus         eventbus.EventBus
	Catalog     *catalog.Catalog
	Store       *storage.Store
	Scheduler   clock.Scheduler
	Now         func() time.Time
	Visible     *host.Flag
	PrefersDark host.Signal
	Copier      *links.Copier
	Logger      *zap.Logger

	// StartPath is the route shown first
	StartPath string
	// Changelog is the easter report markdown; empty means the embedded one
	Changelog string
	Version   string
}

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	catalog *catalog.Catalog
	logger  *zap.Logger
	sched   clock.Scheduler
	queue   *clock.Queued
	visible *host.Flag
	state   *state.AppState

	statusTimer clock.Timer
	// resumeVisible is the focus state to restore when the pager closes
	resumeVisible bool

	history  *routes.History
	projects *carousel.Controller
	screens  *carousel.Controller
	blinker  *blink.Blinker
	theme    *theme.Controller
	gesture  *gesture.Recognizer
	copier   *links.Copier

	keys         keyMap
	help         help.Model
	helpRenderer *HelpRenderer
	renderer     *views.Renderer
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	viewport     viewport.Model
	report       changelog.Report
	layout       views.Layout

	inPagerMode bool
	quitting    bool
	done        chan struct{}
	closeOnce   sync.Once

	// Program reference for terminal management
	program *tea.Program
	pager   *PagerOps
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sched := opts.Scheduler
	var queue *clock.Queued
	if sched == nil {
		queue = clock.NewQueued(64, logger)
		sched = queue
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	visible := opts.Visible
	if visible == nil {
		visible = host.NewFlag(true)
	}
	prefersDark := opts.PrefersDark
	if prefersDark == nil {
		prefersDark = host.NewFlag(true)
	}
	store := opts.Store
	if store == nil {
		store = storage.Memory()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	copier := opts.Copier
	if copier == nil {
		copier = links.NewCopier(nil)
	}
	markdown := opts.Changelog
	if markdown == "" {
		markdown = changelog.Embedded()
	}
	version := opts.Version
	if version == "" {
		version = changelog.DefaultVersion
	}

	keys := newKeyMap()
	appState := state.NewAppState()

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		catalog:      cat,
		logger:       logger,
		sched:        sched,
		queue:        queue,
		visible:      visible,
		state:        appState,
		history:      routes.NewHistory(routes.Parse(opts.StartPath)),
		copier:       copier,
		keys:         keys,
		help:         help.New(),
		helpRenderer: NewHelpRenderer(keys),
		inputHandler: input.New(),
		eventHandler: handlers.NewEventHandler(appState),
		viewport:     viewport.New(0, 0),
		report:       changelog.Parse(markdown, version),
		done:         make(chan struct{}),
	}

	m.theme = theme.New(prefersDark, store, theme.Options{
		Fallback: theme.ParseMode(cfg.UI.Theme),
		OnChange: m.onThemeChange,
		Logger:   logger,
	})
	m.renderer = views.NewRenderer(views.NewStyles(m.theme.Dark()))

	m.projects = carousel.New(sched, visible, carousel.Options{
		Total:    len(cat.Projects),
		Interval: cfg.Carousel.Interval(),
		Key:      "projects",
		OnChange: m.slideObserver("projects"),
		Logger:   logger,
	})
	m.screens = carousel.New(sched, visible, carousel.Options{
		Interval: cfg.Carousel.Interval(),
		OnChange: m.slideObserver("screens"),
		Logger:   logger,
	})
	m.blinker = blink.New(sched, now, visible, cfg.UI.ReduceMotion, nil)
	m.gesture = gesture.NewRecognizer(gesture.Options{
		SwipeThreshold: cfg.Gesture.SwipeThreshold,
		TapThreshold:   cfg.Gesture.TapThreshold,
		OnSwipeLeft:    m.next,
		OnSwipeRight:   m.previous,
		OnTap:          m.tap,
	})

	m.enter(m.history.Current())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Close stops every timer the model owns
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		m.projects.Close()
		m.screens.Close()
		m.blinker.Close()
		m.theme.Close()
		m.stopStatusTimer()
		close(m.done)
	})
}

// Init starts draining the model's own timer queue
func (m *Model) Init() tea.Cmd {
	return m.waitForTimer()
}

// waitForTimer delivers the next fired callback of the owned queue as a
// message. It is re-armed after every delivery and released by Close.
func (m *Model) waitForTimer() tea.Cmd {
	if m.queue == nil {
		return nil
	}
	queue, done := m.queue, m.done
	return func() tea.Msg {
		select {
		case fire := <-queue.C():
			return queuedTimerMsg{fire: fire}
		case <-done:
			return nil
		}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.resizeViewport()
		if m.history.Current().Kind == routes.Easter {
			m.renderEaster()
		}
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	return m.handleNonKeyboardMsg(msg)
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.FocusMsg:
		if m.inPagerMode {
			m.resumeVisible = true
		} else {
			m.visible.Set(true)
		}

	case tea.BlurMsg:
		m.gesture.Cancel()
		if m.inPagerMode {
			m.resumeVisible = false
		} else {
			m.visible.Set(false)
		}

	case TimerMsg:
		if msg.Fire != nil {
			msg.Fire()
		}

	case queuedTimerMsg:
		msg.fire()
		return m, m.waitForTimer()

	case EventMsg:
		if seq := m.eventHandler.HandleEvent(msg.Event); seq != 0 {
			m.stopStatusTimer()
			m.statusTimer = m.sched.AfterFunc(statusTTL, func() {
				m.statusTimer = nil
				m.state.ClearStatus(seq)
			})
		}

	case copyResultMsg:
		if msg.err != nil {
			m.logger.Warn("copy failed", zap.Error(msg.err))
			m.publish(eventbus.ErrorEvent{Message: "copy failed", Err: msg.err})
		} else {
			m.publish(eventbus.LinkCopiedEvent{URL: msg.url})
		}

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
			m.publish(eventbus.ErrorEvent{Message: "pager failed", Err: msg.err})
		}

	case pauseRenderingMsg:
		if !m.inPagerMode {
			m.resumeVisible = m.visible.Value()
		}
		m.inPagerMode = true
		m.visible.Set(false)

	case resumeRenderingMsg:
		m.inPagerMode = false
		m.visible.Set(m.resumeVisible)

	default:
		// Cursor blink and friends for the goto prompt
		return m, m.inputHandler.Update(msg)
	}
	return m, nil
}

// View renders the current route
func (m *Model) View() string {
	if m.quitting || m.inPagerMode {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}
	m.layout = m.renderer.Render(m.buildViewState())
	return m.layout.Content
}

func (m *Model) buildViewState() views.ViewState {
	route := m.history.Current()
	vs := views.ViewState{
		Width:         m.state.Width,
		Height:        m.state.Height,
		Profile:       m.catalog.Profile,
		Contacts:      displayableLinks(m.catalog.Profile.Contacts),
		Projects:      m.catalog.Projects,
		CursorOn:      m.blinker.On(),
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		HelpText:      m.help.View(m.keys),
		ShowHelp:      m.state.ShowHelp,
	}
	if vs.ShowHelp {
		vs.FullHelp = m.helpRenderer.renderHelpContent(m.renderer.Styles())
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.Prompt = ti.View()
	}

	switch route.Kind {
	case routes.Home:
		vs.Screen = views.ScreenHome
		fillSlide(&vs, m.projects.State())

	case routes.Project:
		vs.Screen = views.ScreenProject
		if p, ok := m.catalog.BySlug(route.Slug); ok {
			vs.Project = &p
			vs.ProjectLinks = displayableLinks(p.Links)
			fillSlide(&vs, m.screens.State())
		}

	case routes.Easter:
		vs.Screen = views.ScreenEaster
		vs.Version = m.report.Version
		vs.EasterContent = m.viewport.View()

	default:
		vs.Screen = views.ScreenNotFound
		vs.MissingPath = route.Raw
	}
	return vs
}

func fillSlide(vs *views.ViewState, s carousel.State) {
	vs.Slide = s.Index
	vs.SlideTotal = s.Total
	vs.SlideDirection = s.Direction.String()
	vs.AutoAdvance = s.Running
}

// CurrentRoute implements input/types.Context
func (m *Model) CurrentRoute() routes.Route {
	return m.history.Current()
}

// SlideCount implements input/types.Context
func (m *Model) SlideCount() int {
	if c := m.activeCarousel(); c != nil {
		return c.State().Total
	}
	return 0
}

// ShowingHelp implements input/types.Context
func (m *Model) ShowingHelp() bool {
	return m.state.ShowHelp
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if a.Direction == "left" {
			m.previous()
		} else {
			m.next()
		}

	case inputtypes.GoToSlideAction:
		if c := m.activeCarousel(); c != nil {
			c.GoTo(a.Index)
		}

	case inputtypes.ScrollAction:
		m.scroll(a.Direction)

	case inputtypes.OpenProjectAction:
		m.openProject()

	case inputtypes.BackAction:
		m.back()

	case inputtypes.OpenPathAction:
		m.navigate(routes.Parse(a.Path))

	case inputtypes.SubmitTextAction:
		path := strings.TrimSpace(a.Text)
		if path == "" {
			return nil
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		m.navigate(routes.Parse(path))

	case inputtypes.ToggleThemeAction:
		m.theme.Toggle()

	case inputtypes.CopyLinkAction:
		return m.copyLink()

	case inputtypes.OpenPagerAction:
		return m.openPager()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// activeCarousel returns the carousel shown on the current route, if any
func (m *Model) activeCarousel() *carousel.Controller {
	route := m.history.Current()
	switch route.Kind {
	case routes.Home:
		return m.projects
	case routes.Project:
		if _, ok := m.catalog.BySlug(route.Slug); ok {
			return m.screens
		}
	}
	return nil
}

func (m *Model) next() {
	if c := m.activeCarousel(); c != nil {
		c.Next()
	}
}

func (m *Model) previous() {
	if c := m.activeCarousel(); c != nil {
		c.Previous()
	}
}

func (m *Model) tap() {
	if m.history.Current().Kind == routes.Home {
		m.openProject()
	}
}

func (m *Model) openProject() {
	if len(m.catalog.Projects) == 0 {
		return
	}
	p := m.catalog.Projects[m.projects.Index()]
	m.navigate(routes.Parse(routes.ProjectPath(p.Slug)))
}

// navigate pushes to onto the history and enters it
func (m *Model) navigate(to routes.Route) {
	from := m.history.Current()
	if !m.history.Push(to) {
		return
	}
	m.enter(to)
	m.routeChanged(from, to)
}

func (m *Model) back() {
	from := m.history.Current()
	to, ok := m.history.Back()
	if !ok {
		return
	}
	m.enter(to)
	m.routeChanged(from, to)
}

func (m *Model) routeChanged(from, to routes.Route) {
	m.logger.Debug("route changed",
		zap.String("from", from.Path()),
		zap.String("to", to.Path()),
		zap.Stringer("screen", to.Kind))
	m.publish(eventbus.RouteChangedEvent{From: from.Path(), To: to.Path()})
}

// enter points the carousels at the new route. Only the carousel on screen
// auto-advances; the screens carousel is keyed by project slug so moving to
// another project starts it over.
func (m *Model) enter(to routes.Route) {
	m.gesture.Cancel()

	if to.Kind == routes.Home {
		m.projects.SetInterval(m.config.Carousel.Interval())
	} else {
		m.projects.SetInterval(0)
	}

	// Leaving a project forgets its key so returning to it starts fresh
	p, ok := m.catalog.BySlug(to.Slug)
	if to.Kind == routes.Project && ok {
		m.screens.SetKey(p.Slug)
		m.screens.SetTotal(len(p.Screens))
	} else {
		if to.Kind == routes.Project {
			m.logger.Debug("unknown project", zap.String("slug", to.Slug))
		}
		m.screens.SetTotal(0)
		m.screens.SetKey("")
	}

	if to.Kind == routes.Easter {
		m.renderEaster()
		m.viewport.GotoTop()
	}
}

func (m *Model) scroll(direction string) {
	if m.history.Current().Kind != routes.Easter {
		return
	}
	switch direction {
	case "up":
		m.viewport.LineUp(1)
	case "down":
		m.viewport.LineDown(1)
	case "pageup":
		m.viewport.ViewUp()
	case "pagedown":
		m.viewport.ViewDown()
	case "top":
		m.viewport.GotoTop()
	case "bottom":
		m.viewport.GotoBottom()
	}
}

func (m *Model) resizeViewport() {
	m.viewport.Width = m.state.Width - 4
	// padding, title line, status and help lines
	h := m.state.Height - 6
	if h < 3 {
		h = 3
	}
	m.viewport.Height = h
}

// renderEaster re-renders the changelog for the current width and theme
func (m *Model) renderEaster() {
	out, err := changelog.Render(m.report, m.viewport.Width, m.theme.Dark())
	if err != nil {
		m.logger.Warn("changelog render failed", zap.Error(err))
		m.publish(eventbus.ErrorEvent{Message: "changelog render failed", Err: err})
		out = m.report.Body
	}
	m.state.EasterRendered = out
	m.viewport.SetContent(out)
}

func (m *Model) onThemeChange(mode theme.Mode, resolved theme.Resolved) {
	m.renderer.SetStyles(views.NewStyles(resolved == theme.ResolvedDark))
	if m.history.Current().Kind == routes.Easter {
		m.renderEaster()
	}
	m.publish(eventbus.ThemeChangedEvent{Mode: string(mode), Resolved: string(resolved)})
}

// slideObserver publishes a SlideChanged event whenever the named carousel
// shows a different slide
func (m *Model) slideObserver(name string) func(carousel.State) {
	var last carousel.State
	seen := false
	return func(s carousel.State) {
		if seen && s.Index == last.Index && s.Key == last.Key && s.Total == last.Total {
			return
		}
		seen = true
		last = s
		if s.Total == 0 {
			return
		}
		m.publish(eventbus.SlideChangedEvent{
			Carousel:  name,
			Key:       s.Key,
			Index:     s.Index,
			Direction: s.Direction.String(),
		})
	}
}

func (m *Model) copyLink() tea.Cmd {
	candidates := m.catalog.Profile.Contacts
	route := m.history.Current()
	if route.Kind == routes.Project {
		if p, ok := m.catalog.BySlug(route.Slug); ok && len(displayableLinks(p.Links)) > 0 {
			candidates = p.Links
		}
	}

	allowed := displayableLinks(candidates)
	if len(allowed) == 0 {
		m.publish(eventbus.ErrorEvent{Message: "no link to copy"})
		return nil
	}

	raw := allowed[0].URL
	copier := m.copier
	return func() tea.Msg {
		url, err := copier.Copy(raw)
		return copyResultMsg{url: url, err: err}
	}
}

// openPager hands the rendered changelog to ov
func (m *Model) openPager() tea.Cmd {
	if m.pager == nil {
		m.publish(eventbus.ErrorEvent{Message: "pager unavailable"})
		return nil
	}
	if m.state.EasterRendered == "" {
		m.renderEaster()
	}
	content := m.state.EasterRendered
	program := m.program
	pager := m.pager
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := pager.ShowInPager(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

func (m *Model) stopStatusTimer() {
	if m.statusTimer != nil {
		m.statusTimer.Stop()
		m.statusTimer = nil
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// displayableLinks keeps the links that pass the link policy, normalized
func displayableLinks(in []domain.Link) []domain.Link {
	var out []domain.Link
	for _, l := range in {
		if clean, ok := links.Displayable(l.URL); ok {
			out = append(out, domain.Link{Label: l.Label, URL: clean})
		}
	}
	return out
}
