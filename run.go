package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"folio/internal/catalog"
	"folio/internal/config"
	"folio/internal/eventbus"
	"folio/internal/host"
	"folio/internal/logging"
	"folio/internal/storage"
	"folio/internal/ui"
)

// uiEvents are forwarded to the model and shown on the status line
var uiEvents = []eventbus.EventType{
	eventbus.EventError,
	eventbus.EventLinkCopied,
	eventbus.EventThemeChanged,
	eventbus.EventConfigSaved,
}

// app holds the services the TUI is built from
type app struct {
	cfg     *config.Config
	bus     eventbus.EventBus
	store   *storage.Store
	catalog *catalog.Catalog
	events  chan eventbus.DomainEvent

	logger atomic.Pointer[zap.Logger]
}

// newApp creates the bus first so that loading the config, which may write
// defaults on first run, is already observed by the UI subscribers
func newApp(opts *rootOptions) (*app, error) {
	a := &app{
		bus:    eventbus.New(nil),
		events: make(chan eventbus.DomainEvent, 100),
	}
	a.logger.Store(zap.NewNop())

	for _, t := range uiEvents {
		a.bus.Subscribe(t, a.forward)
	}
	// Navigation and carousel events are only interesting in the log
	for _, t := range []eventbus.EventType{eventbus.EventRouteChanged, eventbus.EventSlideChanged, eventbus.EventConfigLoaded} {
		a.bus.Subscribe(t, a.audit)
	}

	cfg, err := config.NewConfigServiceWithBus(opts.configPath, a.bus).Load()
	if err != nil {
		a.bus.Close()
		return nil, err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		Debug: opts.debug,
	})
	if err != nil {
		a.bus.Close()
		return nil, err
	}
	a.logger.Store(logger)
	a.bus.SetLogger(logger)

	store, err := storage.Open(cfg.Storage.Path, logger)
	if err != nil {
		logger.Warn("storage unavailable, preferences will not persist", zap.Error(err))
		store = storage.Memory()
	}
	a.store = store

	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		a.close()
		return nil, err
	}
	a.catalog = cat
	return a, nil
}

func (a *app) log() *zap.Logger {
	return a.logger.Load()
}

func (a *app) forward(e eventbus.DomainEvent) {
	select {
	case a.events <- e:
	default:
		a.log().Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
	}
}

func (a *app) audit(e eventbus.DomainEvent) {
	a.log().Debug("event", zap.String("type", string(e.Type())), zap.Any("event", e))
}

func (a *app) close() {
	a.bus.Close()
	_ = a.log().Sync()
}

// runTUI wires the services together and runs the Bubble Tea program until
// the user quits
func runTUI(opts *rootOptions) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer a.close()
	logger := a.log()

	visible := host.NewFlag(true)
	prefersDark := host.NewFlag(lipgloss.HasDarkBackground())

	logger.Info("starting folio",
		zap.String("version", version),
		zap.String("route", opts.route),
		zap.Int("projects", len(a.catalog.Projects)))

	// Without a scheduler the model queues its own timers and runs them on
	// the Bubble Tea goroutine
	model := ui.NewModel(ui.Options{
		Config:      a.cfg,
		Bus:         a.bus,
		Catalog:     a.catalog,
		Store:       a.store,
		Visible:     visible,
		PrefersDark: prefersDark,
		Logger:      logger,
		StartPath:   opts.route,
		Version:     version,
	})
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	model.SetProgram(p)

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		for {
			select {
			case <-ctx.Done():
				p.Quit()
				return
			case e := <-a.events:
				p.Send(ui.EventMsg{Event: e})
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return err
	}
	logger.Info("folio exited normally")
	return nil
}
