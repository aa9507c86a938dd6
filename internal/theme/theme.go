// Package theme resolves the light/dark theme from an explicit mode or the
// host color-scheme preference.
package theme

import (
	"go.uber.org/zap"

	"folio/internal/host"
	"folio/internal/storage"
)

// StorageKey is where the chosen mode is persisted
const StorageKey = "theme-mode"

// Mode is what the user asked for
type Mode string

const (
	System Mode = "system"
	Light  Mode = "light"
	Dark   Mode = "dark"
)

// ParseMode returns the mode named by s, or System for anything unknown
func ParseMode(s string) Mode {
	switch Mode(s) {
	case Light, Dark, System:
		return Mode(s)
	default:
		return System
	}
}

// Resolved is the theme actually applied
type Resolved string

const (
	ResolvedLight Resolved = "light"
	ResolvedDark  Resolved = "dark"
)

// Controller owns the theme mode
type Controller struct {
	mode        Mode
	resolved    Resolved
	prefersDark host.Signal
	store       *storage.Store
	onChange    func(Mode, Resolved)
	logger      *zap.Logger

	unsubscribe func()
}

// Options configures New
type Options struct {
	// Fallback is used when the store has no valid mode
	Fallback Mode
	OnChange func(Mode, Resolved)
	Logger   *zap.Logger
}

// New restores the stored mode and resolves it against prefersDark
func New(prefersDark host.Signal, store *storage.Store, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fallback := opts.Fallback
	if fallback == "" {
		fallback = System
	}

	c := &Controller{
		prefersDark: prefersDark,
		store:       store,
		onChange:    opts.OnChange,
		logger:      logger,
	}
	c.mode = ParseMode(store.GetString(StorageKey, string(fallback)))
	c.resolved = c.resolve()
	c.follow()
	return c
}

// Mode returns the selected mode
func (c *Controller) Mode() Mode { return c.mode }

// Resolved returns the applied theme
func (c *Controller) Resolved() Resolved { return c.resolved }

// Dark reports whether the dark theme is applied
func (c *Controller) Dark() bool { return c.resolved == ResolvedDark }

// Toggle switches from System to the opposite of what is currently shown,
// and from an explicit mode back to System
func (c *Controller) Toggle() {
	if c.mode == System {
		if c.resolved == ResolvedDark {
			c.Set(Light)
		} else {
			c.Set(Dark)
		}
		return
	}
	c.Set(System)
}

// Set selects a mode and persists it
func (c *Controller) Set(mode Mode) {
	mode = ParseMode(string(mode))
	if mode == c.mode {
		return
	}
	c.mode = mode
	if !c.store.SetString(StorageKey, string(mode)) {
		c.logger.Warn("theme mode not persisted", zap.String("mode", string(mode)))
	}
	c.follow()
	c.apply()
}

// Close stops following the host preference
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// follow subscribes to the host preference only while the mode is System
func (c *Controller) follow() {
	if c.mode != System {
		c.Close()
		return
	}
	if c.unsubscribe == nil {
		c.unsubscribe = c.prefersDark.Subscribe(func(bool) { c.apply() })
	}
}

func (c *Controller) apply() {
	resolved := c.resolve()
	c.resolved = resolved
	c.logger.Debug("theme applied", zap.String("mode", string(c.mode)), zap.String("resolved", string(resolved)))
	if c.onChange != nil {
		c.onChange(c.mode, resolved)
	}
}

func (c *Controller) resolve() Resolved {
	switch c.mode {
	case Dark:
		return ResolvedDark
	case Light:
		return ResolvedLight
	}
	if c.prefersDark.Value() {
		return ResolvedDark
	}
	return ResolvedLight
}
