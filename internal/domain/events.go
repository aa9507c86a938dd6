package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRouteChanged EventType = "RouteChanged"
	EventSlideChanged EventType = "SlideChanged"
	EventThemeChanged EventType = "ThemeChanged"
	EventLinkCopied   EventType = "LinkCopied"
	EventError        EventType = "Error"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RouteChangedEvent is emitted after the UI navigates
type RouteChangedEvent struct {
	From string
	To   string
}

func (e RouteChangedEvent) Type() EventType { return EventRouteChanged }

// SlideChangedEvent is emitted when a carousel shows a different slide
type SlideChangedEvent struct {
	Carousel  string // "projects" or "screens"
	Key       string
	Index     int
	Direction string
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// ThemeChangedEvent is emitted when the theme mode or resolved theme changes
type ThemeChangedEvent struct {
	Mode     string
	Resolved string
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// LinkCopiedEvent is emitted after a contact link was put on the clipboard
type LinkCopiedEvent struct {
	URL string
}

func (e LinkCopiedEvent) Type() EventType { return EventLinkCopied }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
