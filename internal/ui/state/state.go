package state

// AppState contains the UI state that is not owned by a controller
type AppState struct {
	Width  int
	Height int

	ShowHelp bool

	// Status line
	StatusMessage string
	StatusIsError bool
	statusSeq     uint64

	// Changelog
	EasterRendered string // glamour output for the current width and theme
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetStatus shows a status line message and returns its sequence number
func (s *AppState) SetStatus(msg string, isError bool) uint64 {
	s.statusSeq++
	s.StatusMessage = msg
	s.StatusIsError = isError
	return s.statusSeq
}

// ClearStatus removes the status message if it is still the one numbered seq
func (s *AppState) ClearStatus(seq uint64) bool {
	if seq != s.statusSeq || s.StatusMessage == "" {
		return false
	}
	s.StatusMessage = ""
	s.StatusIsError = false
	return true
}
