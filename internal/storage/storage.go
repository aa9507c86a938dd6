// Package storage is a small key-value store with a persistent local area and
// an in-memory session area. Reads fall back and writes report false instead
// of returning errors; failures are logged.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// Area selects where a key lives
type Area int

const (
	Local Area = iota
	Session
)

// Option adjusts a single call
type Option func(*callOptions)

type callOptions struct {
	area Area
}

// InSession targets the in-memory session area
func InSession() Option {
	return func(o *callOptions) { o.area = Session }
}

func resolve(opts []Option) callOptions {
	o := callOptions{area: Local}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// file is the on-disk layout of the local area
type file struct {
	Version int               `toml:"version"`
	Entries map[string]string `toml:"entries"`
}

// Store holds both areas
type Store struct {
	mu      sync.Mutex
	path    string
	local   map[string]string
	session map[string]string
	logger  *zap.Logger
}

// Open loads the local area from path. An empty path keeps the local area in
// memory only. A missing file is not an error.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		path:    path,
		local:   make(map[string]string),
		session: make(map[string]string),
		logger:  logger,
	}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse storage file: %w", err)
	}
	for k, v := range f.Entries {
		s.local[k] = v
	}
	return s, nil
}

// Memory returns a store with no backing file
func Memory() *Store {
	s, _ := Open("", nil)
	return s
}

// GetString returns the raw value for key or fallback when it is unset
func (s *Store) GetString(key, fallback string, opts ...Option) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.area(resolve(opts).area)[key]; ok {
		return v
	}
	return fallback
}

// SetString stores a raw value
func (s *Store) SetString(key, value string, opts ...Option) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := resolve(opts)
	m := s.area(o.area)
	prev, had := m[key]
	m[key] = value
	if o.area == Local {
		if err := s.flush(); err != nil {
			s.logger.Warn("storage write failed", zap.String("key", key), zap.Error(err))
			if had {
				m[key] = prev
			} else {
				delete(m, key)
			}
			return false
		}
	}
	return true
}

// Remove deletes key
func (s *Store) Remove(key string, opts ...Option) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := resolve(opts)
	m := s.area(o.area)
	prev, had := m[key]
	if !had {
		return true
	}
	delete(m, key)
	if o.area == Local {
		if err := s.flush(); err != nil {
			s.logger.Warn("storage remove failed", zap.String("key", key), zap.Error(err))
			m[key] = prev
			return false
		}
	}
	return true
}

// Get decodes a JSON value stored under key, or returns fallback when the key
// is unset or holds something that does not decode into T
func Get[T any](s *Store, key string, fallback T, opts ...Option) T {
	raw := s.GetString(key, "", opts...)
	if raw == "" {
		return fallback
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Debug("storage value did not decode", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return v
}

// Set encodes value as JSON and stores it under key
func Set(s *Store, key string, value any, opts ...Option) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("storage value did not encode", zap.String("key", key), zap.Error(err))
		return false
	}
	return s.SetString(key, string(data), opts...)
}

func (s *Store) area(a Area) map[string]string {
	if a == Session {
		return s.session
	}
	return s.local
}

// flush writes the local area. Callers hold s.mu.
func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	data, err := toml.Marshal(file{Version: 1, Entries: s.local})
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
