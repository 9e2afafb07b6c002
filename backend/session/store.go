// Package session holds the portal's client-side state: one logged-in
// flag, the cached normalized user record, and the theme preference.
// The state is persisted as a small JSON file and survives restarts
// for the lifetime of the session.
package session

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/dsgnbruno/member-area-v2/backend/models"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type state struct {
	LoggedIn bool         `json:"userLoggedIn"`
	User     *models.User `json:"userData,omitempty"`
	Theme    string       `json:"theme,omitempty"`
}

// Store persists session state to a file and notifies subscribers on
// every change. Notification replaces the browser's storage event:
// admin status is recomputed on login, logout or an external change,
// never by polling.
type Store struct {
	mu        sync.Mutex
	path      string
	state     state
	listeners []func()
}

// Open loads the store from path. A missing or corrupt file degrades
// to an anonymous session instead of failing; corrupt local state must
// never lock a user out.
func Open(path string) *Store {
	s := &Store{path: path, state: state{Theme: ThemeLight}}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var loaded state
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s
	}
	if loaded.Theme == "" {
		loaded.Theme = ThemeLight
	}
	if loaded.User == nil {
		loaded.LoggedIn = false
	}
	s.state = loaded
	return s
}

// Subscribe registers a callback invoked after every persisted change.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// LoggedIn reports whether a user record is cached.
func (s *Store) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LoggedIn && s.state.User != nil
}

// CurrentUser returns the cached record, or nil when anonymous.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.LoggedIn || s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// SetUser caches the normalized record and marks the session logged in.
func (s *Store) SetUser(user models.User) {
	s.mu.Lock()
	s.state.LoggedIn = true
	s.state.User = &user
	s.persistLocked()
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()
	notify(listeners)
}

// Clear drops the cached record and flag. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	s.state.LoggedIn = false
	s.state.User = nil
	s.persistLocked()
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()
	notify(listeners)
}

// Theme returns the persisted theme preference.
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Theme
}

// SetTheme stores the theme preference. Unknown values fall back to
// light so a bad write can't wedge the UI.
func (s *Store) SetTheme(theme string) {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	s.mu.Lock()
	s.state.Theme = theme
	s.persistLocked()
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()
	notify(listeners)
}

// persistLocked writes the state file. Best effort: the in-memory
// state is authoritative for this process either way.
func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}

func (s *Store) snapshotListenersLocked() []func() {
	out := make([]func(), len(s.listeners))
	copy(out, s.listeners)
	return out
}

func notify(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}
