package services

import (
	"sync"

	"coffeinimals/internal/models"
)

// SessionManager owns the live current-user records. A session is created
// on successful login and torn down on logout; it is never shared across
// accounts. Readers always get a copy, so a consumer can never hold a
// reference that mutations change underneath it; re-reading after a
// mutation is the way to observe the new state.
type SessionManager struct {
	sessions map[string]models.User
	mu       sync.RWMutex
}

// NewSessionManager creates a new SessionManager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]models.User),
	}
}

// copyFavorites copies a favorites list, never returning nil so the JSON
// view stays a list rather than null.
func copyFavorites(favorites []string) []string {
	return append(make([]string, 0, len(favorites)), favorites...)
}

// Put stores the user as the live session for its account ID.
func (m *SessionManager) Put(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.Favorites = copyFavorites(user.Favorites)
	m.sessions[user.ID] = user
}

// Current returns a snapshot of the session for the given account ID.
// The second return value reports whether a session exists.
func (m *SessionManager) Current(accountID string) (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.sessions[accountID]
	if !ok {
		return models.User{}, false
	}
	user.Favorites = copyFavorites(user.Favorites)
	return user, true
}

// Update applies fn to the live session record, if one exists.
func (m *SessionManager) Update(accountID string, fn func(*models.User)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.sessions[accountID]
	if !ok {
		return false
	}
	fn(&user)
	m.sessions[accountID] = user
	return true
}

// Drop removes the session for the given account ID and reports whether
// one existed.
func (m *SessionManager) Drop(accountID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.sessions[accountID]
	delete(m.sessions, accountID)
	return ok
}
