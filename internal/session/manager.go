package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager tracks live session stores by ID for the HTTP layer.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Store
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Store)}
}

// Create allocates a new session and returns its ID.
func (m *Manager) Create() string {
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = NewStore()
	return id
}

// Get returns the store for a session ID.
func (m *Manager) Get(id string) (*Store, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	store, ok := m.sessions[id]
	return store, ok
}

// Destroy clears and removes a session.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.sessions[id]; ok {
		store.ResetAll()
		delete(m.sessions, id)
	}
}
