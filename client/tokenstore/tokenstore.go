// Package tokenstore persists the bearer token the client attaches to
// outgoing requests.
package tokenstore

import "sync"

// Key is the slot the token is stored under.
const Key = "auth-token"

// Store holds the current bearer token. Get returns "" with a nil error when
// no token is stored. Implementations must be safe for concurrent use.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// MemoryStore keeps the token in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore returns a store pre-loaded with token (may be empty).
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (m *MemoryStore) Get() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) Set(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete() error {
	return m.Set("")
}
