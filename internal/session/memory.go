package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	username  string
	expiresAt time.Time
}

// MemoryStore is an in-process Store suitable for single-instance
// deployments and tests. Expired entries are dropped lazily on lookup and
// swept periodically.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewMemoryStore builds a MemoryStore with the given TTL and starts the
// background sweeper.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		stop:     make(chan struct{}),
		now:      time.Now,
	}
	go s.sweep()
	return s
}

// Create issues a new token bound to the given username.
func (s *MemoryStore) Create(_ context.Context, username string) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = memoryEntry{username: username, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

// Lookup resolves a token to its username.
func (s *MemoryStore) Lookup(_ context.Context, token string) (string, bool, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", false, nil
	}
	return entry.username, true, nil
}

// Destroy invalidates a token.
func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Close stops the background sweeper.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := s.now()
			s.mu.Lock()
			for token, entry := range s.sessions {
				if now.After(entry.expiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
