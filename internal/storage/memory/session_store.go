package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

type sessionEntry struct {
	session   domain.Session
	expiresAt time.Time
}

// sessionStoreInMemory хранит сессии с проверкой срока жизни при чтении.
type sessionStoreInMemory struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
}

// NewSessionStore возвращает in-memory хранилище сессий.
func NewSessionStore() domain.SessionStore {
	return &sessionStoreInMemory{
		sessions: make(map[string]sessionEntry),
	}
}

// Put сохраняет сессию с ограниченным временем жизни.
func (s *sessionStoreInMemory) Put(_ context.Context, sess domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.Token] = sessionEntry{
		session:   sess,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Get возвращает сессию или ErrSessionNotFound, если токен неизвестен
// либо срок жизни истёк.
func (s *sessionStoreInMemory) Get(_ context.Context, token string) (domain.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return entry.session, nil
}

// Delete идемпотентен.
func (s *sessionStoreInMemory) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

var _ domain.SessionStore = (*sessionStoreInMemory)(nil)
