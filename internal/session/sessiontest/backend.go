// Package sessiontest provides an in-memory session backend for tests.
package sessiontest

import (
	"context"
	"sync"
	"time"

	"ideate/internal/model"
	"ideate/internal/session"
)

type Backend struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

var _ session.Backend = (*Backend)(nil)

func NewBackend() *Backend {
	return &Backend{sessions: map[string]model.Session{}}
}

func (b *Backend) Find(_ context.Context, id string, now time.Time) (*model.Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sessions[id]
	if !ok || !s.ExpiresAt.After(now) {
		return nil, nil
	}
	return &s, nil
}

func (b *Backend) Save(_ context.Context, s *model.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[s.ID] = *s
	return nil
}

func (b *Backend) Delete(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, id)
	return nil
}

func (b *Backend) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var n int64
	for id, s := range b.sessions {
		if !s.ExpiresAt.After(now) {
			delete(b.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored sessions, expired ones included.
func (b *Backend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}
