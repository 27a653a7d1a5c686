package repository

import (
	"context"
	"sync"
	"time"

	"heating_leads/internal/models"
)

// SessionMemory keeps sessions in process memory. Sessions are lost on restart.
type SessionMemory struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewSessionMemory() *SessionMemory {
	return &SessionMemory{sessions: make(map[string]models.Session)}
}

var _ SessionRepo = (*SessionMemory)(nil)

func (r *SessionMemory) Save(_ context.Context, s models.Session) error {
	now := time.Now().UTC()
	s.CreatedAt = utcOr(s.CreatedAt, now)
	s.UpdatedAt = utcOr(s.UpdatedAt, now)

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.sessions[s.ID]; ok {
		s.CreatedAt = prev.CreatedAt
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *SessionMemory) Load(_ context.Context, id string) (models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (r *SessionMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *SessionMemory) IdleBefore(_ context.Context, cutoff time.Time) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
