package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"heating_leads/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "wizard:session:"
	scanBatchSize    = 100
)

// SessionRedis stores each session as a JSON value that expires after ttl of inactivity.
type SessionRedis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRedis(client *redis.Client, ttl time.Duration) *SessionRedis {
	return &SessionRedis{client: client, ttl: ttl}
}

var _ SessionRepo = (*SessionRedis)(nil)

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *SessionRedis) Save(ctx context.Context, s models.Session) error {
	now := time.Now().UTC()
	s.CreatedAt = utcOr(s.CreatedAt, now)
	s.UpdatedAt = utcOr(s.UpdatedAt, now)

	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", s.ID, err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", s.ID, err)
	}
	return nil
}

func (r *SessionRedis) Load(ctx context.Context, id string) (models.Session, error) {
	b, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("load session %s: %w", id, err)
	}
	var s models.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return models.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return s, nil
}

func (r *SessionRedis) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

// IdleBefore finds keys that have not expired yet but are already idle,
// which happens when the configured TTL is longer than the janitor's cutoff.
func (r *SessionRedis) IdleBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	var ids []string
	iter := r.client.Scan(ctx, 0, sessionKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id := key[len(sessionKeyPrefix):]
		s, err := r.Load(ctx, id)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			return ids, err
		}
		if s.UpdatedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	if err := iter.Err(); err != nil {
		return ids, fmt.Errorf("scan sessions: %w", err)
	}
	return ids, nil
}
