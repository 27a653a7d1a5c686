package service

import (
	"context"
	"errors"
	"time"

	"heating_leads/internal/logger"
	"heating_leads/internal/models"
	"heating_leads/internal/repository"
)

// JanitorService deletes sessions that have been idle for longer than ttl.
// It shares the wizard's per-session locks so a sweep never interleaves
// with a Dispatch on the same session.
type JanitorService struct {
	sessions repository.SessionRepo
	events   repository.EventRepo
	locks    *keyedMutex
	ttl      time.Duration
	log      *logger.Logger
}

// NewJanitorService sweeps the sessions owned by wiz.
func NewJanitorService(wiz *WizardService, ttl time.Duration) *JanitorService {
	return &JanitorService{
		sessions: wiz.sessions,
		events:   wiz.events,
		locks:    wiz.locks,
		ttl:      ttl,
		log:      wiz.log,
	}
}

// Run sweeps at the given interval until ctx is canceled.
func (s *JanitorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if _, err := s.sweep(ctx, now.UTC()); err != nil && ctx.Err() == nil {
				s.log.Warnw("janitor_sweep_failed", "err", err)
			}
		}
	}
}

// sweep removes sessions idle since before now-ttl and journals one EXPIRED
// event per non-empty batch. A failure on one session does not stop the rest.
func (s *JanitorService) sweep(ctx context.Context, now time.Time) ([]string, error) {
	cutoff := now.Add(-s.ttl)
	candidates, err := s.sessions.IdleBefore(ctx, cutoff)

	var expired []string
	for _, id := range candidates {
		ok, xerr := s.expire(ctx, id, cutoff)
		if xerr != nil {
			err = errors.Join(err, xerr)
			continue
		}
		if ok {
			expired = append(expired, id)
		}
	}

	if len(expired) > 0 {
		s.log.Infow("sessions_expired", "count", len(expired))
		if aerr := s.events.Append(ctx, models.WizardEvent{
			OccurredAt:  now,
			Type:        models.EventExpired,
			Description: "Idle sessions expired",
			Metadata: map[string]any{
				"count":       len(expired),
				"session_ids": expired,
				"cutoff":      cutoff.Format(time.RFC3339),
			},
		}); aerr != nil {
			s.log.Warnw("journal_append_failed", "type", models.EventExpired, "err", aerr)
		}
	}
	return expired, err
}

// expire deletes id if it is still idle once its lock is held.
func (s *JanitorService) expire(ctx context.Context, id string, cutoff time.Time) (bool, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.sessions.Load(ctx, id)
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		return false, nil
	case err != nil:
		return false, err
	case !sess.UpdatedAt.Before(cutoff):
		return false, nil
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
