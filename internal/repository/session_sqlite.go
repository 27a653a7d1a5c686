package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"heating_leads/internal/models"
)

type SessionSQLite struct {
	db *sql.DB
}

func NewSessionSQLite(db *sql.DB) *SessionSQLite {
	return &SessionSQLite{db: db}
}

var _ SessionRepo = (*SessionSQLite)(nil)

const (
	upsertSessionSQL = `
		INSERT INTO wizard_sessions (id, view, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			view=excluded.view,
			state=excluded.state,
			updated_at=excluded.updated_at
	`

	selectSessionSQL = `
		SELECT id, state, created_at, updated_at
		FROM wizard_sessions WHERE id=?
	`

	deleteSessionSQL = `DELETE FROM wizard_sessions WHERE id=?`

	selectIdleSessionsSQL = `SELECT id FROM wizard_sessions WHERE updated_at < ?`
)

// Save inserts or updates a session row. Zero timestamps are set to now (UTC).
func (r *SessionSQLite) Save(ctx context.Context, s models.Session) error {
	stateJSON, err := json.Marshal(s.State)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", s.ID, err)
	}

	now := time.Now().UTC()
	created := utcOr(s.CreatedAt, now)
	updated := utcOr(s.UpdatedAt, now)

	_, err = r.db.ExecContext(ctx, upsertSessionSQL,
		s.ID,
		string(s.State.View),
		string(stateJSON),
		created,
		updated,
	)
	if err != nil {
		return fmt.Errorf("save session %s: %w", s.ID, err)
	}
	return nil
}

// Load fetches one session; ErrSessionNotFound if the id is unknown.
func (r *SessionSQLite) Load(ctx context.Context, id string) (models.Session, error) {
	var (
		s         models.Session
		stateJSON string
	)
	err := r.db.QueryRowContext(ctx, selectSessionSQL, id).Scan(&s.ID, &stateJSON, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("load session %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(stateJSON), &s.State); err != nil {
		return models.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}

func (r *SessionSQLite) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSQL, id); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

func (r *SessionSQLite) IdleBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, selectIdleSessionsSQL, cutoff.UTC())
	if err != nil {
		return nil, fmt.Errorf("list idle sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// utcOr returns t in UTC, or fallback when t is zero.
func utcOr(t, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t.UTC()
}
