package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"heating_leads/internal/models"
)

// ErrSessionNotFound is returned by SessionRepo.Load for unknown or expired ids.
var ErrSessionNotFound = errors.New("session not found")

// Authorization stores operator accounts.
type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.Operator, error)
}

// SessionRepo holds the wizard state of every live visitor session.
type SessionRepo interface {
	Save(ctx context.Context, s models.Session) error
	Load(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
	// IdleBefore lists sessions last updated before cutoff. It deletes nothing;
	// callers re-check each session under its lock before removing it.
	IdleBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.WizardEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.WizardEvent, error)
}

type Repository struct {
	Sessions  SessionRepo
	EventRepo EventRepo
	Auth      Authorization
}

// NewRepository wires the SQLite-backed repositories around the chosen session store.
func NewRepository(db *sql.DB, sessions SessionRepo) *Repository {
	return &Repository{
		Sessions:  sessions,
		EventRepo: NewEventSQLite(db),
		Auth:      NewOperatorRepository(db),
	}
}
