package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"heating_leads/internal/models"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrOperatorExists is returned by Create when the username is taken.
var ErrOperatorExists = errors.New("operator already exists")

// OperatorRepository stores the accounts allowed to read the journal.
type OperatorRepository struct {
	db *sql.DB
}

func NewOperatorRepository(db *sql.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

var _ Authorization = (*OperatorRepository)(nil)

const (
	insertOperatorSQL = `INSERT INTO operators (username, password_hash) VALUES (?, ?)`
	operatorByNameSQL = `SELECT id, username, password_hash FROM operators WHERE username = ?`
)

func (r *OperatorRepository) Create(ctx context.Context, username, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertOperatorSQL, username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("operator %q: %w", username, ErrOperatorExists)
		}
		return 0, fmt.Errorf("insert operator: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("operator id: %w", err)
	}
	return int(id), nil
}

// GetByUsername returns nil and no error for an unknown username.
func (r *OperatorRepository) GetByUsername(ctx context.Context, username string) (*models.Operator, error) {
	op := &models.Operator{}
	row := r.db.QueryRowContext(ctx, operatorByNameSQL, username)
	switch err := row.Scan(&op.ID, &op.Username, &op.PasswordHash); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("load operator: %w", err)
	}
	return op, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
