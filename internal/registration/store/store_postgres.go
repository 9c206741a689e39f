package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"insightx/internal/registration/models"
	"insightx/pkg/platform/sentinel"
)

// uniqueViolation is the PostgreSQL error code raised when a unique index
// rejects an insert.
const uniqueViolation = "23505"

// PostgresStore persists registrations in PostgreSQL. The unique indexes on
// lower(email) and contact_number are the authority for duplicate detection;
// Create surfaces their violations as sentinel.ErrConflict so the service can
// report the duplicate without trusting its own pre-check.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed registration store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts a registration. Returns sentinel.ErrConflict when the email
// or contact number is already registered.
func (s *PostgresStore) Create(ctx context.Context, reg *models.Registration) error {
	if reg == nil {
		return fmt.Errorf("registration is required")
	}
	query := `
		INSERT INTO registrations (id, full_name, email, contact_number, current_year, branch, purpose, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		reg.ID, reg.FullName, reg.Email, reg.ContactNumber,
		reg.CurrentYear, reg.Branch, reg.Purpose, reg.RegisteredAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("create registration: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

// FindByEmailOrContact returns the first registration matching either the
// email or the contact number, or sentinel.ErrNotFound.
func (s *PostgresStore) FindByEmailOrContact(ctx context.Context, email, contactNumber string) (*models.Registration, error) {
	query := `
		SELECT id, full_name, email, contact_number, current_year, branch, purpose, registered_at
		FROM registrations
		WHERE lower(email) = lower($1) OR contact_number = $2
		LIMIT 1
	`
	reg, err := scanRegistration(s.db.QueryRowContext(ctx, query, email, contactNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	return reg, nil
}

// Count reports the number of stored registrations.
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (*models.Registration, error) {
	var reg models.Registration
	err := row.Scan(
		&reg.ID, &reg.FullName, &reg.Email, &reg.ContactNumber,
		&reg.CurrentYear, &reg.Branch, &reg.Purpose, &reg.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}
