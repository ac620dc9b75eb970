// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/vndialect/tudien-backend/internal/adapter/postgres"
	"github.com/vndialect/tudien-backend/internal/domain"
)

const columns = "id, user_id, method, password_hash, created_at, updated_at"

// Repo provides auth_methods persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new auth method repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID   `db:"id"`
	UserID       uuid.UUID   `db:"user_id"`
	Method       string      `db:"method"`
	PasswordHash pgtype.Text `db:"password_hash"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

// GetByUserAndMethod returns the auth method for a user with the given method type.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw,
		`SELECT `+columns+` FROM auth_methods WHERE user_id = $1 AND method = $2`,
		userID, string(method),
	)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", userID)
	}

	am := toDomain(rw)
	return &am, nil
}

// Create inserts a new auth method row.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw,
		`INSERT INTO auth_methods (user_id, method, password_hash) VALUES ($1, $2, $3) RETURNING `+columns,
		am.UserID, string(am.Method), ptrStringToPgText(am.PasswordHash),
	)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", am.UserID)
	}

	result := toDomain(rw)
	return &result, nil
}

// ListByUser returns all auth methods for a user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AuthMethod, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+columns+` FROM auth_methods WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("auth_method list: %w", err)
	}

	result := make([]domain.AuthMethod, len(rows))
	for i, rw := range rows {
		result[i] = toDomain(rw)
	}
	return result, nil
}

func toDomain(rw row) domain.AuthMethod {
	return domain.AuthMethod{
		ID:           rw.ID,
		UserID:       rw.UserID,
		Method:       domain.AuthMethodType(rw.Method),
		PasswordHash: pgTextToPtr(rw.PasswordHash),
		CreatedAt:    rw.CreatedAt,
		UpdatedAt:    rw.UpdatedAt,
	}
}

func pgTextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
