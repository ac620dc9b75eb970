// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/vndialect/tudien-backend/internal/adapter/postgres"
	"github.com/vndialect/tudien-backend/internal/domain"
)

const columns = "id, email, name, role, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, id, `SELECT `+columns+` FROM users WHERE id = $1`, id)
}

// GetByEmail returns a user by email address. Matching is case-insensitive.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, email, `SELECT `+columns+` FROM users WHERE lower(email) = lower($1)`, email)
}

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email returns ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	role := u.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	return r.getOne(ctx, u.Email,
		`INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4) RETURNING `+columns,
		id, u.Email, u.Name, string(role),
	)
}

// SetRole changes the role of a user.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	return r.getOne(ctx, id,
		`UPDATE users SET role = $2, updated_at = now() WHERE id = $1 RETURNING `+columns,
		id, string(role),
	)
}

// List returns users ordered by creation time, oldest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var rows []userRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+columns+` FROM users ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("user list: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = toDomainUser(row)
	}
	return users, nil
}

// Count returns the number of registered users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("user count: %w", err)
	}
	return n, nil
}

func (r *Repo) getOne(ctx context.Context, key any, sql string, args ...any) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u := toDomainUser(row)
	return &u, nil
}

func toDomainUser(row userRow) domain.User {
	return domain.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Role:      domain.UserRole(row.Role),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
