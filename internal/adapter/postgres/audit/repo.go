// Package audit implements the append-only audit_log repository using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/vndialect/tudien-backend/internal/adapter/postgres"
	"github.com/vndialect/tudien-backend/internal/domain"
)

const auditColumns = "id, user_id, entity_type, entity_id, action, changes, created_at"

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type auditRow struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	EntityType string    `db:"entity_type"`
	EntityID   uuid.UUID `db:"entity_id"`
	Action     string    `db:"action"`
	Changes    []byte    `db:"changes"`
	CreatedAt  time.Time `db:"created_at"`
}

// Log appends a record. Call it with the transaction context of the change
// it describes so both commit or roll back together.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) error {
	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_log marshal changes: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO audit_log (user_id, entity_type, entity_id, action, changes) VALUES ($1, $2, $3, $4, $5)`,
		rec.UserID, string(rec.EntityType), rec.EntityID, string(rec.Action), raw)
	if err != nil {
		return postgres.MapError(err, "audit_log", rec.EntityID)
	}
	return nil
}

// ListByEntityID returns the newest records about an entity first.
func (r *Repo) ListByEntityID(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	var rows []auditRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+auditColumns+` FROM audit_log WHERE entity_id = $1 ORDER BY created_at DESC, id LIMIT $2`,
		entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("audit_log list %s: %w", entityID, err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

func toDomain(row auditRow) (domain.AuditRecord, error) {
	rec := domain.AuditRecord{
		ID:         row.ID,
		UserID:     row.UserID,
		EntityType: domain.EntityType(row.EntityType),
		EntityID:   row.EntityID,
		Action:     domain.AuditAction(row.Action),
		CreatedAt:  row.CreatedAt,
	}
	if len(row.Changes) > 0 {
		if err := json.Unmarshal(row.Changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_log %s unmarshal changes: %w", row.ID, err)
		}
	}
	return rec, nil
}
