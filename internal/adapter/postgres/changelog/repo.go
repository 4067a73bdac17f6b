// Package changelog implements the append-only metadata change log using
// PostgreSQL.
package changelog

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/glossary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/glossary-backend/internal/domain"
)

const table = "metadata_change_log"

var columns = []string{
	"id", "urn", "entity_type", "aspect_name", "change_type",
	"payload", "async_index", "actor_urn", "created_at",
}

// Repo provides change log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new change log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append inserts one change log entry.
func (r *Repo) Append(ctx context.Context, entry domain.ChangeLogEntry) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			entry.ID,
			entry.Urn.String(),
			entry.EntityType,
			entry.AspectName,
			entry.ChangeType,
			[]byte(entry.Payload),
			entry.Async,
			entry.Actor.String(),
			entry.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "change_log", entry.Urn.String())
	}
	return nil
}

// ListByUrn returns the change history of one entity, newest first, limited
// to limit entries.
func (r *Repo) ListByUrn(ctx context.Context, urn domain.Urn, limit int) ([]domain.ChangeLogEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"urn": urn.String()}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list change_log by urn: %w", err)
	}

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("scan change_log: %w", err)
	}
	return entries, nil
}

func scanEntry(row pgx.CollectableRow) (domain.ChangeLogEntry, error) {
	var (
		e          domain.ChangeLogEntry
		urn, actor string
		payload    []byte
	)
	if err := row.Scan(&e.ID, &urn, &e.EntityType, &e.AspectName, &e.ChangeType, &payload, &e.Async, &actor, &e.CreatedAt); err != nil {
		return domain.ChangeLogEntry{}, err
	}

	var err error
	if e.Urn, err = domain.ParseUrn(urn); err != nil {
		return domain.ChangeLogEntry{}, err
	}
	if e.Actor, err = domain.ParseUrn(actor); err != nil {
		return domain.ChangeLogEntry{}, err
	}
	e.Payload = payload
	return e, nil
}
