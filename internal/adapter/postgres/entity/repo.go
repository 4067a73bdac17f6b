// Package entity implements the entity and aspect tables of the entity store.
package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/glossary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/glossary-backend/internal/domain"
)

const (
	tableEntities = "entities"
	tableAspects  = "aspects"
)

// Repo provides entity and aspect persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Exists reports whether an entity row exists for urn.
func (r *Repo) Exists(ctx context.Context, urn domain.Urn) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(tableEntities).
		Where(sq.Eq{"urn": urn.String()}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "entity", urn.String())
	}
	return exists, nil
}

// GetAspect returns the raw payload of one aspect. Missing aspects yield
// domain.ErrNotFound.
func (r *Repo) GetAspect(ctx context.Context, urn domain.Urn, aspectName string) (json.RawMessage, error) {
	return r.getAspect(ctx, urn, aspectName, false)
}

// GetAspectForUpdate is GetAspect holding a row lock until the surrounding
// transaction ends.
func (r *Repo) GetAspectForUpdate(ctx context.Context, urn domain.Urn, aspectName string) (json.RawMessage, error) {
	return r.getAspect(ctx, urn, aspectName, true)
}

func (r *Repo) getAspect(ctx context.Context, urn domain.Urn, aspectName string, lock bool) (json.RawMessage, error) {
	b := postgres.Builder().
		Select("payload").
		From(tableAspects).
		Where(sq.Eq{"urn": urn.String(), "aspect_name": aspectName})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build aspect query: %w", err)
	}

	var payload []byte
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		return nil, postgres.MapError(err, aspectName, urn.String())
	}
	return payload, nil
}

// GetParentNode returns the parent recorded in a glossary node's info aspect.
// Root nodes and nodes without an info aspect yield nil.
func (r *Repo) GetParentNode(ctx context.Context, node domain.Urn) (*domain.Urn, error) {
	raw, err := r.GetAspect(ctx, node, domain.AspectGlossaryNodeInfo)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var info domain.GlossaryNodeInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("glossary_node %s: decode info: %w", node, err)
	}
	if info.ParentNode == nil {
		return nil, nil
	}
	if info.ParentNode.EntityType != domain.EntityTypeGlossaryNode {
		return nil, fmt.Errorf("glossary_node %s: stored parent %s is not a glossary node", node, info.ParentNode)
	}
	return info.ParentNode, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertKey creates the entity row for urn. An existing row is kept as is
// and reported with created=false.
func (r *Repo) InsertKey(ctx context.Context, urn domain.Urn, actor domain.Urn) (created bool, err error) {
	query, args, err := postgres.Builder().
		Insert(tableEntities).
		Columns("urn", "entity_type", "created_by").
		Values(urn.String(), urn.EntityType, actor.String()).
		Suffix("ON CONFLICT (urn) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert key: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "entity", urn.String())
	}
	return tag.RowsAffected() == 1, nil
}

// LockKey locks the entity row for the rest of the transaction. A missing
// entity yields domain.ErrNotFound.
func (r *Repo) LockKey(ctx context.Context, urn domain.Urn) error {
	query, args, err := postgres.Builder().
		Select("urn").
		From(tableEntities).
		Where(sq.Eq{"urn": urn.String()}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("build lock key: %w", err)
	}

	var locked string
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&locked); err != nil {
		return postgres.MapError(err, "entity", urn.String())
	}
	return nil
}

// UpsertAspect writes one aspect. Rewrites replace the payload and bump the
// version; the last writer wins.
func (r *Repo) UpsertAspect(ctx context.Context, urn domain.Urn, aspectName string, payload json.RawMessage, actor domain.Urn, now time.Time) (version int64, err error) {
	query, args, err := postgres.Builder().
		Insert(tableAspects).
		Columns("urn", "aspect_name", "payload", "created_by", "updated_at").
		Values(urn.String(), aspectName, []byte(payload), actor.String(), now).
		Suffix(`ON CONFLICT (urn, aspect_name) DO UPDATE SET
			payload    = EXCLUDED.payload,
			version    = aspects.version + 1,
			created_by = EXCLUDED.created_by,
			updated_at = EXCLUDED.updated_at
		RETURNING version`).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert aspect: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&version); err != nil {
		return 0, postgres.MapError(err, aspectName, urn.String())
	}
	return version, nil
}
