// Package privilege implements the platform and entity privilege grants
// using PostgreSQL.
package privilege

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/glossary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/glossary-backend/internal/domain"
)

const (
	tablePlatform = "platform_privileges"
	tableEntity   = "entity_privileges"
)

// Repo provides privilege lookups and grants backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new privilege repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// HasPlatformPrivilege reports whether actor holds privilege platform-wide.
func (r *Repo) HasPlatformPrivilege(ctx context.Context, actor domain.Urn, privilege domain.Privilege) (bool, error) {
	return r.exists(ctx, postgres.Builder().
		Select("1").
		From(tablePlatform).
		Where(sq.Eq{"actor_urn": actor.String(), "privilege": string(privilege)}),
		actor)
}

// HasEntityPrivilege reports whether actor holds any of privileges on entity.
func (r *Repo) HasEntityPrivilege(ctx context.Context, actor, entity domain.Urn, privileges ...domain.Privilege) (bool, error) {
	if len(privileges) == 0 {
		return false, nil
	}
	names := make([]string, len(privileges))
	for i, p := range privileges {
		names[i] = string(p)
	}

	return r.exists(ctx, postgres.Builder().
		Select("1").
		From(tableEntity).
		Where(sq.Eq{
			"actor_urn":  actor.String(),
			"entity_urn": entity.String(),
			"privilege":  names,
		}),
		actor)
}

func (r *Repo) exists(ctx context.Context, inner sq.SelectBuilder, actor domain.Urn) (bool, error) {
	query, args, err := inner.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build privilege query: %w", err)
	}

	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "privilege", actor.String())
	}
	return ok, nil
}

// GrantPlatform gives actor a platform-wide privilege. Granting twice is a no-op.
func (r *Repo) GrantPlatform(ctx context.Context, actor domain.Urn, privilege domain.Privilege) error {
	query, args, err := postgres.Builder().
		Insert(tablePlatform).
		Columns("actor_urn", "privilege").
		Values(actor.String(), string(privilege)).
		Suffix("ON CONFLICT (actor_urn, privilege) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build grant: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "privilege", actor.String())
	}
	return nil
}

// GrantEntity gives actor a privilege on one entity. Granting twice is a no-op.
func (r *Repo) GrantEntity(ctx context.Context, actor, entity domain.Urn, privilege domain.Privilege) error {
	query, args, err := postgres.Builder().
		Insert(tableEntity).
		Columns("actor_urn", "entity_urn", "privilege").
		Values(actor.String(), entity.String(), string(privilege)).
		Suffix("ON CONFLICT (actor_urn, entity_urn, privilege) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build grant: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "privilege", actor.String())
	}
	return nil
}

// Revoke removes every grant of privilege held by actor, platform-wide and
// on entities, and returns the number of grants removed.
func (r *Repo) Revoke(ctx context.Context, actor domain.Urn, privilege domain.Privilege) (int64, error) {
	var total int64
	for _, table := range []string{tablePlatform, tableEntity} {
		query, args, err := postgres.Builder().
			Delete(table).
			Where(sq.Eq{"actor_urn": actor.String(), "privilege": string(privilege)}).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build revoke: %w", err)
		}

		tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
		if err != nil {
			return 0, postgres.MapError(err, "privilege", actor.String())
		}
		total += tag.RowsAffected()
	}
	return total, nil
}
