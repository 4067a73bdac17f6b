package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedActor returns a corpuser urn that no other test uses.
func SeedActor(t *testing.T) domain.Urn {
	t.Helper()
	return domain.CorpUserUrn("user-" + uniqueSuffix())
}

// SeedGlossaryNode creates a glossary node with its info aspect. parent may be nil.
func SeedGlossaryNode(t *testing.T, pool *pgxpool.Pool, parent *domain.Urn) domain.Urn {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	urn := domain.NewUrn(domain.EntityTypeGlossaryNode, "node-"+suffix)
	payload, err := json.Marshal(domain.GlossaryNodeInfo{Name: "Node " + suffix, ParentNode: parent})
	if err != nil {
		t.Fatalf("testhelper: SeedGlossaryNode marshal: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO entities (urn, entity_type, created_by) VALUES ($1, $2, $3)`,
		urn.String(), urn.EntityType, "urn:li:corpuser:__system__",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGlossaryNode insert entity: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO aspects (urn, aspect_name, payload, created_by) VALUES ($1, $2, $3, $4)`,
		urn.String(), domain.AspectGlossaryNodeInfo, payload, "urn:li:corpuser:__system__",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGlossaryNode insert aspect: %v", err)
	}

	return urn
}

// RemoveOwnershipType deletes a built-in ownership type for the duration of
// the test and restores it on cleanup. Tests using it must not run in parallel
// with tests that depend on the type.
func RemoveOwnershipType(t *testing.T, pool *pgxpool.Pool, ownershipType domain.OwnershipType) {
	t.Helper()
	ctx := context.Background()
	urn := ownershipType.Urn().String()

	if _, err := pool.Exec(ctx, `DELETE FROM entities WHERE urn = $1`, urn); err != nil {
		t.Fatalf("testhelper: RemoveOwnershipType: %v", err)
	}

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(),
			`INSERT INTO entities (urn, entity_type, created_by) VALUES ($1, $2, $3) ON CONFLICT (urn) DO NOTHING`,
			urn, domain.EntityTypeOwnershipType, "urn:li:corpuser:__system__",
		)
	})
}
