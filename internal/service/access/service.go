package access

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

type privilegeStore interface {
	HasPlatformPrivilege(ctx context.Context, actor domain.Urn, privilege domain.Privilege) (bool, error)
	HasEntityPrivilege(ctx context.Context, actor, entity domain.Urn, privileges ...domain.Privilege) (bool, error)
}

type nodeHierarchy interface {
	// GetParentNode returns the parent of a glossary node, or nil for a root node.
	GetParentNode(ctx context.Context, node domain.Urn) (*domain.Urn, error)
}

// MaxAncestorDepth bounds how far up the node hierarchy a grant is searched.
const MaxAncestorDepth = 32

// Gate decides whether an actor may create children under a glossary node.
type Gate struct {
	privileges privilegeStore
	nodes      nodeHierarchy
	log        *slog.Logger
}

// NewGate creates a new authorization Gate.
func NewGate(log *slog.Logger, privileges privilegeStore, nodes nodeHierarchy) *Gate {
	return &Gate{
		privileges: privileges,
		nodes:      nodes,
		log:        log.With("service", "access"),
	}
}

// CanManageChildren reports whether actor may create entities under parent.
// A platform-wide MANAGE_GLOSSARIES grant always allows. Otherwise parent
// must carry MANAGE_GLOSSARY_CHILDREN for the actor, or parent or one of its
// ancestors must carry MANAGE_ALL_GLOSSARY_CHILDREN. Top-level creation
// (nil parent) needs the platform grant.
func (g *Gate) CanManageChildren(ctx context.Context, actor domain.Actor, parent *domain.Urn) (bool, error) {
	ok, err := g.privileges.HasPlatformPrivilege(ctx, actor.Urn, domain.PrivilegeManageGlossaries)
	if err != nil {
		return false, fmt.Errorf("check platform privilege: %w", err)
	}
	if ok || parent == nil {
		return ok, nil
	}

	ok, err = g.privileges.HasEntityPrivilege(ctx, actor.Urn, *parent,
		domain.PrivilegeManageGlossaryChildren, domain.PrivilegeManageAllGlossaryChildren)
	if err != nil {
		return false, fmt.Errorf("check privileges on %s: %w", parent, err)
	}
	if ok {
		return true, nil
	}

	return g.grantedOnAncestor(ctx, actor.Urn, *parent)
}

func (g *Gate) grantedOnAncestor(ctx context.Context, actor, node domain.Urn) (bool, error) {
	seen := map[domain.Urn]struct{}{node: {}}
	current := node

	for depth := 0; depth < MaxAncestorDepth; depth++ {
		next, err := g.nodes.GetParentNode(ctx, current)
		if err != nil {
			return false, fmt.Errorf("resolve parent of %s: %w", current, err)
		}
		if next == nil {
			return false, nil
		}
		if _, dup := seen[*next]; dup {
			g.log.WarnContext(ctx, "cycle in glossary node hierarchy",
				slog.String("node", next.String()),
			)
			return false, nil
		}
		seen[*next] = struct{}{}

		ok, err := g.privileges.HasEntityPrivilege(ctx, actor, *next, domain.PrivilegeManageAllGlossaryChildren)
		if err != nil {
			return false, fmt.Errorf("check privileges on %s: %w", next, err)
		}
		if ok {
			return true, nil
		}
		current = *next
	}

	g.log.WarnContext(ctx, "glossary node hierarchy deeper than search limit",
		slog.String("node", node.String()),
		slog.Int("limit", MaxAncestorDepth),
	)
	return false, nil
}
