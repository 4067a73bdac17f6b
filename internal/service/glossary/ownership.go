package glossary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// ChooseOwnershipType returns preferred when its backing ownership type
// entity exists, and the "none" classification otherwise.
func ChooseOwnershipType(preferred domain.OwnershipType, preferredExists bool) domain.OwnershipType {
	if preferredExists {
		return preferred
	}
	return domain.OwnershipTypeNone
}

// assignDefaultOwner makes actor an owner of entity. It must only run after
// the store confirmed the entity.
func (s *Service) assignDefaultOwner(ctx context.Context, entity domain.Urn, actor domain.Actor) error {
	exists, err := s.entities.Exists(ctx, s.preferred.Urn())
	if err != nil {
		return fmt.Errorf("probe ownership type %s: %w: %w", s.preferred.Urn(), domain.ErrOwnershipAssignment, err)
	}

	ownershipType := ChooseOwnershipType(s.preferred, exists)
	if ownershipType != s.preferred {
		s.log.WarnContext(ctx, "preferred ownership type does not exist, defaulting to none",
			slog.String("ownership_type", s.preferred.Urn().String()),
			slog.String("entity", entity.String()),
		)
	}

	owner := domain.Owner{
		Owner:   actor.Urn,
		Type:    ownershipType,
		TypeUrn: ownershipType.Urn(),
	}
	if err := s.entities.AddOwners(ctx, entity, []domain.Owner{owner}, actor.Urn); err != nil {
		return fmt.Errorf("add owner %s to %s: %w: %w", actor.Urn, entity, domain.ErrOwnershipAssignment, err)
	}
	return nil
}
