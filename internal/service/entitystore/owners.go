package entitystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// AddOwners merges owners into the ownership aspect of entity. Owners already
// present with the same type are skipped; when nothing is new no write
// happens. The entity must exist.
func (s *Service) AddOwners(ctx context.Context, entity domain.Urn, owners []domain.Owner, actor domain.Urn) error {
	if len(owners) == 0 {
		return nil
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.entities.LockKey(ctx, entity); err != nil {
			return fmt.Errorf("lock %s: %w", entity, err)
		}

		current, err := s.loadOwnership(ctx, entity)
		if err != nil {
			return err
		}

		added := current.Merge(owners)
		if added == 0 {
			return nil
		}

		now := s.now()
		current.LastModified = domain.AuditStamp{Actor: actor, Time: now}

		p, err := domain.NewChangeProposal(entity, domain.AspectOwnership, current)
		if err != nil {
			return err
		}

		if _, err := s.entities.UpsertAspect(ctx, entity, domain.AspectOwnership, p.Aspect.Value, actor, now); err != nil {
			return fmt.Errorf("upsert ownership: %w", err)
		}
		if err := s.changes.Append(ctx, domain.NewChangeLogEntry(p, actor, false, now)); err != nil {
			return fmt.Errorf("append change log: %w", err)
		}

		s.log.DebugContext(ctx, "owners added",
			slog.String("urn", entity.String()),
			slog.Int("added", added),
		)
		return nil
	})
}

func (s *Service) loadOwnership(ctx context.Context, entity domain.Urn) (domain.Ownership, error) {
	raw, err := s.entities.GetAspectForUpdate(ctx, entity, domain.AspectOwnership)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Ownership{}, nil
	}
	if err != nil {
		return domain.Ownership{}, fmt.Errorf("read ownership: %w", err)
	}

	var o domain.Ownership
	if err := json.Unmarshal(raw, &o); err != nil {
		return domain.Ownership{}, fmt.Errorf("decode ownership of %s: %w", entity, err)
	}
	return o, nil
}
