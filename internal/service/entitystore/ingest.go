package entitystore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// IngestProposal applies an aspect upsert. The entity row is created when
// missing; an existing row is kept and the aspect is overwritten.
//
// async only marks the change log entry: the write itself always completes
// before IngestProposal returns.
func (s *Service) IngestProposal(ctx context.Context, p domain.ChangeProposal, actor domain.Urn, async bool) (domain.Urn, error) {
	if err := validateProposal(p); err != nil {
		return domain.Urn{}, err
	}

	var created bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := s.now()

		var err error
		created, err = s.entities.InsertKey(ctx, p.EntityUrn, actor)
		if err != nil {
			return fmt.Errorf("insert key: %w", err)
		}

		if _, err := s.entities.UpsertAspect(ctx, p.EntityUrn, p.AspectName, p.Aspect.Value, actor, now); err != nil {
			return fmt.Errorf("upsert aspect: %w", err)
		}

		if err := s.changes.Append(ctx, domain.NewChangeLogEntry(p, actor, async, now)); err != nil {
			return fmt.Errorf("append change log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Urn{}, err
	}

	s.log.DebugContext(ctx, "proposal ingested",
		slog.String("urn", p.EntityUrn.String()),
		slog.String("aspect", p.AspectName),
		slog.Bool("new_entity", created),
	)
	return p.EntityUrn, nil
}

func validateProposal(p domain.ChangeProposal) error {
	var errs []domain.FieldError

	if p.EntityUrn.IsZero() {
		errs = append(errs, domain.FieldError{Field: "entity_urn", Message: "required"})
	} else if p.EntityType != p.EntityUrn.EntityType {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "does not match urn"})
	}
	if p.AspectName == "" {
		errs = append(errs, domain.FieldError{Field: "aspect_name", Message: "required"})
	}
	if p.ChangeType != domain.ChangeTypeUpsert {
		errs = append(errs, domain.FieldError{Field: "change_type", Message: "only UPSERT is supported"})
	}
	if p.Aspect.ContentType != domain.ContentTypeJSON {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "only application/json is supported"})
	} else if !json.Valid(p.Aspect.Value) {
		errs = append(errs, domain.FieldError{Field: "aspect", Message: "invalid JSON"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
