package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/heartmarshall/glossary-backend/internal/domain"
	"github.com/heartmarshall/glossary-backend/pkg/ctxutil"
)

// Create runs the whole creation workflow for the authenticated principal:
// authorize, resolve the key, reject duplicates, build the proposal, ingest
// it and attach the creator as owner. Steps run strictly in order and stop at
// the first failure.
//
// Once the proposal is handed to the store the caller's cancellation no
// longer applies. Any non-nil Err is a *domain.TermCreationError.
func (s *Service) Create(ctx context.Context, input CreateTermInput) domain.CreationOutcome {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "glossary.CreateTerm")
	defer span.End()

	outcome, id := s.create(ctx, input)
	if outcome.Err != nil {
		outcome.Err = &domain.TermCreationError{ID: id, Name: input.Name, Err: outcome.Err}

		span.RecordError(outcome.Err)
		span.SetStatus(codes.Error, string(outcome.Status))
		s.log.ErrorContext(ctx, "glossary term creation failed",
			slog.String("id", id),
			slog.String("name", input.Name),
			slog.String("status", string(outcome.Status)),
			slog.String("error", outcome.Err.Error()),
		)
	}
	span.SetAttributes(
		attribute.String("glossary.term.id", id),
		attribute.String("glossary.creation.status", string(outcome.Status)),
	)

	s.recorder.ObserveCreation(outcome.Status, time.Since(start))
	return outcome
}

// CreateGlossaryTerm runs Create and returns the new term's urn. On an
// ownership failure both the urn and the error are returned.
func (s *Service) CreateGlossaryTerm(ctx context.Context, input CreateTermInput) (domain.Urn, error) {
	outcome := s.Create(ctx, input)
	return outcome.Urn, outcome.Err
}

func (s *Service) create(ctx context.Context, input CreateTermInput) (domain.CreationOutcome, string) {
	id := input.requestedID()
	failed := func(err error) (domain.CreationOutcome, string) {
		return domain.CreationOutcome{Status: domain.CreationStatusFailed, Err: err}, id
	}

	auth, ok := authenticationFromCtx(ctx)
	if !ok {
		return failed(domain.ErrUnauthorized)
	}

	parent, err := input.Validate()
	if err != nil {
		return failed(err)
	}

	allowed, err := s.authz.CanManageChildren(ctx, auth.Actor, parent)
	if err != nil {
		return failed(fmt.Errorf("check permissions: %w", err))
	}
	if !allowed {
		return failed(fmt.Errorf("%s may not create terms under %s: %w", auth.Actor.Urn, parentLabel(parent), domain.ErrForbidden))
	}

	id = resolveTermID(input.ID, s.newID)
	urn := domain.GlossaryTermUrn(id)

	if err := s.assertAvailable(ctx, urn, auth); err != nil {
		return failed(err)
	}

	proposal, err := buildProposal(urn, buildTermInfo(input, parent))
	if err != nil {
		return failed(err)
	}

	writeCtx := context.WithoutCancel(ctx)

	created, err := s.client.IngestProposal(writeCtx, proposal, auth, false)
	if err != nil {
		return failed(fmt.Errorf("ingest proposal for %s: %w: %w", urn, domain.ErrStoreFailure, err))
	}

	if err := s.assignDefaultOwner(writeCtx, created, auth.Actor); err != nil {
		return domain.CreationOutcome{
			Status: domain.CreationStatusCreatedOwnershipFailed,
			Urn:    created,
			Err:    err,
		}, id
	}

	s.log.InfoContext(ctx, "glossary term created",
		slog.String("urn", created.String()),
		slog.String("actor", auth.Actor.Urn.String()),
		slog.String("parent_node", parentLabel(parent)),
	)

	return domain.CreationOutcome{Status: domain.CreationStatusCreated, Urn: created}, id
}

// assertAvailable fails with domain.ErrAlreadyExists when urn is taken.
// The check is not atomic with the later ingest.
func (s *Service) assertAvailable(ctx context.Context, urn domain.Urn, auth domain.Authentication) error {
	exists, err := s.client.Exists(ctx, urn, auth)
	if err != nil {
		return fmt.Errorf("check existence of %s: %w: %w", urn, domain.ErrStoreFailure, err)
	}
	if exists {
		return fmt.Errorf("glossary term %s: %w", urn, domain.ErrAlreadyExists)
	}
	return nil
}

func authenticationFromCtx(ctx context.Context) (domain.Authentication, bool) {
	username, credentials, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok || !domain.ValidUrnKey(username) {
		return domain.Authentication{}, false
	}
	return domain.Authentication{
		Actor:       domain.Actor{Urn: domain.CorpUserUrn(username)},
		Credentials: credentials,
	}, true
}

func parentLabel(parent *domain.Urn) string {
	if parent == nil {
		return "<root>"
	}
	return parent.String()
}
