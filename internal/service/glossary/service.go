package glossary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// entityClient is the authenticated write path of the entity store.
type entityClient interface {
	Exists(ctx context.Context, urn domain.Urn, auth domain.Authentication) (bool, error)
	IngestProposal(ctx context.Context, proposal domain.ChangeProposal, auth domain.Authentication, async bool) (domain.Urn, error)
}

// entityService is the internal, unauthenticated view of the entity store.
type entityService interface {
	Exists(ctx context.Context, urn domain.Urn) (bool, error)
	AddOwners(ctx context.Context, entity domain.Urn, owners []domain.Owner, actor domain.Urn) error
}

type authorizer interface {
	CanManageChildren(ctx context.Context, actor domain.Actor, parent *domain.Urn) (bool, error)
}

type recorder interface {
	ObserveCreation(status domain.CreationStatus, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCreation(domain.CreationStatus, time.Duration) {}

// Service creates glossary terms.
type Service struct {
	client    entityClient
	entities  entityService
	authz     authorizer
	recorder  recorder
	tracer    trace.Tracer
	newID     func() string
	preferred domain.OwnershipType
	log       *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithRecorder reports every creation outcome to r.
func WithRecorder(r recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithTracer replaces the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// WithIDGenerator replaces the random key generator used when the caller
// supplies no id.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// WithPreferredOwnershipType sets the ownership type given to creators.
// Invalid types are ignored.
func WithPreferredOwnershipType(t domain.OwnershipType) Option {
	return func(s *Service) {
		if t.IsValid() {
			s.preferred = t
		}
	}
}

// NewService creates a new Glossary service.
func NewService(
	log *slog.Logger,
	client entityClient,
	entities entityService,
	authz authorizer,
	opts ...Option,
) *Service {
	s := &Service{
		client:    client,
		entities:  entities,
		authz:     authz,
		recorder:  nopRecorder{},
		tracer:    otel.Tracer("github.com/heartmarshall/glossary-backend/internal/service/glossary"),
		newID:     func() string { return uuid.New().String() },
		preferred: domain.OwnershipTypeTechnicalOwner,
		log:       log.With("service", "glossary"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
