package entitystore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

type entityRepo interface {
	Exists(ctx context.Context, urn domain.Urn) (bool, error)
	InsertKey(ctx context.Context, urn domain.Urn, actor domain.Urn) (bool, error)
	LockKey(ctx context.Context, urn domain.Urn) error
	GetAspectForUpdate(ctx context.Context, urn domain.Urn, aspectName string) (json.RawMessage, error)
	UpsertAspect(ctx context.Context, urn domain.Urn, aspectName string, payload json.RawMessage, actor domain.Urn, now time.Time) (int64, error)
}

type changeLog interface {
	Append(ctx context.Context, entry domain.ChangeLogEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies change proposals to the entity store. Each proposal is
// applied atomically together with its change log entry.
type Service struct {
	entities entityRepo
	changes  changeLog
	tx       txManager
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new entity store service.
func NewService(
	log *slog.Logger,
	entities entityRepo,
	changes changeLog,
	tx txManager,
) *Service {
	return &Service{
		entities: entities,
		changes:  changes,
		tx:       tx,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.With("service", "entitystore"),
	}
}

// Exists reports whether an entity is registered under urn.
func (s *Service) Exists(ctx context.Context, urn domain.Urn) (bool, error) {
	return s.entities.Exists(ctx, urn)
}
