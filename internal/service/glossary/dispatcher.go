package glossary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// DefaultWorkerLimit bounds concurrent creations when no limit is configured.
const DefaultWorkerLimit = 16

// ErrDispatcherClosed is returned for creations submitted after Close.
var ErrDispatcherClosed = errors.New("glossary: dispatcher closed")

type termCreator interface {
	Create(ctx context.Context, input CreateTermInput) domain.CreationOutcome
}

// Dispatcher runs creations off the calling goroutine on a bounded set of
// workers. Each creation is one blocking call to the creator.
type Dispatcher struct {
	creator termCreator
	sem     *semaphore.Weighted
	log     *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher running at most limit creations at once.
func NewDispatcher(log *slog.Logger, creator termCreator, limit int) *Dispatcher {
	if limit <= 0 {
		limit = DefaultWorkerLimit
	}
	return &Dispatcher{
		creator: creator,
		sem:     semaphore.NewWeighted(int64(limit)),
		log:     log.With("component", "glossary_dispatcher"),
	}
}

// Submit schedules a creation and returns a channel that receives exactly
// one outcome. Submit blocks only while waiting for a free worker; if ctx
// ends first, or the dispatcher is closed, the outcome is a failure and
// nothing was started.
func (d *Dispatcher) Submit(ctx context.Context, input CreateTermInput) <-chan domain.CreationOutcome {
	out := make(chan domain.CreationOutcome, 1)
	reject := func(err error) <-chan domain.CreationOutcome {
		out <- domain.CreationOutcome{
			Status: domain.CreationStatusFailed,
			Err: &domain.TermCreationError{
				ID:   input.requestedID(),
				Name: input.Name,
				Err:  err,
			},
		}
		close(out)
		return out
	}

	// Registering under mu orders every Add before the Wait in Close.
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return reject(ErrDispatcherClosed)
	}
	d.wg.Add(1)
	d.mu.Unlock()

	if err := d.sem.Acquire(ctx, 1); err != nil {
		d.wg.Done()
		return reject(fmt.Errorf("wait for worker: %w", err))
	}

	go func() {
		defer d.wg.Done()
		defer d.sem.Release(1)
		defer close(out)
		out <- d.creator.Create(ctx, input)
	}()

	return out
}

// CreateGlossaryTerm submits a creation and awaits it. If ctx ends first the
// caller gets ctx.Err() while the creation keeps running; its store writes
// are not rolled back.
func (d *Dispatcher) CreateGlossaryTerm(ctx context.Context, input CreateTermInput) (domain.CreationOutcome, error) {
	select {
	case outcome := <-d.Submit(ctx, input):
		return outcome, outcome.Err
	case <-ctx.Done():
		d.log.WarnContext(ctx, "caller abandoned glossary term creation",
			slog.String("name", input.Name),
			slog.String("error", ctx.Err().Error()),
		)
		return domain.CreationOutcome{Status: domain.CreationStatusFailed}, ctx.Err()
	}
}

// Wait blocks until every submitted creation has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close rejects further submissions and waits for running creations.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.wg.Wait()
}
