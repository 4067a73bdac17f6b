package entitystore

import (
	"context"
	"fmt"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// Client is the authenticated entry point to the store. Calls are attributed
// to the authenticated actor; the credential itself was verified upstream and
// is not inspected here.
type Client struct {
	store *Service
}

// NewClient wraps store for authenticated callers.
func NewClient(store *Service) *Client {
	return &Client{store: store}
}

// Exists reports whether an entity is registered under urn.
func (c *Client) Exists(ctx context.Context, urn domain.Urn, auth domain.Authentication) (bool, error) {
	if err := requireActor(auth); err != nil {
		return false, err
	}
	return c.store.Exists(ctx, urn)
}

// IngestProposal applies p on behalf of the authenticated actor.
func (c *Client) IngestProposal(ctx context.Context, p domain.ChangeProposal, auth domain.Authentication, async bool) (domain.Urn, error) {
	if err := requireActor(auth); err != nil {
		return domain.Urn{}, err
	}
	return c.store.IngestProposal(ctx, p, auth.Actor.Urn, async)
}

func requireActor(auth domain.Authentication) error {
	if auth.Actor.Urn.IsZero() {
		return domain.ErrUnauthorized
	}
	if auth.Actor.Urn.EntityType != domain.EntityTypeCorpUser && auth.Actor.Urn.EntityType != domain.EntityTypeCorpGroup {
		return fmt.Errorf("actor %s is not a principal: %w", auth.Actor.Urn, domain.ErrUnauthorized)
	}
	return nil
}
