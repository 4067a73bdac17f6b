package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChangeLogEntry is one applied change proposal, appended to the metadata
// change log in the same transaction as the aspect write.
type ChangeLogEntry struct {
	ID         uuid.UUID
	Urn        Urn
	EntityType string
	AspectName string
	ChangeType string
	Payload    json.RawMessage
	Async      bool
	Actor      Urn
	CreatedAt  time.Time
}

// NewChangeLogEntry records proposal p as applied by actor.
func NewChangeLogEntry(p ChangeProposal, actor Urn, async bool, now time.Time) ChangeLogEntry {
	return ChangeLogEntry{
		ID:         uuid.New(),
		Urn:        p.EntityUrn,
		EntityType: p.EntityType,
		AspectName: p.AspectName,
		ChangeType: p.ChangeType,
		Payload:    p.Aspect.Value,
		Async:      async,
		Actor:      actor,
		CreatedAt:  now,
	}
}
