package domain

import (
	"encoding/json"
	"fmt"
)

// Aspect names persisted by the entity store.
const (
	AspectGlossaryTermInfo = "glossaryTermInfo"
	AspectGlossaryNodeInfo = "glossaryNodeInfo"
	AspectOwnership        = "ownership"
)

// TermSourceInternal marks terms authored inside the platform.
const TermSourceInternal = "INTERNAL"

// ChangeTypeUpsert is the only change type this service emits.
const ChangeTypeUpsert = "UPSERT"

// ContentTypeJSON is the serialization of every aspect payload.
const ContentTypeJSON = "application/json"

// GlossaryTermInfo is the properties aspect of a glossary term.
// Definition is always serialized, even when empty.
type GlossaryTermInfo struct {
	Name       string `json:"name"`
	TermSource string `json:"termSource"`
	Definition string `json:"definition"`
	ParentNode *Urn   `json:"parentNode,omitempty"`
}

// GlossaryNodeInfo is the properties aspect of a glossary node.
type GlossaryNodeInfo struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
	ParentNode *Urn   `json:"parentNode,omitempty"`
}

// GenericAspect is a serialized aspect value.
type GenericAspect struct {
	ContentType string
	Value       json.RawMessage
}

// ChangeProposal describes one aspect upsert for one entity. Values are
// constructed by NewChangeProposal and passed by value; nothing mutates them
// after construction.
type ChangeProposal struct {
	EntityUrn  Urn
	EntityType string
	AspectName string
	ChangeType string
	Aspect     GenericAspect
}

// NewChangeProposal serializes aspect as JSON and pairs it with the entity urn.
func NewChangeProposal(entity Urn, aspectName string, aspect any) (ChangeProposal, error) {
	value, err := json.Marshal(aspect)
	if err != nil {
		return ChangeProposal{}, fmt.Errorf("marshal %s aspect: %w", aspectName, err)
	}
	return ChangeProposal{
		EntityUrn:  entity,
		EntityType: entity.EntityType,
		AspectName: aspectName,
		ChangeType: ChangeTypeUpsert,
		Aspect: GenericAspect{
			ContentType: ContentTypeJSON,
			Value:       value,
		},
	}, nil
}

// CreationStatus tags the result of a glossary term creation.
type CreationStatus string

const (
	// CreationStatusCreated: entity and default owner were written.
	CreationStatusCreated CreationStatus = "CREATED"
	// CreationStatusCreatedOwnershipFailed: the entity exists, the owner does not.
	CreationStatusCreatedOwnershipFailed CreationStatus = "CREATED_OWNERSHIP_FAILED"
	// CreationStatusFailed: no entity was confirmed by the store.
	CreationStatusFailed CreationStatus = "FAILED"
)

// CreationOutcome is the two-stage result of a creation request. Urn is set
// whenever the store confirmed the entity, including on ownership failure.
type CreationOutcome struct {
	Status CreationStatus
	Urn    Urn
	Err    error
}

// EntityCreated reports whether the entity is known to exist in the store.
func (o CreationOutcome) EntityCreated() bool {
	return o.Status == CreationStatusCreated || o.Status == CreationStatusCreatedOwnershipFailed
}
