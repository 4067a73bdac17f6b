package domain

import "time"

// OwnershipType classifies an owner relationship.
type OwnershipType string

const (
	OwnershipTypeTechnicalOwner OwnershipType = "TECHNICAL_OWNER"
	OwnershipTypeBusinessOwner  OwnershipType = "BUSINESS_OWNER"
	OwnershipTypeDataSteward    OwnershipType = "DATA_STEWARD"
	OwnershipTypeNone           OwnershipType = "NONE"
)

var ownershipTypeKeys = map[OwnershipType]string{
	OwnershipTypeTechnicalOwner: "__system__technical_owner",
	OwnershipTypeBusinessOwner:  "__system__business_owner",
	OwnershipTypeDataSteward:    "__system__data_steward",
	OwnershipTypeNone:           "__system__none",
}

// IsValid reports whether t is one of the built-in ownership types.
func (t OwnershipType) IsValid() bool {
	_, ok := ownershipTypeKeys[t]
	return ok
}

// Urn returns the entity reference backing the ownership type.
// Unknown types map to the "none" classification.
func (t OwnershipType) Urn() Urn {
	key, ok := ownershipTypeKeys[t]
	if !ok {
		key = ownershipTypeKeys[OwnershipTypeNone]
	}
	return NewUrn(EntityTypeOwnershipType, key)
}

// Owner attaches one principal to an entity under an ownership type.
type Owner struct {
	Owner   Urn           `json:"owner"`
	Type    OwnershipType `json:"type"`
	TypeUrn Urn           `json:"typeUrn"`
}

// AuditStamp records who changed an aspect and when.
type AuditStamp struct {
	Actor Urn       `json:"actor"`
	Time  time.Time `json:"time"`
}

// Ownership is the ownership aspect of an entity.
type Ownership struct {
	Owners       []Owner    `json:"owners"`
	LastModified AuditStamp `json:"lastModified"`
}

// Merge appends owners not already present (same owner and type urn) and
// returns the number of owners added.
func (o *Ownership) Merge(owners []Owner) int {
	added := 0
	for _, candidate := range owners {
		if o.has(candidate) {
			continue
		}
		o.Owners = append(o.Owners, candidate)
		added++
	}
	return added
}

func (o *Ownership) has(candidate Owner) bool {
	for _, existing := range o.Owners {
		if existing.Owner == candidate.Owner && existing.TypeUrn == candidate.TypeUrn {
			return true
		}
	}
	return false
}

// Actor is the principal performing a request.
type Actor struct {
	Urn Urn
}

// Authentication pairs the actor with the credential it presented.
// The credential is passed to the entity store without inspection.
type Authentication struct {
	Actor       Actor
	Credentials string
}
