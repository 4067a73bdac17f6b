package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const urnPrefix = "urn:li:"

// Entity types addressed by this service.
const (
	EntityTypeGlossaryTerm  = "glossaryTerm"
	EntityTypeGlossaryNode  = "glossaryNode"
	EntityTypeCorpUser      = "corpuser"
	EntityTypeCorpGroup     = "corpGroup"
	EntityTypeOwnershipType = "ownershipType"
)

// Urn is a type-tagged global reference to one entity: urn:li:<entityType>:<id>.
type Urn struct {
	EntityType string
	ID         string
}

// NewUrn builds a Urn without validation. Use ParseUrn for untrusted input.
func NewUrn(entityType, id string) Urn {
	return Urn{EntityType: entityType, ID: id}
}

// GlossaryTermUrn returns the global reference of the glossary term keyed by name.
func GlossaryTermUrn(key string) Urn {
	return NewUrn(EntityTypeGlossaryTerm, key)
}

// CorpUserUrn returns the global reference of a user principal.
func CorpUserUrn(username string) Urn {
	return NewUrn(EntityTypeCorpUser, username)
}

// ParseUrn parses "urn:li:<entityType>:<id>". The id may itself contain colons.
func ParseUrn(s string) (Urn, error) {
	if !strings.HasPrefix(s, urnPrefix) {
		return Urn{}, fmt.Errorf("urn %q: missing %q prefix", s, urnPrefix)
	}
	entityType, id, ok := strings.Cut(strings.TrimPrefix(s, urnPrefix), ":")
	if !ok {
		return Urn{}, fmt.Errorf("urn %q: missing entity key", s)
	}
	if entityType == "" {
		return Urn{}, fmt.Errorf("urn %q: empty entity type", s)
	}
	if strings.TrimSpace(id) == "" {
		return Urn{}, fmt.Errorf("urn %q: empty entity key", s)
	}
	if strings.IndexFunc(s, invalidUrnRune) >= 0 {
		return Urn{}, fmt.Errorf("urn %q: contains whitespace or control characters", s)
	}
	return Urn{EntityType: entityType, ID: id}, nil
}

// ValidUrnKey reports whether key can appear in a urn that parses back to it.
func ValidUrnKey(key string) bool {
	return strings.TrimSpace(key) != "" && strings.IndexFunc(key, invalidUrnRune) < 0
}

func invalidUrnRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r) || r == utf8.RuneError
}

// ParseTypedUrn parses s and requires its entity type to be entityType.
func ParseTypedUrn(s, entityType string) (Urn, error) {
	u, err := ParseUrn(s)
	if err != nil {
		return Urn{}, err
	}
	if u.EntityType != entityType {
		return Urn{}, fmt.Errorf("urn %q: expected entity type %q, got %q", s, entityType, u.EntityType)
	}
	return u, nil
}

// String renders the urn in its canonical form.
func (u Urn) String() string {
	return urnPrefix + u.EntityType + ":" + u.ID
}

// IsZero reports whether u is the empty urn.
func (u Urn) IsZero() bool {
	return u.EntityType == "" && u.ID == ""
}

// MarshalJSON encodes the urn as its canonical string.
func (u Urn) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON decodes a canonical urn string.
func (u *Urn) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseUrn(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
