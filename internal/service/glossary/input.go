package glossary

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// MaxNameLength bounds the display name of a term.
const MaxNameLength = 256

// CreateTermInput holds the parameters for creating a glossary term.
type CreateTermInput struct {
	ID          *string
	Name        string
	Description *string
	ParentNode  *string
}

// Validate checks all fields, collects all errors and returns the parsed
// parent node (nil for a top-level term).
func (i CreateTermInput) Validate() (*domain.Urn, error) {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(name) > MaxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 256 characters"})
	case !utf8.ValidString(i.Name) || strings.IndexFunc(i.Name, unicode.IsControl) >= 0:
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not contain control characters"})
	}

	if i.ID != nil {
		switch {
		case !utf8.ValidString(*i.ID) || strings.IndexFunc(*i.ID, unicode.IsControl) >= 0:
			errs = append(errs, domain.FieldError{Field: "id", Message: "must not contain control characters"})
		case strings.IndexFunc(*i.ID, unicode.IsSpace) >= 0:
			errs = append(errs, domain.FieldError{Field: "id", Message: "must not contain whitespace"})
		}
	}

	if i.Description != nil && !validText(*i.Description) {
		errs = append(errs, domain.FieldError{Field: "description", Message: "must not contain control characters other than tab and newline"})
	}

	var parent *domain.Urn
	if i.ParentNode != nil {
		u, err := domain.ParseTypedUrn(*i.ParentNode, domain.EntityTypeGlossaryNode)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "parent_node", Message: err.Error()})
		} else {
			parent = &u
		}
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return parent, nil
}

// validText reports whether s is UTF-8 free of control characters, line
// breaks and tabs excepted. Postgres text and jsonb reject NUL.
func validText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t'
	}) < 0
}

// requestedID returns the client-supplied id, or "" when none was given.
func (i CreateTermInput) requestedID() string {
	if i.ID == nil {
		return ""
	}
	return *i.ID
}
