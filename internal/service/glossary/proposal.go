package glossary

import (
	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// buildTermInfo maps a validated input onto the term properties aspect.
// A missing description becomes the empty definition.
func buildTermInfo(input CreateTermInput, parent *domain.Urn) domain.GlossaryTermInfo {
	info := domain.GlossaryTermInfo{
		Name:       input.Name,
		TermSource: domain.TermSourceInternal,
		Definition: "",
	}
	if input.Description != nil {
		info.Definition = *input.Description
	}
	if parent != nil {
		p := *parent
		info.ParentNode = &p
	}
	return info
}

// buildProposal wraps the term properties into an upsert of the
// glossaryTermInfo aspect of urn.
func buildProposal(urn domain.Urn, info domain.GlossaryTermInfo) (domain.ChangeProposal, error) {
	return domain.NewChangeProposal(urn, domain.AspectGlossaryTermInfo, info)
}
