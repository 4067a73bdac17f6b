package glossary

import (
	"encoding/json"
	"testing"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

func TestBuildTermInfo(t *testing.T) {
	t.Parallel()

	parent := domain.NewUrn(domain.EntityTypeGlossaryNode, "finance")

	info := buildTermInfo(CreateTermInput{Name: "Revenue", Description: ptr("money in")}, &parent)
	if info.Name != "Revenue" || info.Definition != "money in" || info.TermSource != domain.TermSourceInternal {
		t.Errorf("info: got %+v", info)
	}
	if info.ParentNode == nil || *info.ParentNode != parent {
		t.Fatalf("parent: got %v, want %s", info.ParentNode, parent)
	}

	// The aspect keeps its own copy of the parent reference.
	parent.ID = "changed"
	if info.ParentNode.ID != "finance" {
		t.Error("buildTermInfo must copy the parent reference")
	}
}

func TestBuildTermInfo_Defaults(t *testing.T) {
	t.Parallel()

	info := buildTermInfo(CreateTermInput{Name: "Revenue"}, nil)
	if info.Definition != "" {
		t.Errorf("definition: got %q, want empty", info.Definition)
	}
	if info.ParentNode != nil {
		t.Errorf("parent: got %v, want nil", info.ParentNode)
	}
}

func TestBuildProposal(t *testing.T) {
	t.Parallel()

	urn := domain.GlossaryTermUrn("rev")
	p, err := buildProposal(urn, buildTermInfo(CreateTermInput{Name: "Revenue"}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.EntityUrn != urn {
		t.Errorf("entity urn: got %s, want %s", p.EntityUrn, urn)
	}
	if p.EntityType != domain.EntityTypeGlossaryTerm {
		t.Errorf("entity type: got %s", p.EntityType)
	}
	if p.AspectName != domain.AspectGlossaryTermInfo {
		t.Errorf("aspect: got %s", p.AspectName)
	}
	if p.ChangeType != domain.ChangeTypeUpsert {
		t.Errorf("change type: got %s", p.ChangeType)
	}
	if p.Aspect.ContentType != domain.ContentTypeJSON {
		t.Errorf("content type: got %s", p.Aspect.ContentType)
	}

	var raw map[string]any
	if err := json.Unmarshal(p.Aspect.Value, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raw["name"] != "Revenue" || raw["termSource"] != "INTERNAL" || raw["definition"] != "" {
		t.Errorf("payload: got %v", raw)
	}
}
