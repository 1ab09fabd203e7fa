package store

import (
	"errors"
	"testing"

	"lookbook/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestUniverseLifecycle(t *testing.T) {
	s := openTestStore(t)

	created, err := s.CreateUniverse(domain.Universe{Label: "Harbor Film"})
	if err != nil {
		t.Fatalf("CreateUniverse: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("created universe has no id")
	}
	if created.UpdatedAt.IsZero() {
		t.Fatalf("created universe has no updatedAt")
	}

	updated := *created
	updated.Label = "Harbor Film II"
	updated.ID = "attempted-rewrite"
	got, err := s.UpdateUniverse(created.ID, updated)
	if err != nil {
		t.Fatalf("UpdateUniverse: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("update changed the id: %q -> %q", created.ID, got.ID)
	}
	if got.Label != "Harbor Film II" {
		t.Fatalf("Label = %q, want updated label", got.Label)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updatedAt did not advance: %v -> %v", created.UpdatedAt, got.UpdatedAt)
	}

	if err := s.DeleteUniverse(created.ID); err != nil {
		t.Fatalf("DeleteUniverse: %v", err)
	}
	if _, err := s.GetUniverse(created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetUniverse after delete = %v, want ErrNotFound", err)
	}
}

func TestUniverseDeleteDoesNotCascadeToCatalogLocations(t *testing.T) {
	s := openTestStore(t)

	u, err := s.CreateUniverse(domain.Universe{Label: "Harbor Film"})
	if err != nil {
		t.Fatalf("CreateUniverse: %v", err)
	}
	loc, err := s.CreateLocation(domain.Location{Label: "Pier 7", SourceUniverseID: u.ID})
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}

	if err := s.DeleteUniverse(u.ID); err != nil {
		t.Fatalf("DeleteUniverse: %v", err)
	}
	if _, err := s.GetLocation(loc.ID); err != nil {
		t.Fatalf("location should survive universe deletion, got %v", err)
	}
}

func TestCreateUniverseRejectsDuplicateLabel(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.CreateUniverse(domain.Universe{Label: "Harbor Film"}); err != nil {
		t.Fatalf("CreateUniverse: %v", err)
	}
	if _, err := s.CreateUniverse(domain.Universe{Label: "harbor film"}); !errors.Is(err, domain.ErrDuplicateLabel) {
		t.Fatalf("duplicate create = %v, want ErrDuplicateLabel", err)
	}
}

func TestCreateRejectsMissingLabel(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.CreateUniverse(domain.Universe{}); !errors.Is(err, domain.ErrInvalidEntity) {
		t.Fatalf("CreateUniverse without label = %v, want ErrInvalidEntity", err)
	}
	if _, err := s.CreateLocation(domain.Location{}); !errors.Is(err, domain.ErrInvalidEntity) {
		t.Fatalf("CreateLocation without label = %v, want ErrInvalidEntity", err)
	}
}

func TestSnippetPrefersHandwrittenAndCachesDerived(t *testing.T) {
	s := openTestStore(t)

	handwritten := domain.Location{ID: "l-1", Label: "Pier 7", PromptSnippet: "hand-written snippet"}
	if got := s.Snippet(handwritten); got != "hand-written snippet" {
		t.Fatalf("Snippet = %q, want hand-written value", got)
	}

	derived := domain.Location{
		ID:              "l-2",
		Label:           "Pier 7",
		EnvironmentType: "industrial",
		Surface:         "wet concrete",
	}
	first := s.Snippet(derived)
	if first == "" {
		t.Fatalf("derived snippet is empty")
	}
	if second := s.Snippet(derived); second != first {
		t.Fatalf("cached snippet differs: %q vs %q", first, second)
	}
}

func TestModelAndLookLifecycle(t *testing.T) {
	s := openTestStore(t)

	m, err := s.CreateModel(domain.Model{Label: "Ana", Images: []domain.RefImage{{MimeType: "image/png", Base64: "aGk="}}})
	if err != nil {
		t.Fatalf("CreateModel: %v", err)
	}
	if got, err := s.GetModel(m.ID); err != nil || got.Label != "Ana" {
		t.Fatalf("GetModel = %+v, %v", got, err)
	}

	l, err := s.CreateLook(domain.Look{Label: "Wool coat", Items: []domain.LookItem{{Kind: "outer", Label: "coat"}}})
	if err != nil {
		t.Fatalf("CreateLook: %v", err)
	}
	if err := s.DeleteLook(l.ID); err != nil {
		t.Fatalf("DeleteLook: %v", err)
	}
	if _, err := s.GetLook(l.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetLook after delete = %v, want ErrNotFound", err)
	}
}
