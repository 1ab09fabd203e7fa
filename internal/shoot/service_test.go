package shoot

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"lookbook/internal/domain"
	"lookbook/internal/infra"
	"lookbook/internal/providers/image"
	"lookbook/internal/store"
)

type fakeGenerator struct {
	requests []image.GenerateRequest
	fail     bool
}

func (f *fakeGenerator) Generate(_ context.Context, req image.GenerateRequest) (*image.Asset, error) {
	f.requests = append(f.requests, req)
	if f.fail {
		return nil, errors.New("provider down")
	}
	return &image.Asset{Format: "image/png", Width: 1024, Height: 1280, Data: []byte{1}}, nil
}

func newTestService(t *testing.T, gen image.Generator) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	discard := zerolog.New(io.Discard)
	logger := infra.Logger(discard)
	return NewService(st, gen, &logger, 0), st
}

func TestGenerateRunsOneCallPerFrame(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _ := newTestService(t, gen)

	frames := []domain.Frame{
		{Label: "Wide establish"},
		{Label: "Detail"},
		{Label: "Portrait"},
	}
	result, err := svc.Generate(context.Background(), Request{Frames: frames, AspectRatio: "4:5"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(result.Frames))
	}
	if len(gen.requests) != 3 {
		t.Fatalf("provider calls = %d, want 3", len(gen.requests))
	}
	for i, f := range result.Frames {
		if f.Index != i+1 {
			t.Fatalf("frame %d has index %d", i, f.Index)
		}
		if f.Prompt.Frame.Source != "explicit" {
			t.Fatalf("frame %d source = %q, want explicit", i, f.Prompt.Frame.Source)
		}
		if !strings.Contains(f.PromptText, "HARD RULES:") {
			t.Fatalf("frame %d prompt text missing hard rules", i)
		}
	}
	if gen.requests[0].AspectRatio != "4:5" {
		t.Fatalf("AspectRatio = %q, want 4:5", gen.requests[0].AspectRatio)
	}
}

func TestGenerateWithNoFramesUsesDefaultScene(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _ := newTestService(t, gen)

	result, err := svc.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(result.Frames))
	}
	if got := result.Frames[0].Prompt.Frame.Source; got != "default_scene" {
		t.Fatalf("frame source = %q, want default_scene", got)
	}
}

func TestGenerateSurfacesDanglingReferences(t *testing.T) {
	svc, _ := newTestService(t, &fakeGenerator{})

	_, err := svc.Generate(context.Background(), Request{UniverseID: "missing"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Generate with dangling universe = %v, want ErrNotFound", err)
	}
}

func TestGenerateWrapsProviderFailure(t *testing.T) {
	svc, _ := newTestService(t, &fakeGenerator{fail: true})

	_, err := svc.Generate(context.Background(), Request{})
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("Generate with failing provider = %v, want ErrProviderFailure", err)
	}
}

func TestReferencesOrderIdentityBeforeClothing(t *testing.T) {
	gen := &fakeGenerator{}
	svc, st := newTestService(t, gen)

	m, err := st.CreateModel(domain.Model{Label: "Ana", Images: []domain.RefImage{{MimeType: "image/jpeg", Base64: "aWQ="}}})
	if err != nil {
		t.Fatalf("CreateModel: %v", err)
	}
	l, err := st.CreateLook(domain.Look{Label: "Coat", Images: []domain.RefImage{{MimeType: "image/png", Base64: "Y2w="}}})
	if err != nil {
		t.Fatalf("CreateLook: %v", err)
	}

	result, err := svc.Generate(context.Background(), Request{ModelID: m.ID, LookID: l.ID})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	refs := gen.requests[0].References
	if len(refs) != 2 {
		t.Fatalf("references = %d, want 2", len(refs))
	}
	if refs[0].DataBase64 != "aWQ=" || refs[1].DataBase64 != "Y2w=" {
		t.Fatalf("reference order = %q, %q; want identity first", refs[0].DataBase64, refs[1].DataBase64)
	}
	if !result.Frames[0].Prompt.Identity.HasReferences {
		t.Fatalf("identity block should record references")
	}
	if !result.Frames[0].Prompt.Clothing.HasReferences {
		t.Fatalf("clothing block should record references")
	}
}

func TestPreviewDoesNotCallProvider(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _ := newTestService(t, gen)

	previews, err := svc.PreviewPrompts(Request{Frames: []domain.Frame{{Label: "Wide"}}})
	if err != nil {
		t.Fatalf("PreviewPrompts: %v", err)
	}
	if len(previews) != 1 {
		t.Fatalf("previews = %d, want 1", len(previews))
	}
	if len(gen.requests) != 0 {
		t.Fatalf("provider was called %d times during preview", len(gen.requests))
	}
	if previews[0].Prompt.Format != "lookbook.shoot" {
		t.Fatalf("prompt format = %q", previews[0].Prompt.Format)
	}
}
