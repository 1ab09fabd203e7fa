package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateFrameSurfacesRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 500, "message": "backend unavailable"},
		})
	}))
	defer srv.Close()

	client, err := NewClient(Options{APIKey: "test-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	asset, err := client.GenerateFrame(context.Background(), FrameRequest{Prompt: "a coat"})
	if err == nil {
		t.Fatalf("GenerateFrame with failing remote returned nil error and asset %+v", asset)
	}
	if !strings.Contains(err.Error(), "backend unavailable") {
		t.Fatalf("error = %v, want the remote message surfaced", err)
	}
	if asset != nil {
		t.Fatalf("no synthetic fallback expected when a key is configured, got %d bytes", len(asset.Data))
	}
}

func TestGenerateFrameSyntheticWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("keyless client must not call the remote API: %s %s", r.Method, r.URL.Path)
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	req := FrameRequest{Prompt: "a coat", AspectRatio: "4:5", RequestID: "r-1"}
	first, err := client.GenerateFrame(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateFrame: %v", err)
	}
	if first.Format != "image/png" || first.Width != 1024 || first.Height != 1280 {
		t.Fatalf("synthetic asset = %s %dx%d, want image/png 1024x1280", first.Format, first.Width, first.Height)
	}

	second, err := client.GenerateFrame(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateFrame repeat: %v", err)
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Fatalf("synthetic frames for identical requests differ")
	}
}

func TestGenerateFrameSendsReferencesBeforePrompt(t *testing.T) {
	var captured geminiGenerateContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{
						"inlineData": map[string]any{"mimeType": "image/jpeg", "data": "ZnJhbWU="},
					}},
				},
			}},
		})
	}))
	defer srv.Close()

	client, err := NewClient(Options{APIKey: "test-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	asset, err := client.GenerateFrame(context.Background(), FrameRequest{
		Prompt: "a coat",
		References: []Reference{
			{MimeType: "image/png", Data: "aWQ="},
			{MimeType: "image/png", Data: "Y2w="},
		},
	})
	if err != nil {
		t.Fatalf("GenerateFrame: %v", err)
	}
	if asset.Format != "image/jpeg" || string(asset.Data) != "frame" {
		t.Fatalf("asset = %s %q, want decoded remote frame", asset.Format, asset.Data)
	}

	if len(captured.Contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(captured.Contents))
	}
	parts := captured.Contents[0].Parts
	if len(parts) != 3 {
		t.Fatalf("parts = %d, want 2 references + 1 text", len(parts))
	}
	if parts[0].InlineData == nil || parts[1].InlineData == nil {
		t.Fatalf("reference parts must precede the text part: %+v", parts)
	}
	if parts[2].Text == "" {
		t.Fatalf("final part should carry the prompt text")
	}
}
