package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"lookbook/internal/http/handlers"
	"lookbook/internal/infra"
	"lookbook/internal/providers/image"
	"lookbook/internal/shoot"
	"lookbook/internal/store"
)

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, _ image.GenerateRequest) (*image.Asset, error) {
	return &image.Asset{Format: "image/png", Width: 1024, Height: 1024, Data: []byte{1}}, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	discard := zerolog.New(io.Discard)
	logger := infra.Logger(discard)
	svc := shoot.NewService(st, stubGenerator{}, &logger, 0)
	app := handlers.NewApp(st, svc, &logger)
	srv := httptest.NewServer(NewRouter(app, RouterOptions{}))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func TestUniverseCRUDOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/universes", map[string]any{"label": "Harbor Film"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Color struct {
			WhiteBalance string `json:"whiteBalance"`
		} `json:"color"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	resp.Body.Close()
	if created.ID == "" {
		t.Fatalf("created universe has no id")
	}
	if created.Color.WhiteBalance != "neutral" {
		t.Fatalf("whiteBalance = %q, want normalized default neutral", created.Color.WhiteBalance)
	}

	getResp, err := http.Get(srv.URL + "/v1/universes/" + created.ID)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", getResp.StatusCode)
	}

	missing, err := http.Get(srv.URL + "/v1/universes/nope")
	if err != nil {
		t.Fatalf("GET missing: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("missing status = %d, want 404", missing.StatusCode)
	}
}

func TestPromptPreviewOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/prompts/preview", map[string]any{
		"frames": []map[string]any{{"label": "Wide"}},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("preview status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "HARD RULES:") {
		t.Fatalf("preview response missing prompt text: %s", body)
	}
}

func TestShootGenerateOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/shoots/generate", map[string]any{
		"frames":      []map[string]any{{"label": "Wide"}, {"label": "Detail"}},
		"aspectRatio": "4:5",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("generate status = %d, want 200", resp.StatusCode)
	}
	var result struct {
		ShootID string `json:"shootId"`
		Frames  []struct {
			Index int `json:"index"`
		} `json:"frames"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.ShootID == "" || len(result.Frames) != 2 {
		t.Fatalf("result = %+v, want shoot id and 2 frames", result)
	}
}

func TestParamOptionsOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/params/options")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"whiteBalance", "cool_daylight", "antiAiLevel", "emotionPreset"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("options response missing %q", want)
		}
	}
}
