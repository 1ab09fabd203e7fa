package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lookbook/internal/domain"
	"lookbook/internal/promptgen"
)

func (a *App) ListUniverses(w http.ResponseWriter, r *http.Request) {
	items, err := a.Store.ListUniverses()
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GetUniverse(w http.ResponseWriter, r *http.Request) {
	u, err := a.Store.GetUniverse(chi.URLParam(r, "id"))
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, u)
}

func (a *App) CreateUniverse(w http.ResponseWriter, r *http.Request) {
	var u domain.Universe
	if !a.decode(w, r, &u) {
		return
	}
	promptgen.NormalizeUniverse(&u)
	created, err := a.Store.CreateUniverse(u)
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusCreated, created)
}

func (a *App) UpdateUniverse(w http.ResponseWriter, r *http.Request) {
	var u domain.Universe
	if !a.decode(w, r, &u) {
		return
	}
	promptgen.NormalizeUniverse(&u)
	updated, err := a.Store.UpdateUniverse(chi.URLParam(r, "id"), u)
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, updated)
}

func (a *App) DeleteUniverse(w http.ResponseWriter, r *http.Request) {
	if err := a.Store.DeleteUniverse(chi.URLParam(r, "id")); err != nil {
		a.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UniverseAnchors resolves the universe's visual anchors for editor display.
// An optional ?variant= query applies a style variant before resolution.
func (a *App) UniverseAnchors(w http.ResponseWriter, r *http.Request) {
	u, err := a.Store.GetUniverse(chi.URLParam(r, "id"))
	if err != nil {
		a.storeError(w, err)
		return
	}

	params := promptgen.ParamsFromUniverse(u)
	if variantID := r.URL.Query().Get("variant"); variantID != "" {
		for _, variant := range u.StyleVariants {
			if variant.ID == variantID {
				params = promptgen.ApplyVariant(params, variant)
				break
			}
		}
	}

	bundle := promptgen.BuildVisualAnchors(params)
	a.json(w, http.StatusOK, map[string]any{
		"items":  promptgen.AnchorsForUI(bundle),
		"prompt": promptgen.BuildVisualAnchorsPrompt(bundle),
	})
}

// UniverseNarrative renders the universe narrative in the requested mode.
func (a *App) UniverseNarrative(w http.ResponseWriter, r *http.Request) {
	u, err := a.Store.GetUniverse(chi.URLParam(r, "id"))
	if err != nil {
		a.storeError(w, err)
		return
	}
	mode := r.URL.Query().Get("mode")
	params := promptgen.ParamsFromUniverse(u)
	a.json(w, http.StatusOK, map[string]string{
		"mode":      mode,
		"narrative": promptgen.BuildUniverseNarrativeByMode(params, mode),
	})
}
