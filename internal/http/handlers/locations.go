package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lookbook/internal/domain"
)

func (a *App) ListLocations(w http.ResponseWriter, r *http.Request) {
	items, err := a.Store.ListLocations()
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// GetLocation returns the location plus its resolved prompt snippet, derived
// and cached when no hand-written snippet exists.
func (a *App) GetLocation(w http.ResponseWriter, r *http.Request) {
	l, err := a.Store.GetLocation(chi.URLParam(r, "id"))
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"location": l,
		"snippet":  a.Store.Snippet(*l),
	})
}

func (a *App) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var l domain.Location
	if !a.decode(w, r, &l) {
		return
	}
	created, err := a.Store.CreateLocation(l)
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusCreated, created)
}

func (a *App) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var l domain.Location
	if !a.decode(w, r, &l) {
		return
	}
	updated, err := a.Store.UpdateLocation(chi.URLParam(r, "id"), l)
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, updated)
}

func (a *App) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := a.Store.DeleteLocation(chi.URLParam(r, "id")); err != nil {
		a.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
