package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lookbook/internal/domain"
)

func (a *App) ListModels(w http.ResponseWriter, r *http.Request) {
	items, err := a.Store.ListModels()
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GetModel(w http.ResponseWriter, r *http.Request) {
	m, err := a.Store.GetModel(chi.URLParam(r, "id"))
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, m)
}

func (a *App) CreateModel(w http.ResponseWriter, r *http.Request) {
	var m domain.Model
	if !a.decode(w, r, &m) {
		return
	}
	created, err := a.Store.CreateModel(m)
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusCreated, created)
}

func (a *App) UpdateModel(w http.ResponseWriter, r *http.Request) {
	var m domain.Model
	if !a.decode(w, r, &m) {
		return
	}
	updated, err := a.Store.UpdateModel(chi.URLParam(r, "id"), m)
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, updated)
}

func (a *App) DeleteModel(w http.ResponseWriter, r *http.Request) {
	if err := a.Store.DeleteModel(chi.URLParam(r, "id")); err != nil {
		a.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
