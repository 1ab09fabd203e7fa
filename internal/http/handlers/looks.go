package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lookbook/internal/domain"
)

func (a *App) ListLooks(w http.ResponseWriter, r *http.Request) {
	items, err := a.Store.ListLooks()
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GetLook(w http.ResponseWriter, r *http.Request) {
	l, err := a.Store.GetLook(chi.URLParam(r, "id"))
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, l)
}

func (a *App) CreateLook(w http.ResponseWriter, r *http.Request) {
	var l domain.Look
	if !a.decode(w, r, &l) {
		return
	}
	created, err := a.Store.CreateLook(l)
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusCreated, created)
}

func (a *App) UpdateLook(w http.ResponseWriter, r *http.Request) {
	var l domain.Look
	if !a.decode(w, r, &l) {
		return
	}
	updated, err := a.Store.UpdateLook(chi.URLParam(r, "id"), l)
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, updated)
}

func (a *App) DeleteLook(w http.ResponseWriter, r *http.Request) {
	if err := a.Store.DeleteLook(chi.URLParam(r, "id")); err != nil {
		a.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
