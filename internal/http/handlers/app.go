package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"lookbook/internal/domain"
	"lookbook/internal/infra"
	"lookbook/internal/shoot"
	"lookbook/internal/store"
)

type App struct {
	Store  *store.Store
	Shoots *shoot.Service
	Logger *infra.Logger
}

func NewApp(st *store.Store, shoots *shoot.Service, logger *infra.Logger) *App {
	return &App{Store: st, Shoots: shoots, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]string{"error": kind, "message": message})
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}

// storeError maps domain sentinels onto HTTP status codes.
func (a *App) storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidEntity):
		a.error(w, http.StatusBadRequest, "invalid_entity", err.Error())
	case errors.Is(err, domain.ErrDuplicateLabel):
		a.error(w, http.StatusConflict, "duplicate_label", err.Error())
	case errors.Is(err, domain.ErrProviderFailure):
		a.error(w, http.StatusBadGateway, "provider_failure", err.Error())
	default:
		a.Logger.Error().Err(err).Msg("handlers: unexpected store error")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
