package handlers

import (
	"net/http"

	"lookbook/internal/promptgen"
)

// ParamOptions lists the valid values for every enumerated universe
// parameter, for clients building editors.
func (a *App) ParamOptions(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"options": promptgen.OptionCatalog()})
}
