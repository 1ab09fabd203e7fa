package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"lookbook/internal/shoot"
	"lookbook/pkg/zip"
)

// GenerateShoot runs a full shoot and returns the generated frames with their
// audit prompts.
func (a *App) GenerateShoot(w http.ResponseWriter, r *http.Request) {
	var req shoot.Request
	if !a.decode(w, r, &req) {
		return
	}
	result, err := a.Shoots.Generate(r.Context(), req)
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, result)
}

// ExportShoot runs a full shoot and streams the frames plus their audit
// prompts back as one zip archive.
func (a *App) ExportShoot(w http.ResponseWriter, r *http.Request) {
	var req shoot.Request
	if !a.decode(w, r, &req) {
		return
	}
	result, err := a.Shoots.Generate(r.Context(), req)
	if err != nil {
		a.storeError(w, err)
		return
	}

	entries := make([]zip.Entry, 0, len(result.Frames)+1)
	for _, frame := range result.Frames {
		entries = append(entries, zip.Entry{
			Name: fmt.Sprintf("frame-%02d%s", frame.Index, extensionFor(frame.Format)),
			Data: frame.Data,
		})
	}
	if audit, err := json.MarshalIndent(result, "", "  "); err == nil {
		entries = append(entries, zip.Entry{Name: "shoot.json", Data: audit})
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "shoot-"+result.ShootID+".zip"))
	_, _ = w.Write(zip.Archive(entries))
}

func extensionFor(format string) string {
	switch strings.ToLower(format) {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// PreviewPrompts assembles the prompt documents for a shoot without calling
// the image provider.
func (a *App) PreviewPrompts(w http.ResponseWriter, r *http.Request) {
	var req shoot.Request
	if !a.decode(w, r, &req) {
		return
	}
	previews, err := a.Shoots.PreviewPrompts(req)
	if err != nil {
		a.storeError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": previews})
}
