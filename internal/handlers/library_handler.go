package handlers

import (
	"errors"
	"net/http"

	"lingolab/internal/library"
	"lingolab/internal/service"
)

// LibraryHandler serves the reading materials and listening tracks
type LibraryHandler struct {
	libraryService *service.LibraryService
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(libraryService *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

// ListMaterials returns the PDFs, optionally narrowed by ?category=
func (h *LibraryHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	items, err := h.libraryService.Materials(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error scanning materials", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *LibraryHandler) ListAudio(w http.ResponseWriter, r *http.Request) {
	files, err := h.libraryService.Audio(r.Context())
	if err != nil {
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error scanning audio", err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// ListAudioGroups returns tracks grouped by book and test
func (h *LibraryHandler) ListAudioGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.libraryService.AudioGroups(r.Context())
	if err != nil {
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error scanning audio", err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// Refresh rescans the library
func (h *LibraryHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cat, err := h.libraryService.Refresh(r.Context())
	if err != nil {
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error rescanning library", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"materials": len(cat.Materials),
		"audio":     len(cat.Audio),
	})
}

// ServeFile streams a PDF or MP3 from the library
func (h *LibraryHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	full, err := h.libraryService.Resolve(r.PathValue("path"))
	switch {
	case errors.Is(err, library.ErrInvalidPath):
		respondWithText(w, http.StatusBadRequest, ErrInvalidPath)
		return
	case errors.Is(err, library.ErrFileNotFound):
		respondWithText(w, http.StatusNotFound, ErrFileNotFound)
		return
	case err != nil:
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error resolving library file", err)
		return
	}
	http.ServeFile(w, r, full)
}

// OpenViewer returns the reading viewer showing ?path=
func (h *LibraryHandler) OpenViewer(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Query().Get("path")
	if _, err := h.libraryService.Resolve(p); err != nil {
		switch {
		case errors.Is(err, library.ErrInvalidPath):
			respondWithError(w, r, http.StatusBadRequest, ErrInvalidPath, "", nil)
		case errors.Is(err, library.ErrFileNotFound):
			respondWithError(w, r, http.StatusNotFound, ErrFileNotFound, "", nil)
		default:
			respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error resolving library file", err)
		}
		return
	}

	var v library.Viewer
	v.Open(p)
	writeJSON(w, http.StatusOK, v)
}

// CloseViewer returns the hidden viewer state
func (h *LibraryHandler) CloseViewer(w http.ResponseWriter, r *http.Request) {
	var v library.Viewer
	v.Close()
	writeJSON(w, http.StatusOK, v)
}
