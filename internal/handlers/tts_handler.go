package handlers

import (
	"errors"
	"net/http"

	"lingolab/internal/audio"
	"lingolab/internal/library"
	"lingolab/internal/observe"
)

// TTSHandler turns text into cached MP3s
type TTSHandler struct {
	ttsService *audio.TTSService
	metrics    *observe.Metrics
}

// NewTTSHandler creates a new TTS handler. metrics may be nil.
func NewTTSHandler(ttsService *audio.TTSService, metrics *observe.Metrics) *TTSHandler {
	return &TTSHandler{ttsService: ttsService, metrics: metrics}
}

type ttsResponse struct {
	Path string `json:"path"`
}

// Generate returns the URL of the speech for the posted text
func (h *TTSHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	cached := h.ttsService.IsCached(req.Text)
	name, err := h.ttsService.Generate(r.Context(), req.Text)
	switch {
	case errors.Is(err, audio.ErrEmptyText):
		respondWithError(w, r, http.StatusBadRequest, ErrTextRequired, "", nil)
		return
	case errors.Is(err, audio.ErrTextTooLong):
		respondWithError(w, r, http.StatusBadRequest, err.Error(), "", nil)
		return
	case err != nil:
		respondWithError(w, r, http.StatusBadGateway, ErrSpeechUnavailable, "Error generating speech", err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordTTS(r.Context(), cached)
	}
	writeJSON(w, http.StatusOK, ttsResponse{Path: "/tts/" + name})
}

// ServeFile streams a generated MP3
func (h *TTSHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	full, err := library.Resolve(h.ttsService.Dir(), r.PathValue("file"))
	switch {
	case errors.Is(err, library.ErrInvalidPath):
		respondWithText(w, http.StatusBadRequest, ErrInvalidPath)
		return
	case errors.Is(err, library.ErrFileNotFound):
		respondWithText(w, http.StatusNotFound, ErrFileNotFound)
		return
	case err != nil:
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error resolving speech file", err)
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, full)
}
