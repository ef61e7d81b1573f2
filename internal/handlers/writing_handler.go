package handlers

import (
	"errors"
	"net/http"

	"lingolab/internal/service"
	"lingolab/internal/writing"
)

// WritingHandler serves the timed writing task
type WritingHandler struct {
	writingService *service.WritingService
}

// NewWritingHandler creates a new writing handler
func NewWritingHandler(writingService *service.WritingService) *WritingHandler {
	return &WritingHandler{writingService: writingService}
}

type essayRequest struct {
	Essay string `json:"essay"`
}

type countResponse struct {
	Words int `json:"words"`
}

// Count returns the word count for the posted text
func (h *WritingHandler) Count(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Words: writing.CountWords(req.Text)})
}

func (h *WritingHandler) TimerStatus(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.writingService.Status(learnerID))
}

// StartTimer starts the learner's countdown. Starting a running timer is a no-op.
func (h *WritingHandler) StartTimer(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.writingService.Start(learnerID))
}

func (h *WritingHandler) ResetTimer(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.writingService.Reset(learnerID))
}

// Submit hands the essay to the reviewer
func (h *WritingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	var req essayRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	sub, err := h.writingService.Submit(r.Context(), learnerID, req.Essay)
	if errors.Is(err, service.ErrEmptyEssay) {
		respondWithError(w, r, http.StatusBadRequest, ErrEssayRequired, "", nil)
		return
	}
	if err != nil {
		respondWithError(w, r, http.StatusBadGateway, ErrEssayNotSent, "Error submitting essay", err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}
