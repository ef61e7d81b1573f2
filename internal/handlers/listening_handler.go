package handlers

import (
	"errors"
	"net/http"

	"lingolab/internal/listening"
	"lingolab/internal/service"
)

// ListeningHandler serves the listening answer sheets
type ListeningHandler struct {
	libraryService *service.LibraryService
}

// NewListeningHandler creates a new listening handler
func NewListeningHandler(libraryService *service.LibraryService) *ListeningHandler {
	return &ListeningHandler{libraryService: libraryService}
}

// gradeRequest carries the learner's answers and the answer key, both keyed
// by question number
type gradeRequest struct {
	Section string         `json:"section"`
	Answers map[int]string `json:"answers"`
	Correct map[int]string `json:"correct"`
}

// Questions returns blank questions for ?section=
func (h *ListeningHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listening.GenerateQuestions(r.URL.Query().Get("section")))
}

// Sheet starts a fresh answer sheet for the track at ?path=
func (h *ListeningHandler) Sheet(w http.ResponseWriter, r *http.Request) {
	file, err := h.libraryService.FindAudio(r.Context(), r.URL.Query().Get("path"))
	if err != nil {
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error looking up audio", err)
		return
	}
	if file == nil {
		respondWithError(w, r, http.StatusNotFound, ErrUnknownAudio, "", nil)
		return
	}

	var sheet listening.Sheet
	sheet.Select(*file)
	writeJSON(w, http.StatusOK, sheet)
}

// Grade marks a section. Answers are filled in first, then the sheet is
// locked and the key applied.
func (h *ListeningHandler) Grade(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	sheet := listening.Sheet{Questions: listening.GenerateQuestions(req.Section)}
	for n, answer := range req.Answers {
		if err := sheet.SetUserAnswer(n, answer); err != nil {
			respondWithSheetError(w, r, err)
			return
		}
	}
	sheet.BeginEvaluation()
	for n, answer := range req.Correct {
		if err := sheet.SetCorrectAnswer(n, answer); err != nil {
			respondWithSheetError(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, sheet.Grade())
}

func respondWithSheetError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, listening.ErrNoQuestion) {
		respondWithError(w, r, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error filling listening sheet", err)
}
