package handlers

import (
	"net/http"
	"strings"

	"lingolab/internal/keywords"
)

// KeywordsHandler serves the question keyword tools
type KeywordsHandler struct{}

func NewKeywordsHandler() *KeywordsHandler {
	return &KeywordsHandler{}
}

type extractRequest struct {
	Question string `json:"question"`
}

type extractResponse struct {
	Question string `json:"question"`
	keywords.Extraction
	Summary string `json:"summary"`
}

type analyzeRequest struct {
	Question string `json:"question"`
	Text     string `json:"text"`
}

type matchesRequest struct {
	Keywords []string `json:"keywords"`
	Text     string   `json:"text"`
}

type matchesResponse struct {
	Keywords     []string                    `json:"keywords"`
	Text         string                      `json:"text"`
	Matches      map[string][]keywords.Match `json:"matches"`
	TotalMatches int                         `json:"total_matches"`
}

type synonymsResponse struct {
	Word     string   `json:"word"`
	Synonyms []string `json:"synonyms"`
}

// Extract splits a question into keywords and filler words
func (h *KeywordsHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respondWithError(w, r, http.StatusBadRequest, ErrQuestionRequired, "", nil)
		return
	}
	writeJSON(w, http.StatusOK, extractResponse{
		Question:   req.Question,
		Extraction: keywords.Extract(req.Question),
		Summary:    keywords.Summary(req.Question),
	})
}

// Analyze reports how well a passage covers a question's keywords
func (h *KeywordsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}
	analysis, err := keywords.Analyze(req.Question, req.Text)
	if err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrQuestionTextRequired, "", nil)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (h *KeywordsHandler) Matches(w http.ResponseWriter, r *http.Request) {
	var req matchesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}
	if len(req.Keywords) == 0 || strings.TrimSpace(req.Text) == "" {
		respondWithError(w, r, http.StatusBadRequest, ErrKeywordsTextRequired, "", nil)
		return
	}
	matches := keywords.FindMatches(req.Keywords, req.Text)
	writeJSON(w, http.StatusOK, matchesResponse{
		Keywords:     req.Keywords,
		Text:         req.Text,
		Matches:      matches,
		TotalMatches: keywords.TotalMatches(matches),
	})
}

func (h *KeywordsHandler) Synonyms(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	writeJSON(w, http.StatusOK, synonymsResponse{Word: word, Synonyms: keywords.Synonyms(word)})
}
