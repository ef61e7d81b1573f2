package handlers

import (
	"net/http"

	"go.opentelemetry.io/otel/metric"

	"lingolab/internal/observe"
	"lingolab/internal/quiz"
)

// QuizHandler scores the reading quiz
type QuizHandler struct {
	metrics *observe.Metrics
}

// NewQuizHandler creates a new quiz handler. metrics may be nil.
func NewQuizHandler(metrics *observe.Metrics) *QuizHandler {
	return &QuizHandler{metrics: metrics}
}

type quizRequest struct {
	Answers map[string]string `json:"answers"`
}

// Submit marks the answers and returns the score with a per-question breakdown
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	result := quiz.Score(req.Answers)
	if h.metrics != nil {
		outcome := "partial"
		if result.Score == result.Total {
			outcome = "perfect"
		}
		h.metrics.QuizSubmissions.Add(r.Context(), 1, metric.WithAttributes(observe.Attr("outcome", outcome)))
	}
	writeJSON(w, http.StatusOK, result)
}
