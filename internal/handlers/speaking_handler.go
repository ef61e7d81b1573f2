package handlers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"lingolab/internal/observe"
	"lingolab/internal/speaking"
)

// SpeakingHandler runs the mock speaking test
type SpeakingHandler struct {
	evaluator     *speaking.Evaluator
	metrics       *observe.Metrics
	uploadMaxSize int64

	now       func() time.Time
	mu        sync.Mutex
	recorders map[string]*learnerRecorder
}

type learnerRecorder struct {
	rec      *speaking.Recorder
	lastSeen time.Time
}

// NewSpeakingHandler creates a new speaking handler. metrics may be nil.
func NewSpeakingHandler(evaluator *speaking.Evaluator, metrics *observe.Metrics, uploadMaxSize int64) *SpeakingHandler {
	return &SpeakingHandler{
		evaluator:     evaluator,
		metrics:       metrics,
		uploadMaxSize: uploadMaxSize,
		now:           time.Now,
		recorders:     make(map[string]*learnerRecorder),
	}
}

// update applies fn to the learner's recorder and returns a copy
func (h *SpeakingHandler) update(learnerID string, fn func(*speaking.Recorder)) speaking.Recorder {
	h.mu.Lock()
	defer h.mu.Unlock()
	lr, ok := h.recorders[learnerID]
	if !ok {
		lr = &learnerRecorder{rec: speaking.NewRecorder()}
		h.recorders[learnerID] = lr
	}
	lr.lastSeen = h.now()
	fn(lr.rec)
	return *lr.rec
}

// Evict drops recorders untouched for longer than idle
func (h *SpeakingHandler) Evict(idle time.Duration) int {
	cutoff := h.now().Add(-idle)

	h.mu.Lock()
	defer h.mu.Unlock()

	removed := 0
	for id, lr := range h.recorders {
		if lr.lastSeen.Before(cutoff) {
			delete(h.recorders, id)
			removed++
		}
	}
	return removed
}

func (h *SpeakingHandler) Recorder(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.update(learnerID, func(*speaking.Recorder) {}))
}

// Record starts a take
func (h *SpeakingHandler) Record(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.update(learnerID, (*speaking.Recorder).Record))
}

// Stop ends the take. The page then posts the audio to Evaluate.
func (h *SpeakingHandler) Stop(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.update(learnerID, (*speaking.Recorder).Stop))
}

// Evaluate scores the uploaded "audio" field
func (h *SpeakingHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxSize)
	file, header, err := r.FormFile("audio")
	if err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrNoAudioFile, "", nil)
		return
	}
	file.Close()

	ev, err := h.evaluator.Evaluate(header.Size)
	if errors.Is(err, speaking.ErrNoAudio) {
		respondWithError(w, r, http.StatusBadRequest, ErrNoAudioFile, "", nil)
		return
	}
	if err != nil {
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error evaluating recording", err)
		return
	}

	if learnerID := GetLearnerID(r.Context()); learnerID != "" {
		h.update(learnerID, func(rec *speaking.Recorder) { rec.ShowResult(ev) })
	}
	if h.metrics != nil {
		h.metrics.SpeakingEvaluations.Add(r.Context(), 1)
	}
	observe.Logger(r.Context()).Debug("speaking evaluated", "bytes", header.Size, "score", ev.Score)
	writeJSON(w, http.StatusOK, ev)
}
