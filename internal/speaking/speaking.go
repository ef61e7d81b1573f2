// Package speaking holds the mock speaking test: recorder button state and a
// placeholder evaluator that scores any non-empty recording.
package speaking

import (
	"errors"
	"math"
	"math/rand/v2"
)

// ErrNoAudio is returned when a recording is missing or empty
var ErrNoAudio = errors.New("no audio file provided")

// Feedback lines the evaluator chooses from
var Feedback = []string{
	"Good pronunciation.",
	"Try to vary your intonation.",
	"Excellent vocabulary usage.",
	"Pacing was a bit fast.",
	"Clear and concise.",
}

const (
	minScore = 5.0
	maxScore = 9.0
)

// Rand is the random source behind scores and feedback
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Evaluation is the mock band score for a recording
type Evaluation struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// Evaluator produces mock evaluations
type Evaluator struct {
	rng Rand
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// NewEvaluator creates an evaluator drawing from rng, or from the shared
// generator when rng is nil
func NewEvaluator(rng Rand) *Evaluator {
	if rng == nil {
		rng = globalRand{}
	}
	return &Evaluator{rng: rng}
}

// Evaluate scores a recording of size bytes. No speech is analysed.
func (e *Evaluator) Evaluate(size int64) (Evaluation, error) {
	if size <= 0 {
		return Evaluation{}, ErrNoAudio
	}
	score := minScore + e.rng.Float64()*(maxScore-minScore)
	return Evaluation{
		Score:    math.Round(score*10) / 10,
		Feedback: Feedback[e.rng.IntN(len(Feedback))],
	}, nil
}

// State is what the recorder controls show
type State string

const (
	Idle      State = "idle"
	Recording State = "recording"
)

// Recorder is the speaking panel view-model
type Recorder struct {
	State         State       `json:"state"`
	RecordEnabled bool        `json:"record_enabled"`
	StopEnabled   bool        `json:"stop_enabled"`
	ResultVisible bool        `json:"result_visible"`
	Result        *Evaluation `json:"result,omitempty"`
}

// NewRecorder returns an idle recorder
func NewRecorder() *Recorder {
	return &Recorder{State: Idle, RecordEnabled: true}
}

// Record starts a take and hides the previous result
func (r *Recorder) Record() {
	r.State = Recording
	r.RecordEnabled = false
	r.StopEnabled = true
	r.ResultVisible = false
}

// Stop ends the take; the caller then submits the audio
func (r *Recorder) Stop() {
	r.State = Idle
	r.RecordEnabled = true
	r.StopEnabled = false
}

// ShowResult reveals an evaluation
func (r *Recorder) ShowResult(ev Evaluation) {
	r.Result = &ev
	r.ResultVisible = true
}
