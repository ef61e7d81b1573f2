// Package dictation holds the multi-pass dictation exercise as a view-model.
// Every learner action is a method on Session that moves it to its next
// state; rendering is left to the caller.
package dictation

import (
	"errors"
	"fmt"
	"strings"

	"lingolab/internal/compare"
	"lingolab/internal/models"
	"lingolab/internal/navigation"
	"lingolab/internal/writing"
)

var (
	ErrNoAudio            = errors.New("no audio file selected")
	ErrInvalidPass        = errors.New("pass must be 1, 2 or 3")
	ErrInvalidMode        = errors.New("unknown dictation mode")
	ErrEmptyTranscript    = errors.New("transcript is empty")
	ErrMissingTranscripts = errors.New("transcription and reference transcript are both required")
	ErrNoParaphrase       = errors.New("no paraphrase at that position")
)

// Passes is the number of guided passes
const Passes = 3

// Mode selects how the learner transcribes
type Mode string

const (
	Standard Mode = "standard"
	Shadow   Mode = "shadow"
	Summary  Mode = "summary"
	GapFill  Mode = "gapfill"
)

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	switch m {
	case Standard, Shadow, Summary, GapFill:
		return true
	}
	return false
}

// BadgeState is how a pass indicator is drawn
type BadgeState string

const (
	BadgeNone      BadgeState = "none"
	BadgeActive    BadgeState = "active"
	BadgeCompleted BadgeState = "completed"
)

// Sub-views of the dictation section
const (
	TabTranscription = "transcription"
	TabTranscript    = "transcript"
	TabComparison    = "comparison"
	TabParaphrase    = "paraphrase"
)

const (
	resetPlaceholder = "Write down exactly what you hear... (1st Pass)"

	standardPlaceholder = "Standard Dictation: Write down exactly what you hear..."
	shadowPlaceholder   = "Shadow Dictation: Speak along with the audio while writing. This helps with pronunciation and rhythm."
	summaryPlaceholder  = "Summarization Dictation: Capture the main ideas instead of word-for-word transcription. Focus on key concepts."
	gapFillPlaceholder  = "Gap-Fill Dictation: Fill in the missing words. Upload or enter a transcript with blanks (marked as ____) first."

	// GapFillNotice explains how to author a gap-fill transcript
	GapFillNotice = "For Gap-Fill mode:\n\n1. Go to the \"Transcript\" tab\n2. Enter or upload a transcript with gaps marked as \"____\" (four underscores)\n3. Then switch back to Gap-Fill mode"

	gapMarker     = "____"
	gapAnswerSlot = "______"
)

var passPlaceholders = [Passes]string{
	"Write down exactly what you hear, even if incomplete... (1st Pass)",
	"Replay and fill in gaps, focusing on grammar and word choice... (2nd Pass)",
	"Final pass - refine accuracy, check articles, prepositions, verb tenses... (3rd Pass)",
}

// PassPlaceholder returns the instruction shown during pass n
func PassPlaceholder(n int) string {
	if n < 1 || n > Passes {
		return resetPlaceholder
	}
	return passPlaceholders[n-1]
}

// Player is the state of the audio element
type Player struct {
	Source   string  `json:"source"`
	Playing  bool    `json:"playing"`
	Position float64 `json:"position"`
	Restarts int     `json:"restarts"`
}

// restart rewinds and plays; it reports false when nothing is loaded
func (p *Player) restart() bool {
	if p.Source == "" {
		return false
	}
	p.Position = 0
	p.Playing = true
	p.Restarts++
	return true
}

// Session is one learner's dictation exercise
type Session struct {
	CurrentPass   int                 `json:"current_pass"`
	AudioFile     *models.AudioFile   `json:"audio_file"`
	Mode          Mode                `json:"mode"`
	UserText      string              `json:"user_text"`
	ReferenceText string              `json:"reference_text"`
	Placeholder   string              `json:"placeholder"`
	Enabled       [Passes]bool        `json:"enabled"`
	Badges        [Passes]BadgeState  `json:"badges"`
	Tabs          *navigation.TabSet  `json:"tabs"`
	Highlight     bool                `json:"highlight"`
	Player        Player              `json:"player"`
	Notice        string              `json:"notice,omitempty"`
	Comparison    *compare.Result     `json:"comparison,omitempty"`
	Summary       *ErrorSummary       `json:"summary,omitempty"`
	Paraphrases   []models.Paraphrase `json:"paraphrases"`
}

// New returns a session with nothing selected, pass 1 ready and standard mode
func New() *Session {
	s := &Session{
		Mode:        Standard,
		Tabs:        navigation.New(TabTranscription, TabTranscript, TabComparison, TabParaphrase),
		Paraphrases: []models.Paraphrase{},
	}
	s.resetPasses()
	return s
}

// Clone returns a deep copy safe to hand to another goroutine
func (s *Session) Clone() *Session {
	c := *s
	if s.AudioFile != nil {
		f := *s.AudioFile
		c.AudioFile = &f
	}
	c.Tabs = s.Tabs.Clone()
	if s.Comparison != nil {
		r := *s.Comparison
		r.Errors = append([]compare.Error(nil), s.Comparison.Errors...)
		c.Comparison = &r
	}
	if s.Summary != nil {
		sum := *s.Summary
		c.Summary = &sum
	}
	c.Paraphrases = append([]models.Paraphrase{}, s.Paraphrases...)
	return &c
}

// WordCount is the number of words typed so far
func (s *Session) WordCount() int {
	return writing.CountWords(s.UserText)
}

// ActiveTab is the visible sub-view
func (s *Session) ActiveTab() string {
	return s.Tabs.Active()
}

// ShowTab switches the visible sub-view
func (s *Session) ShowTab(id string) error {
	return s.Tabs.Activate(id)
}

func (s *Session) resetPasses() {
	s.CurrentPass = 1
	s.Enabled = [Passes]bool{true, false, false}
	s.Badges = [Passes]BadgeState{BadgeActive, BadgeNone, BadgeNone}
	s.Placeholder = resetPlaceholder
}

// SelectAudio loads file and resets the pass controls. Typed text is kept.
func (s *Session) SelectAudio(file models.AudioFile) {
	s.AudioFile = &file
	s.Player = Player{Source: "/audio/" + file.Path}
	s.resetPasses()
}

// StartPass moves to pass n, unlocks the next pass and replays from the start
func (s *Session) StartPass(n int) error {
	if n < 1 || n > Passes {
		return fmt.Errorf("%w: got %d", ErrInvalidPass, n)
	}
	if s.AudioFile == nil || s.Player.Source == "" {
		return ErrNoAudio
	}

	s.CurrentPass = n
	s.Placeholder = passPlaceholders[n-1]
	if n < Passes {
		s.Enabled[n] = true
	}
	s.updateBadges()
	s.Player.restart()
	return nil
}

func (s *Session) updateBadges() {
	for i := range s.Badges {
		switch {
		case i < s.CurrentPass-1:
			s.Badges[i] = BadgeCompleted
		case i == s.CurrentPass-1:
			s.Badges[i] = BadgeActive
		default:
			s.Badges[i] = BadgeNone
		}
	}
}

// Replay rewinds the current track
func (s *Session) Replay() error {
	if !s.Player.restart() {
		return ErrNoAudio
	}
	return nil
}

// SetMode switches the transcription mode
func (s *Session) SetMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, m)
	}
	s.Mode = m
	s.Notice = ""
	s.applyModePlaceholder()

	switch m {
	case Shadow:
		if s.Player.Source != "" {
			s.Player.Playing = true
		}
	case GapFill:
		s.PrepareGapFill()
	}
	return nil
}

func (s *Session) applyModePlaceholder() {
	switch s.Mode {
	case Shadow:
		s.Placeholder = shadowPlaceholder
	case Summary:
		s.Placeholder = summaryPlaceholder
	case GapFill:
		s.Placeholder = gapFillPlaceholder
	default:
		s.Placeholder = standardPlaceholder
	}
}

// PrepareGapFill copies a transcript with blanks into the answer field, or
// sends the learner to the transcript tab to write one.
func (s *Session) PrepareGapFill() {
	if strings.Contains(s.ReferenceText, gapMarker) {
		s.UserText = strings.ReplaceAll(s.ReferenceText, gapMarker, gapAnswerSlot)
		s.Highlight = true
		_ = s.Tabs.Activate(TabTranscription)
		return
	}
	s.Notice = GapFillNotice
	_ = s.Tabs.Activate(TabTranscript)
}

// UpdateText records what the learner has typed
func (s *Session) UpdateText(text string) {
	s.UserText = text
}

// LoadTranscript sets the reference transcript
func (s *Session) LoadTranscript(text string) {
	s.ReferenceText = text
}
