package dictation

import (
	"encoding/json"
	"fmt"
	"time"

	"lingolab/internal/models"
)

// ProgressSlot is the fixed name the saved session lives under
const ProgressSlot = "dictation_progress"

// Progress is the saved subset of a session
type Progress struct {
	CurrentPass int               `json:"currentPass"`
	UserText    string            `json:"userText"`
	AudioFile   *models.AudioFile `json:"audioFile"`
	Mode        Mode              `json:"mode"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Snapshot captures what autosave stores
func (s *Session) Snapshot(now time.Time) Progress {
	var file *models.AudioFile
	if s.AudioFile != nil {
		f := *s.AudioFile
		file = &f
	}
	return Progress{
		CurrentPass: s.CurrentPass,
		UserText:    s.UserText,
		AudioFile:   file,
		Mode:        s.Mode,
		Timestamp:   now.UTC(),
	}
}

// Encode serialises the snapshot for storage
func (p Progress) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// DecodeProgress parses a stored record
func DecodeProgress(raw []byte) (Progress, error) {
	var p Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		return Progress{}, fmt.Errorf("decode dictation progress: %w", err)
	}
	return p, nil
}

// Restore builds a session from a saved record. A nil or malformed record
// yields a fresh session along with the decode error, which callers log and
// otherwise ignore.
func Restore(raw []byte) (*Session, error) {
	s := New()
	if len(raw) == 0 {
		return s, nil
	}
	p, err := DecodeProgress(raw)
	if err != nil {
		return s, err
	}
	s.apply(p)
	return s, nil
}

func (s *Session) apply(p Progress) {
	if p.AudioFile != nil {
		s.SelectAudio(*p.AudioFile)
	}

	s.CurrentPass = p.CurrentPass
	if s.CurrentPass < 1 || s.CurrentPass > Passes {
		s.CurrentPass = 1
	}
	for i := 0; i < s.CurrentPass; i++ {
		s.Enabled[i] = true
	}
	s.updateBadges()

	if p.UserText != "" {
		s.UserText = p.UserText
	}
	if p.Mode.Valid() {
		s.Mode = p.Mode
		s.applyModePlaceholder()
	}
}
