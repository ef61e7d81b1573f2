package dictation

import (
	"fmt"
	"strings"
	"time"

	"lingolab/internal/models"
)

const paraphraseDateLayout = "1/2/2006, 3:04:05 PM"

// SaveParaphrase appends text to the paraphrase list. Blank text is ignored.
func (s *Session) SaveParaphrase(text string, now time.Time) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	audio := "Unknown"
	if s.AudioFile != nil {
		audio = s.AudioFile.Name
	}
	s.Paraphrases = append(s.Paraphrases, models.Paraphrase{
		Text:  text,
		Date:  now.Format(paraphraseDateLayout),
		Audio: audio,
	})
	return true
}

// DeleteParaphrase removes the paraphrase at index i
func (s *Session) DeleteParaphrase(i int) error {
	if i < 0 || i >= len(s.Paraphrases) {
		return fmt.Errorf("%w: %d", ErrNoParaphrase, i)
	}
	s.Paraphrases = append(s.Paraphrases[:i], s.Paraphrases[i+1:]...)
	return nil
}
