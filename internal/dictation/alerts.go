package dictation

import "errors"

// Alert returns the message shown to the learner for err, falling back to
// err's own text.
func Alert(err error) string {
	switch {
	case errors.Is(err, ErrEmptyTranscript):
		return "Please first enter or load a transcript."
	case errors.Is(err, ErrMissingTranscripts):
		return "Please provide both your transcription and the reference transcript."
	case errors.Is(err, ErrNoAudio):
		return "Please select an audio file first."
	}
	return err.Error()
}
