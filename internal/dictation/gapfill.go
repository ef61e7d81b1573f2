package dictation

import (
	"regexp"
	"strings"
)

// GapProbability is the chance that an eligible word becomes a blank
const GapProbability = 0.2

var punctuationOnly = regexp.MustCompile(`^[.,!?;:]+$`)

// Rand is the random source used for gap selection
type Rand interface {
	Float64() float64
}

// GenerateGapFill blanks out roughly one in five words longer than two
// characters. Each call draws afresh, so the same text can yield different
// templates, including one with no gaps at all.
func GenerateGapFill(text string, rng Rand) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyTranscript
	}

	words := strings.Fields(text)
	for i, w := range words {
		if len(w) > 2 && !punctuationOnly.MatchString(w) && rng.Float64() < GapProbability {
			words[i] = gapMarker
		}
	}
	return strings.Join(words, " "), nil
}

// GenerateGapFill replaces the reference transcript with a gap-fill template
func (s *Session) GenerateGapFill(rng Rand) error {
	template, err := GenerateGapFill(s.ReferenceText, rng)
	if err != nil {
		return err
	}
	s.ReferenceText = template
	return nil
}
