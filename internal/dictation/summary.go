package dictation

import (
	"strings"

	"lingolab/internal/compare"
)

// ErrorSummary counts comparison errors per category
type ErrorSummary struct {
	Total      int `json:"total"`
	Grammar    int `json:"grammar"`
	Spelling   int `json:"spelling"`
	Listening  int `json:"listening"`
	Vocabulary int `json:"vocabulary"`
}

// Tally counts errs by category. Unknown categories add to Total only.
func Tally(errs []compare.Error) ErrorSummary {
	sum := ErrorSummary{Total: len(errs)}
	for _, e := range errs {
		switch e.Category {
		case compare.Grammar:
			sum.Grammar++
		case compare.Spelling:
			sum.Spelling++
		case compare.Listening:
			sum.Listening++
		case compare.Vocabulary:
			sum.Vocabulary++
		}
	}
	return sum
}

// ValidateComparison rejects a comparison when either side is blank
func ValidateComparison(user, reference string) error {
	if strings.TrimSpace(user) == "" || strings.TrimSpace(reference) == "" {
		return ErrMissingTranscripts
	}
	return nil
}

// Compare diffs the session's own transcription against its reference
func (s *Session) Compare() (*compare.Result, error) {
	if err := ValidateComparison(s.UserText, s.ReferenceText); err != nil {
		return nil, err
	}
	result := compare.Compare(s.UserText, s.ReferenceText)
	s.ApplyComparison(result)
	return &result, nil
}

// ApplyComparison stores a result and shows the comparison tab
func (s *Session) ApplyComparison(result compare.Result) {
	summary := Tally(result.Errors)
	s.Comparison = &result
	s.Summary = &summary
	_ = s.Tabs.Activate(TabComparison)
}
