// Package quiz scores the reading comprehension quiz.
package quiz

import (
	"fmt"
	"strings"
)

// Question identifiers in display order
var Questions = []string{"q1", "q2", "q3", "q4a", "q4b", "q4c", "q5"}

// AnswerKey holds the expected answer per question
var AnswerKey = map[string]string{
	"q1":  "C",
	"q2":  "False",
	"q3":  "equal number",
	"q4a": "B",
	"q4b": "C",
	"q4c": "A",
	"q5":  "24",
}

// q3 is free text; the rest are choices and must match exactly
var lenient = map[string]bool{"q3": true}

// Result is a scored submission
type Result struct {
	Score   int             `json:"score"`
	Total   int             `json:"total"`
	Correct map[string]bool `json:"correct"`
	Message string          `json:"message"`
}

// Score marks answers against the key. Missing answers are wrong.
func Score(answers map[string]string) Result {
	r := Result{Total: len(Questions), Correct: make(map[string]bool, len(Questions))}
	for _, q := range Questions {
		got := answers[q]
		if lenient[q] {
			got = strings.ToLower(strings.TrimSpace(got))
		}
		ok := got == AnswerKey[q]
		r.Correct[q] = ok
		if ok {
			r.Score++
		}
	}
	r.Message = fmt.Sprintf("You scored %d/%d", r.Score, r.Total)
	return r
}
