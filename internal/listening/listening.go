// Package listening generates the answer sheet for a listening track and
// grades it against answers the learner types in from the answer key.
package listening

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lingolab/internal/models"
)

// ErrNoQuestion is returned when a question number is not on the sheet
var ErrNoQuestion = errors.New("question not on this sheet")

const (
	questionsPerSection = 10
	questionsPerTest    = 40
)

// Mark is the border colour an answer box gets after grading
type Mark string

const (
	Unmarked Mark = ""
	Green    Mark = "green"
	Red      Mark = "red"
)

// Question is one numbered answer slot
type Question struct {
	Number        int    `json:"number"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	UserMark      Mark   `json:"user_mark,omitempty"`
	CorrectMark   Mark   `json:"correct_mark,omitempty"`
}

// QuestionRange maps a section label to its question numbers. Sections 1-4
// get ten questions each; anything else covers the whole test.
func QuestionRange(section string) (start, end int) {
	n, err := strconv.Atoi(strings.TrimSpace(section))
	if err != nil || n < 1 {
		return 1, questionsPerTest
	}
	return (n-1)*questionsPerSection + 1, n * questionsPerSection
}

// GenerateQuestions returns blank questions for section
func GenerateQuestions(section string) []Question {
	start, end := QuestionRange(section)
	qs := make([]Question, 0, end-start+1)
	for i := start; i <= end; i++ {
		qs = append(qs, Question{Number: i})
	}
	return qs
}

// Result is the outcome of grading a sheet
type Result struct {
	Score     int        `json:"score"`
	Total     int        `json:"total"`
	Message   string     `json:"message"`
	Questions []Question `json:"questions"`
}

// Grade scores each question with a trimmed, case-insensitive comparison.
// Blank answers on either side never match.
func Grade(qs []Question) Result {
	graded := make([]Question, len(qs))
	score := 0
	for i, q := range qs {
		u := strings.ToLower(strings.TrimSpace(q.UserAnswer))
		c := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
		q.UserMark, q.CorrectMark = Red, Unmarked
		if u != "" && c != "" && u == c {
			score++
			q.UserMark, q.CorrectMark = Green, Green
		}
		graded[i] = q
	}
	return Result{
		Score:     score,
		Total:     len(qs),
		Message:   fmt.Sprintf("You scored %d out of %d!", score, len(qs)),
		Questions: graded,
	}
}

// Sheet is the listening page for one track
type Sheet struct {
	TrackName  string     `json:"track_name"`
	Source     string     `json:"source"`
	Playing    bool       `json:"playing"`
	Questions  []Question `json:"questions"`
	Evaluating bool       `json:"evaluating"`
	Result     *Result    `json:"result,omitempty"`
}

// Select loads file and starts a fresh sheet, discarding earlier answers
func (s *Sheet) Select(file models.AudioFile) {
	*s = Sheet{
		TrackName: file.Name,
		Source:    "/audio/" + file.Path,
		Playing:   true,
		Questions: GenerateQuestions(file.Section),
	}
}

// BeginEvaluation locks the learner's answers and opens the answer key inputs
func (s *Sheet) BeginEvaluation() {
	s.Evaluating = true
}

func (s *Sheet) SetUserAnswer(number int, answer string) error {
	if s.Evaluating {
		return fmt.Errorf("question %d: answers are locked during evaluation", number)
	}
	q, err := s.question(number)
	if err != nil {
		return err
	}
	q.UserAnswer = answer
	return nil
}

func (s *Sheet) SetCorrectAnswer(number int, answer string) error {
	q, err := s.question(number)
	if err != nil {
		return err
	}
	q.CorrectAnswer = answer
	return nil
}

// Grade scores the sheet and records marks on each question
func (s *Sheet) Grade() Result {
	r := Grade(s.Questions)
	s.Questions = r.Questions
	s.Result = &r
	return r
}

func (s *Sheet) question(number int) (*Question, error) {
	for i := range s.Questions {
		if s.Questions[i].Number == number {
			return &s.Questions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrNoQuestion, number)
}
