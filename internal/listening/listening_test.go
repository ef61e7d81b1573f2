package listening

import (
	"errors"
	"testing"

	"lingolab/internal/models"
)

func TestGenerateQuestions(t *testing.T) {
	tests := []struct {
		section    string
		first, len int
	}{
		{"1", 1, 10},
		{"2", 11, 10},
		{"3", 21, 10},
		{"4", 31, 10},
		{"All", 1, 40},
		{"abc", 1, 40},
		{"0", 1, 40},
		{"-2", 1, 40},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			qs := GenerateQuestions(tt.section)
			if len(qs) != tt.len {
				t.Fatalf("len = %d, want %d", len(qs), tt.len)
			}
			for i, q := range qs {
				if q.Number != tt.first+i {
					t.Errorf("qs[%d].Number = %d, want %d", i, q.Number, tt.first+i)
				}
				if q.UserAnswer != "" || q.CorrectAnswer != "" {
					t.Errorf("question %d should start blank", q.Number)
				}
			}
		})
	}
}

func TestGrade(t *testing.T) {
	qs := []Question{
		{Number: 1, UserAnswer: " Paris ", CorrectAnswer: "paris"},
		{Number: 2, UserAnswer: "", CorrectAnswer: ""},
		{Number: 3, UserAnswer: "London", CorrectAnswer: "Leeds"},
		{Number: 4, UserAnswer: "x", CorrectAnswer: ""},
	}

	r := Grade(qs)
	if r.Score != 1 || r.Total != 4 {
		t.Fatalf("score = %d/%d, want 1/4", r.Score, r.Total)
	}
	if r.Message != "You scored 1 out of 4!" {
		t.Errorf("Message = %q", r.Message)
	}

	wantMarks := [][2]Mark{{Green, Green}, {Red, Unmarked}, {Red, Unmarked}, {Red, Unmarked}}
	for i, q := range r.Questions {
		if q.UserMark != wantMarks[i][0] || q.CorrectMark != wantMarks[i][1] {
			t.Errorf("question %d marks = %q/%q, want %q/%q", q.Number, q.UserMark, q.CorrectMark, wantMarks[i][0], wantMarks[i][1])
		}
	}
}

func TestSheetFlow(t *testing.T) {
	var s Sheet
	s.Select(models.AudioFile{Name: "IELTS 10 Test 1 Section 2.mp3", Section: "2", Path: "x/y.mp3"})

	if s.TrackName != "IELTS 10 Test 1 Section 2.mp3" || s.Source != "/audio/x/y.mp3" || !s.Playing {
		t.Errorf("unexpected sheet %+v", s)
	}
	if len(s.Questions) != 10 || s.Questions[0].Number != 11 {
		t.Fatalf("questions = %+v", s.Questions)
	}

	if err := s.SetUserAnswer(11, "Paris"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetUserAnswer(1, "nope"); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("expected ErrNoQuestion, got %v", err)
	}

	s.BeginEvaluation()
	if err := s.SetUserAnswer(12, "late"); err == nil {
		t.Error("answers should be locked during evaluation")
	}
	if err := s.SetCorrectAnswer(11, "paris "); err != nil {
		t.Fatal(err)
	}

	r := s.Grade()
	if r.Score != 1 || r.Total != 10 || s.Result == nil {
		t.Errorf("result = %+v", r)
	}

	s.Select(models.AudioFile{Name: "other.mp3", Section: "All"})
	if len(s.Questions) != 40 || s.Questions[10].UserAnswer != "" || s.Evaluating || s.Result != nil {
		t.Error("selecting a new track must discard the old sheet")
	}
}
