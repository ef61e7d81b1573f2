package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"sync"
	"time"

	"lingolab/internal/observe"
	"lingolab/internal/writing"
)

var ErrEmptyEssay = errors.New("essay is empty")

// Mailer delivers a message to one recipient
type Mailer interface {
	IsEnabled() bool
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// Submission is the receipt returned for a submitted essay
type Submission struct {
	Words       int       `json:"words"`
	SubmittedAt time.Time `json:"submitted_at"`
	Emailed     bool      `json:"emailed"`
}

// WritingService keeps one countdown per learner and forwards finished
// essays to a reviewer.
type WritingService struct {
	duration time.Duration
	interval time.Duration
	mailer   Mailer
	reviewer string
	metrics  *observe.Metrics
	now      func() time.Time

	mu     sync.Mutex
	timers map[string]*learnerTimer
}

type learnerTimer struct {
	timer    *writing.Timer
	lastSeen time.Time
}

// NewWritingService creates a writing service. mailer may be nil, in which
// case submissions are only logged.
func NewWritingService(duration time.Duration, mailer Mailer, reviewer string, metrics *observe.Metrics) *WritingService {
	return &WritingService{
		duration: duration,
		interval: time.Second,
		mailer:   mailer,
		reviewer: reviewer,
		metrics:  metrics,
		now:      time.Now,
		timers:   make(map[string]*learnerTimer),
	}
}

func (s *WritingService) timer(learnerID string) *writing.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	lt, ok := s.timers[learnerID]
	if !ok {
		lt = &learnerTimer{timer: writing.NewTimer(s.duration, s.interval, func() {
			s.running(-1)
			slog.Info("writing time is up", "learner", learnerID)
		})}
		s.timers[learnerID] = lt
	}
	lt.lastSeen = s.now()
	return lt.timer
}

func (s *WritingService) running(delta int64) {
	if s.metrics != nil {
		s.metrics.RunningWritingTimers.Add(context.Background(), delta)
	}
}

// Status returns the learner's countdown
func (s *WritingService) Status(learnerID string) writing.Status {
	return s.timer(learnerID).Status()
}

// Start begins the countdown; starting a running timer changes nothing
func (s *WritingService) Start(learnerID string) writing.Status {
	t := s.timer(learnerID)
	if t.Start() {
		s.running(1)
	}
	return t.Status()
}

// Reset stops the countdown and restores the full duration
func (s *WritingService) Reset(learnerID string) writing.Status {
	t := s.timer(learnerID)
	if t.Reset() {
		s.running(-1)
	}
	return t.Status()
}

// StopAll cancels every running countdown
func (s *WritingService) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, lt := range s.timers {
		if lt.timer.Stop() {
			s.running(-1)
		}
	}
}

// Evict stops and drops timers untouched for longer than idle
func (s *WritingService) Evict(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, lt := range s.timers {
		if !lt.lastSeen.Before(cutoff) {
			continue
		}
		if lt.timer.Stop() {
			s.running(-1)
		}
		delete(s.timers, id)
		removed++
	}
	return removed
}

// Submit counts the essay and e-mails it to the reviewer when mail is set up
func (s *WritingService) Submit(ctx context.Context, learnerID, essay string) (Submission, error) {
	if strings.TrimSpace(essay) == "" {
		return Submission{}, ErrEmptyEssay
	}
	sub := Submission{
		Words:       writing.CountWords(essay),
		SubmittedAt: s.now().UTC(),
	}

	if s.mailer == nil || !s.mailer.IsEnabled() || s.reviewer == "" {
		observe.Logger(ctx).Info("essay submitted", "learner", learnerID, "words", sub.Words, "emailed", false)
		return sub, nil
	}

	subject := fmt.Sprintf("Writing task submission (%d words)", sub.Words)
	textBody := fmt.Sprintf("Learner: %s\nSubmitted: %s\nWords: %d\n\n%s\n",
		learnerID, sub.SubmittedAt.Format(time.RFC1123), sub.Words, essay)
	htmlBody := fmt.Sprintf("<p><strong>Learner:</strong> %s<br><strong>Submitted:</strong> %s<br><strong>Words:</strong> %d</p><pre style=\"white-space: pre-wrap\">%s</pre>",
		html.EscapeString(learnerID), sub.SubmittedAt.Format(time.RFC1123), sub.Words, html.EscapeString(essay))

	if err := s.mailer.Send(ctx, s.reviewer, subject, htmlBody, textBody); err != nil {
		return Submission{}, fmt.Errorf("failed to send essay: %w", err)
	}
	sub.Emailed = true
	observe.Logger(ctx).Info("essay submitted", "learner", learnerID, "words", sub.Words, "emailed", true)
	return sub, nil
}
