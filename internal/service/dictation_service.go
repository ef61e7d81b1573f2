package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"lingolab/internal/compare"
	"lingolab/internal/dictation"
	"lingolab/internal/models"
	"lingolab/internal/observe"
)

// ProgressStore persists one payload per learner and slot
type ProgressStore interface {
	Load(ctx context.Context, learnerID, slot string) ([]byte, error)
	Save(ctx context.Context, learnerID, slot string, payload []byte, at time.Time) error
}

// DictationService owns each learner's dictation session. Sessions are
// restored from the progress store on first use and autosaved whenever the
// learner types or changes mode.
type DictationService struct {
	store   ProgressStore
	metrics *observe.Metrics
	rng     dictation.Rand
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*learnerSession
}

type learnerSession struct {
	restore sync.Once
	// lastSeen is unix nanoseconds so Evict never waits on a busy session
	lastSeen atomic.Int64

	mu      sync.Mutex
	session *dictation.Session
}

func (ls *learnerSession) touch(at time.Time) { ls.lastSeen.Store(at.UnixNano()) }

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// NewDictationService creates a new dictation service
func NewDictationService(store ProgressStore, metrics *observe.Metrics) *DictationService {
	return &DictationService{
		store:    store,
		metrics:  metrics,
		rng:      globalRand{},
		now:      time.Now,
		sessions: make(map[string]*learnerSession),
	}
}

// Session returns a copy of the learner's current session
func (s *DictationService) Session(ctx context.Context, learnerID string) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, false, func(*dictation.Session) error { return nil })
}

func (s *DictationService) SelectAudio(ctx context.Context, learnerID string, file models.AudioFile) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, false, func(sess *dictation.Session) error {
		sess.SelectAudio(file)
		return nil
	})
}

func (s *DictationService) StartPass(ctx context.Context, learnerID string, n int) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, false, func(sess *dictation.Session) error {
		return sess.StartPass(n)
	})
}

func (s *DictationService) Replay(ctx context.Context, learnerID string) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, false, func(sess *dictation.Session) error {
		return sess.Replay()
	})
}

func (s *DictationService) SetMode(ctx context.Context, learnerID string, mode dictation.Mode) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, true, func(sess *dictation.Session) error {
		return sess.SetMode(mode)
	})
}

func (s *DictationService) UpdateText(ctx context.Context, learnerID, text string) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, true, func(sess *dictation.Session) error {
		sess.UpdateText(text)
		return nil
	})
}

func (s *DictationService) LoadTranscript(ctx context.Context, learnerID, text string) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, false, func(sess *dictation.Session) error {
		sess.LoadTranscript(text)
		return nil
	})
}

// GenerateGapFill blanks random words of the reference transcript
func (s *DictationService) GenerateGapFill(ctx context.Context, learnerID string) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, false, func(sess *dictation.Session) error {
		return sess.GenerateGapFill(s.rng)
	})
}

func (s *DictationService) ShowTab(ctx context.Context, learnerID, tab string) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, false, func(sess *dictation.Session) error {
		return sess.ShowTab(tab)
	})
}

// CompareSession diffs the learner's transcription against their reference
func (s *DictationService) CompareSession(ctx context.Context, learnerID string) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, false, func(sess *dictation.Session) error {
		result, err := sess.Compare()
		if err != nil {
			return err
		}
		s.recordComparison(ctx, "dictation", *result)
		return nil
	})
}

// Compare runs the engine on arbitrary texts without touching any session
func (s *DictationService) Compare(ctx context.Context, user, reference string) (compare.Result, error) {
	if err := dictation.ValidateComparison(user, reference); err != nil {
		return compare.Result{}, err
	}
	result := compare.Compare(user, reference)
	s.recordComparison(ctx, "api", result)
	return result, nil
}

func (s *DictationService) SaveParaphrase(ctx context.Context, learnerID, text string) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, false, func(sess *dictation.Session) error {
		sess.SaveParaphrase(text, s.now())
		return nil
	})
}

func (s *DictationService) DeleteParaphrase(ctx context.Context, learnerID string, index int) (*dictation.Session, error) {
	return s.apply(ctx, learnerID, false, func(sess *dictation.Session) error {
		return sess.DeleteParaphrase(index)
	})
}

// Evict drops sessions untouched for longer than idle. Their last autosave
// stays in the store.
func (s *DictationService) Evict(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, ls := range s.sessions {
		if ls.lastSeen.Load() < cutoff.UnixNano() {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 && s.metrics != nil {
		s.metrics.ActiveDictationSessions.Add(context.Background(), int64(-removed))
	}
	return removed
}

// apply runs fn against the learner's session under its lock. A failing fn
// leaves the session as it was.
func (s *DictationService) apply(ctx context.Context, learnerID string, autosave bool, fn func(*dictation.Session) error) (*dictation.Session, error) {
	ls := s.lookup(ctx, learnerID)

	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.touch(s.now())

	work := ls.session.Clone()
	if err := fn(work); err != nil {
		return ls.session.Clone(), err
	}
	ls.session = work

	if autosave {
		s.save(ctx, learnerID, work)
	}
	return work.Clone(), nil
}

// lookup returns the learner's entry, restoring it from the store on first
// use. The map lock is released before the restore so other learners never
// wait on it; concurrent first requests for one learner wait in restore.Do.
func (s *DictationService) lookup(ctx context.Context, learnerID string) *learnerSession {
	s.mu.Lock()
	ls, ok := s.sessions[learnerID]
	if !ok {
		ls = &learnerSession{}
		ls.touch(s.now())
		s.sessions[learnerID] = ls
	}
	s.mu.Unlock()

	ls.restore.Do(func() {
		sess := s.restoreSession(ctx, learnerID)
		ls.mu.Lock()
		ls.session = sess
		ls.mu.Unlock()
		if s.metrics != nil {
			s.metrics.ActiveDictationSessions.Add(ctx, 1)
		}
	})
	return ls
}

func (s *DictationService) restoreSession(ctx context.Context, learnerID string) *dictation.Session {
	raw, err := s.store.Load(ctx, learnerID, dictation.ProgressSlot)
	if err != nil {
		observe.Logger(ctx).Warn("failed to load dictation progress", "learner", learnerID, "err", err)
		return dictation.New()
	}
	sess, err := dictation.Restore(raw)
	if err != nil {
		observe.Logger(ctx).Warn("ignoring malformed dictation progress", "learner", learnerID, "err", err)
	}
	return sess
}

func (s *DictationService) save(ctx context.Context, learnerID string, sess *dictation.Session) {
	now := s.now()
	payload, err := sess.Snapshot(now).Encode()
	if err == nil {
		err = s.store.Save(ctx, learnerID, dictation.ProgressSlot, payload, now)
	}

	status := "ok"
	if err != nil {
		status = "error"
		observe.Logger(ctx).Error("failed to autosave dictation progress", "learner", learnerID, "err", err)
	}
	if s.metrics != nil {
		s.metrics.RecordProgressSave(ctx, status)
	}
}

func (s *DictationService) recordComparison(ctx context.Context, source string, result compare.Result) {
	if s.metrics == nil {
		return
	}
	sum := dictation.Tally(result.Errors)
	s.metrics.RecordComparison(ctx, source, result.Accuracy, map[string]int{
		string(compare.Grammar):    sum.Grammar,
		string(compare.Spelling):   sum.Spelling,
		string(compare.Listening):  sum.Listening,
		string(compare.Vocabulary): sum.Vocabulary,
	})
	slog.DebugContext(ctx, "transcript compared", "source", source, "accuracy", result.Accuracy, "errors", sum.Total)
}
