package writing

import (
	"sync"
	"time"
)

// Status is a snapshot of a Timer
type Status struct {
	Countdown
	Display string `json:"display"`
	Message string `json:"message,omitempty"`
}

// Timer drives a Countdown from a ticker goroutine
type Timer struct {
	mu       sync.Mutex
	cd       Countdown
	interval time.Duration
	stop     chan struct{}
	onExpire func()
}

// NewTimer creates a stopped timer of the given length. interval is the
// tick period and is one second in production.
func NewTimer(length, interval time.Duration, onExpire func()) *Timer {
	if interval <= 0 {
		interval = time.Second
	}
	return &Timer{
		cd:       NewCountdown(int(length / time.Second)),
		interval: interval,
		onExpire: onExpire,
	}
}

// Start begins ticking. It returns false and does nothing if the timer is
// already running or has expired without a reset.
func (t *Timer) Start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil || t.cd.Expired {
		return false
	}
	t.cd.Running = true
	t.stop = make(chan struct{})
	go t.run(t.stop)
	return true
}

// Stop cancels the ticker; stopping a stopped timer is a no-op. It reports
// whether the timer was running.
func (t *Timer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := t.cancel()
	t.cd.Running = false
	return was
}

// Reset cancels the ticker and restores the full duration. It reports
// whether the timer was running.
func (t *Timer) Reset() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := t.cancel()
	t.cd.Reset()
	return was
}

func (t *Timer) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Status{Countdown: t.cd, Display: t.cd.Display(), Message: t.cd.Message()}
}

// cancel must be called with mu held
func (t *Timer) cancel() bool {
	if t.stop == nil {
		return false
	}
	close(t.stop)
	t.stop = nil
	return true
}

func (t *Timer) run(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.stop != stop {
				t.mu.Unlock()
				return
			}
			expired := t.cd.Tick()
			if expired {
				t.cancel()
			}
			t.mu.Unlock()

			if expired {
				if t.onExpire != nil {
					t.onExpire()
				}
				return
			}
		}
	}
}
