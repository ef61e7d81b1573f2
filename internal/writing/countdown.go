package writing

import "fmt"

// DefaultSeconds is the length of a writing task
const DefaultSeconds = 3600

// TimeUpMessage is shown once the countdown has run out
const TimeUpMessage = "Time is up!"

// Countdown is the pure state of the writing timer
type Countdown struct {
	Total     int  `json:"total"`
	Remaining int  `json:"remaining"`
	Running   bool `json:"running"`
	Expired   bool `json:"expired"`
}

// NewCountdown returns a stopped countdown of seconds length
func NewCountdown(seconds int) Countdown {
	if seconds <= 0 {
		seconds = DefaultSeconds
	}
	return Countdown{Total: seconds, Remaining: seconds}
}

// Tick advances the countdown by one second. Once nothing remains the next
// tick stops it and reports expiry.
func (c *Countdown) Tick() (expired bool) {
	if !c.Running {
		return false
	}
	if c.Remaining > 0 {
		c.Remaining--
		return false
	}
	c.Running = false
	c.Expired = true
	return true
}

// Reset restores the full duration and stops the countdown
func (c *Countdown) Reset() {
	c.Remaining = c.Total
	c.Running = false
	c.Expired = false
}

// Display renders the remaining time as MM:SS
func (c Countdown) Display() string {
	return fmt.Sprintf("%02d:%02d", c.Remaining/60, c.Remaining%60)
}

// Message is the notice to show the writer, if any
func (c Countdown) Message() string {
	if c.Expired {
		return TimeUpMessage
	}
	return ""
}
