package testutil

import (
	"time"

	"github.com/luanbartole/kairos/internal/domain"
)

// Session options
type SessionOption func(*domain.Session)

func WithTag(tag string) SessionOption {
	return func(s *domain.Session) {
		s.Tag = tag
	}
}

func WithDate(d time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Date = domain.CalendarDate(d)
	}
}

// WithSpan sets start and end clock times and derives the duration.
func WithSpan(start, end string) SessionOption {
	return func(s *domain.Session) {
		s.Start = start
		s.End = end
		s.Duration = domain.FormatClockDuration(domain.MinutesBetween(start, end))
	}
}

// WithDuration overrides the derived duration string verbatim.
func WithDuration(d string) SessionOption {
	return func(s *domain.Session) {
		s.Duration = d
	}
}

// Running clears end and duration so the session looks in-progress.
func Running() SessionOption {
	return func(s *domain.Session) {
		s.End = ""
		s.Duration = ""
	}
}

// NewTestSession returns a completed one-hour "general" session dated
// 2025-06-16 (a Monday).
func NewTestSession(task string, opts ...SessionOption) domain.Session {
	s := domain.Session{
		Date:     "2025-06-16",
		Start:    "09:00",
		Task:     task,
		Tag:      domain.DefaultTag,
		End:      "10:00",
		Duration: "01:00",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MutableClock is a test clock whose time can be moved between calls.
type MutableClock struct {
	T time.Time
}

func (c *MutableClock) Now() time.Time { return c.T }

func (c *MutableClock) Advance(d time.Duration) { c.T = c.T.Add(d) }
