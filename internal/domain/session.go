package domain

import (
	"strings"
	"time"
)

// DefaultTag is applied when a session is started without a tag.
const DefaultTag = "general"

// Session is one work interval. End and Duration stay empty while the
// session is running; both are set when it is stopped and appended to the log.
//
// Field order matches the persisted record and the CSV export header.
type Session struct {
	Date     string `json:"date"`
	Start    string `json:"start"`
	Task     string `json:"task"`
	Tag      string `json:"tag"`
	End      string `json:"end,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// NewSession creates an in-progress session stamped with the date and clock
// time of now. The tag is normalized with NormalizeTag.
func NewSession(task, tag, fallbackTag string, now time.Time) *Session {
	return &Session{
		Date:  CalendarDate(now),
		Start: ClockTime(now),
		Task:  task,
		Tag:   NormalizeTag(tag, fallbackTag),
	}
}

// Completed reports whether the session has been stopped.
func (s *Session) Completed() bool {
	return s.End != "" && s.Duration != ""
}

// Finish sets the end time and derived duration. Spans crossing midnight
// are not handled and produce a negative duration.
func (s *Session) Finish(now time.Time) {
	s.End = ClockTime(now)
	s.Duration = FormatClockDuration(MinutesBetween(s.Start, s.End))
}

// Fields returns the keys this record persists, in order. End and Duration
// are left out while empty, as in the JSON encoding.
func (s Session) Fields() []string {
	fields := []string{"date", "start", "task", "tag"}
	if s.End != "" {
		fields = append(fields, "end")
	}
	if s.Duration != "" {
		fields = append(fields, "duration")
	}
	return fields
}

// Values returns the record's values for the given field names. Unknown
// names yield empty strings.
func (s Session) Values(fields []string) []string {
	values := make([]string, len(fields))
	for i, f := range fields {
		switch f {
		case "date":
			values[i] = s.Date
		case "start":
			values[i] = s.Start
		case "task":
			values[i] = s.Task
		case "tag":
			values[i] = s.Tag
		case "end":
			values[i] = s.End
		case "duration":
			values[i] = s.Duration
		}
	}
	return values
}

// NormalizeTag lowercases and trims tag, falling back to fallback (and then
// DefaultTag) when it is blank.
func NormalizeTag(tag, fallback string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag != "" {
		return tag
	}
	return strings.ToLower(CoalesceStr(strings.TrimSpace(fallback), DefaultTag))
}
