package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// CalendarDate formats t as YYYY-MM-DD.
func CalendarDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ClockTime formats t as HH:MM on a 24-hour clock.
func ClockTime(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseDate parses a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// MinutesBetween returns the whole minutes from start to end, both HH:MM
// clock times on the same day. Unparseable input yields 0.
func MinutesBetween(start, end string) int {
	s, err := time.Parse(ClockLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(ClockLayout, end)
	if err != nil {
		return 0
	}
	return int(e.Sub(s) / time.Minute)
}

// FormatClockDuration renders minutes as zero-padded HH:MM. Negative spans
// keep a leading minus sign.
func FormatClockDuration(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// ParseClockDuration converts an HH:MM duration into minutes. Anything that
// is not a non-negative HH:MM value counts as 0. That includes the negative
// durations FormatClockDuration writes for a session stopped after midnight
// (23:45 to 00:15 is stored as "-23:30"), so such sessions add nothing to
// summary totals.
func ParseClockDuration(s string) int {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || strings.HasPrefix(h, "-") {
		return 0
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 {
		return 0
	}
	return hours*60 + mins
}

// FormatMinutes converts raw minutes into "1h 30m" style. Zero (or less)
// renders as the empty string so blank summary cells stay blank.
func FormatMinutes(min int) string {
	if min <= 0 {
		return ""
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
