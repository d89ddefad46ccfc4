package service

import (
	"context"
	"time"

	"github.com/luanbartole/kairos/internal/domain"
)

// Weekdays are the weekly summary columns, Monday first.
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DailyRow is one session in today's summary.
type DailyRow struct {
	TimeRange string
	Duration  string
	Tag       string
	Task      string
}

type DailySummary struct {
	Date     string
	Rows     []DailyRow
	TotalMin int
}

// WeeklyRow holds minutes per weekday for one tag.
type WeeklyRow struct {
	Tag     string
	Minutes [7]int
}

// Cells formats each weekday's minutes; days with no time are blank.
func (r WeeklyRow) Cells() []string {
	cells := make([]string, len(r.Minutes))
	for i, m := range r.Minutes {
		cells[i] = domain.FormatMinutes(m)
	}
	return cells
}

func (r WeeklyRow) Total() int {
	total := 0
	for _, m := range r.Minutes {
		total += m
	}
	return total
}

type WeeklySummary struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Rows      []WeeklyRow
}

// Totals sums every tag per weekday.
func (w *WeeklySummary) Totals() WeeklyRow {
	totals := WeeklyRow{Tag: "total"}
	for _, row := range w.Rows {
		for i, m := range row.Minutes {
			totals.Minutes[i] += m
		}
	}
	return totals
}

type summaryService struct {
	sessions SessionSource
	now      Clock
	observer UseCaseObserver
}

func NewSummaryService(sessions SessionSource, clock Clock, observers ...UseCaseObserver) SummaryService {
	return &summaryService{
		sessions: sessions,
		now:      clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Today lists today's sessions in log order, or domain.ErrNoData.
func (s *summaryService) Today(ctx context.Context) (summary *DailySummary, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "summary-today", time.Now(), fields, &err)

	all, err := s.sessions.Sessions(ctx)
	if err != nil {
		return nil, err
	}

	today := domain.CalendarDate(s.now())
	summary = &DailySummary{Date: today}
	for _, session := range all {
		if session.Date != today {
			continue
		}
		summary.Rows = append(summary.Rows, DailyRow{
			TimeRange: session.Start + "-" + domain.CoalesceStr(session.End, "??"),
			Duration:  domain.CoalesceStr(session.Duration, "--:--"),
			Tag:       domain.CoalesceStr(session.Tag, "-"),
			Task:      session.Task,
		})
		summary.TotalMin += domain.ParseClockDuration(session.Duration)
	}
	fields["sessions"] = len(summary.Rows)

	if len(summary.Rows) == 0 {
		return nil, domain.ErrNoData
	}
	return summary, nil
}

// Weekly groups this week's sessions (Monday through Sunday, inclusive) by
// tag in first-seen order, then by weekday. Returns domain.ErrNoData when
// the week is empty.
func (s *summaryService) Weekly(ctx context.Context) (summary *WeeklySummary, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "summary-week", time.Now(), fields, &err)

	all, err := s.sessions.Sessions(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	weekStart := startOfDay(now).AddDate(0, 0, -weekdayIndex(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)
	summary = &WeeklySummary{WeekStart: weekStart, WeekEnd: weekEnd}

	rowByTag := make(map[string]int)
	matched := 0
	for _, session := range all {
		date, parseErr := domain.ParseDate(session.Date, now.Location())
		if parseErr != nil || date.Before(weekStart) || date.After(weekEnd) {
			continue
		}
		matched++

		tag := domain.CoalesceStr(session.Tag, domain.DefaultTag)
		idx, ok := rowByTag[tag]
		if !ok {
			idx = len(summary.Rows)
			rowByTag[tag] = idx
			summary.Rows = append(summary.Rows, WeeklyRow{Tag: tag})
		}
		summary.Rows[idx].Minutes[weekdayIndex(date.Weekday())] += domain.ParseClockDuration(session.Duration)
	}
	fields["sessions"] = matched
	fields["tags"] = len(summary.Rows)

	if matched == 0 {
		return nil, domain.ErrNoData
	}
	return summary, nil
}
