package formatter

import (
	"fmt"
	"strings"

	"github.com/luanbartole/kairos/internal/domain"
	"github.com/luanbartole/kairos/internal/service"
)

// FormatDailySummary renders today's sessions, one row each, in log order.
func FormatDailySummary(s *service.DailySummary) string {
	headers := []string{"TIME", "DURATION", "TAG", "TASK"}
	rows := make([][]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, []string{
			StyleBlue.Render(r.TimeRange),
			StyleYellow.Render(r.Duration),
			TagBadge(r.Tag),
			StyleGreen.Render(r.Task),
		})
	}
	footer := []string{"Total", MinutesOrDash(s.TotalMin), "", fmt.Sprintf("%d sessions", len(s.Rows))}

	return RenderBox("Daily Summary - "+s.Date, RenderTableWithFooter(headers, rows, footer))
}

// FormatWeeklySummary renders one row per tag and one column per weekday.
// Days without tracked time are left blank.
func FormatWeeklySummary(s *service.WeeklySummary) string {
	headers := make([]string, 0, len(service.Weekdays)+2)
	headers = append(headers, "TAG")
	for _, d := range service.Weekdays {
		headers = append(headers, strings.ToUpper(d))
	}
	headers = append(headers, "TOTAL")

	rows := make([][]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		row := append([]string{TagBadge(r.Tag)}, r.Cells()...)
		row = append(row, Bold(domain.FormatMinutes(r.Total())))
		rows = append(rows, row)
	}

	totals := s.Totals()
	footer := append([]string{"Total"}, totals.Cells()...)
	footer = append(footer, domain.FormatMinutes(totals.Total()))

	title := "Weekly Summary - " + s.WeekStart.Format("Jan 02")
	return RenderBox(title, RenderTableWithFooter(headers, rows, footer))
}

// FormatStatus describes the running timer.
func FormatStatus(st *service.Status) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("● Running") + "  " + Bold(st.Session.Task) + "\n\n")
	fmt.Fprintf(&b, "%s  %s\n", Dim("Tag     "), TagBadge(st.Session.Tag))
	fmt.Fprintf(&b, "%s  %s %s\n", Dim("Started "), st.Session.Date, st.Session.Start)
	fmt.Fprintf(&b, "%s  %s", Dim("Elapsed "), StyleYellow.Render(domain.CoalesceStr(domain.FormatMinutes(st.ElapsedMin), "<1m")))
	return RenderBox("Timer", b.String())
}
