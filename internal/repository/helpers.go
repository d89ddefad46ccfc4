package repository

import (
	"time"

	"github.com/luanbartole/kairos/internal/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanLoggedSession reads the columns selected by listSessionsQuery.
func scanLoggedSession(row rowScanner) (domain.Session, error) {
	var s domain.Session
	err := row.Scan(&s.Date, &s.Start, &s.Task, &s.Tag, &s.End, &s.Duration)
	return s, err
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
