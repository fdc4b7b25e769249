package progress

import (
	"fmt"
	"time"

	"github.com/abhisek/multiz/internal/session"
)

// Period selects which answers a report covers.
type Period string

const (
	PeriodSession Period = "session"
	PeriodToday   Period = "today"
	PeriodWeek    Period = "this_week"
	PeriodMonth   Period = "this_month"
	PeriodAllTime Period = "all_time"
)

// AllPeriods lists periods in tab order.
var AllPeriods = []Period{PeriodSession, PeriodToday, PeriodWeek, PeriodMonth, PeriodAllTime}

// DisplayName returns a tab label for the period.
func (p Period) DisplayName() string {
	switch p {
	case PeriodSession:
		return "Session"
	case PeriodToday:
		return "Today"
	case PeriodWeek:
		return "This week"
	case PeriodMonth:
		return "This month"
	case PeriodAllTime:
		return "All time"
	default:
		return string(p)
	}
}

// ParsePeriod converts a string to a Period.
func ParsePeriod(s string) (Period, error) {
	for _, p := range AllPeriods {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q (want one of %v)", s, AllPeriods)
}

// periodStart returns the first instant covered by p in now's location.
// Weeks start on Sunday.
func periodStart(p Period, now time.Time) time.Time {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodToday:
		return today
	case PeriodWeek:
		return today.AddDate(0, 0, -int(today.Weekday()))
	case PeriodMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}

// inPeriod reports whether a falls within p. Answers without a session id
// never match the session period.
func inPeriod(a session.Answer, p Period, sessionID string, now time.Time) bool {
	switch p {
	case PeriodSession:
		return a.SessionID != "" && a.SessionID == sessionID
	case PeriodToday, PeriodWeek, PeriodMonth:
		return !a.FinishedAt.Before(periodStart(p, now))
	default:
		return true
	}
}

// Filter returns the answers within p, optionally keeping ignored ones.
func Filter(answers []session.Answer, p Period, sessionID string, now time.Time, keepIgnored bool) []session.Answer {
	var out []session.Answer
	for _, a := range answers {
		if a.IgnoredForStats && !keepIgnored {
			continue
		}
		if inPeriod(a, p, sessionID, now) {
			out = append(out, a)
		}
	}
	return out
}
