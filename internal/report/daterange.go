package report

import (
	"time"

	"clinic-console/internal/domain/clinic"
)

// Period is a named relative date range used to filter registrants by
// signup time.
type Period string

// Supported period tokens.
const (
	PeriodLastDay     Period = "lastDay"
	PeriodLast3Days   Period = "last3Days"
	PeriodLastWeek    Period = "lastWeek"
	PeriodLastMonth   Period = "lastMonth"
	PeriodLast3Months Period = "last3Months"
	PeriodLast6Months Period = "last6Months"
	PeriodLastYear    Period = "lastYear"
)

var periodLabels = map[Period]string{
	PeriodLastDay:     "Last Day",
	PeriodLast3Days:   "Last 3 Days",
	PeriodLastWeek:    "Last Week",
	PeriodLastMonth:   "Last Month",
	PeriodLast3Months: "Last 3 Months",
	PeriodLast6Months: "Last 6 Months",
	PeriodLastYear:    "Last Year",
}

// Valid reports whether p is a known period token.
func (p Period) Valid() bool {
	_, ok := periodLabels[p]
	return ok
}

// Label returns the display label for p, or the raw token when unknown.
func (p Period) Label() string {
	if label, ok := periodLabels[p]; ok {
		return label
	}
	return string(p)
}

// Range resolves p to [from, to] at midnight boundaries relative to now.
// ok is false for unknown tokens.
func (p Period) Range(now time.Time) (from, to time.Time, ok bool) {
	today := midnight(now)
	switch p {
	case PeriodLastDay:
		return today.AddDate(0, 0, -1), today, true
	case PeriodLast3Days:
		return today.AddDate(0, 0, -3), today, true
	case PeriodLastWeek:
		return today.AddDate(0, 0, -7), today, true
	case PeriodLastMonth:
		return today.AddDate(0, -1, 0), today, true
	case PeriodLast3Months:
		return today.AddDate(0, -3, 0), today, true
	case PeriodLast6Months:
		return today.AddDate(0, -6, 0), today, true
	case PeriodLastYear:
		return today.AddDate(-1, 0, 0), today, true
	}
	return time.Time{}, time.Time{}, false
}

// DateFilter selects registrants by signup time. Explicit From/To override
// the named period; a zero filter selects everything.
type DateFilter struct {
	Period Period
	From   time.Time
	To     time.Time
}

// Bounds resolves the filter to its effective [from, to] pair relative to
// now. Zero times mean the corresponding bound is open.
func (f DateFilter) Bounds(now time.Time) (from, to time.Time) {
	if !f.From.IsZero() || !f.To.IsZero() {
		return f.From, f.To
	}
	if from, to, ok := f.Period.Range(now); ok {
		return from, to
	}
	return time.Time{}, time.Time{}
}

// FilterBySignup re-derives the filtered view from the full collection:
// registrants whose signup time falls within [from 00:00:00, to
// 23:59:59.999] inclusive. The result is always a subset of users; with no
// bounds the full collection comes back.
func FilterBySignup(users []clinic.Registrant, f DateFilter, now time.Time) []clinic.Registrant {
	from, to := f.Bounds(now)

	filtered := make([]clinic.Registrant, 0, len(users))
	for _, u := range users {
		if !from.IsZero() && u.SignupTime.Before(midnight(from)) {
			continue
		}
		if !to.IsZero() && u.SignupTime.After(endOfDay(to)) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered
}

// midnight truncates t to the start of its day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns 23:59:59.999 on t's day. Calendar arithmetic, not
// Add(24h): a DST-shortened day would otherwise spill into the next one.
func endOfDay(t time.Time) time.Time {
	return midnight(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}
