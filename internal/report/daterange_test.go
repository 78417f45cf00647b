package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-console/internal/domain/clinic"
)

var fixedNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodValid(t *testing.T) {
	for _, p := range []Period{
		PeriodLastDay, PeriodLast3Days, PeriodLastWeek, PeriodLastMonth,
		PeriodLast3Months, PeriodLast6Months, PeriodLastYear,
	} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, Period("lastDecade").Valid())
	assert.False(t, Period("").Valid())
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Last Week", PeriodLastWeek.Label())
	assert.Equal(t, "bogus", Period("bogus").Label())
}

func TestPeriodRange(t *testing.T) {
	tests := []struct {
		period Period
		from   time.Time
	}{
		{PeriodLastDay, day(2024, 6, 14)},
		{PeriodLast3Days, day(2024, 6, 12)},
		{PeriodLastWeek, day(2024, 6, 8)},
		{PeriodLastMonth, day(2024, 5, 15)},
		{PeriodLast3Months, day(2024, 3, 15)},
		{PeriodLast6Months, day(2023, 12, 15)},
		{PeriodLastYear, day(2023, 6, 15)},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			from, to, ok := tt.period.Range(fixedNow)
			require.True(t, ok)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, day(2024, 6, 15), to)
		})
	}

	_, _, ok := Period("bogus").Range(fixedNow)
	assert.False(t, ok)
}

func TestDateFilterBounds(t *testing.T) {
	t.Run("explicit dates win over period", func(t *testing.T) {
		f := DateFilter{
			Period: PeriodLastYear,
			From:   day(2024, 6, 1),
			To:     day(2024, 6, 10),
		}
		from, to := f.Bounds(fixedNow)
		assert.Equal(t, day(2024, 6, 1), from)
		assert.Equal(t, day(2024, 6, 10), to)
	})

	t.Run("period alone resolves", func(t *testing.T) {
		from, to := DateFilter{Period: PeriodLastWeek}.Bounds(fixedNow)
		assert.Equal(t, day(2024, 6, 8), from)
		assert.Equal(t, day(2024, 6, 15), to)
	})

	t.Run("zero filter is open", func(t *testing.T) {
		from, to := DateFilter{}.Bounds(fixedNow)
		assert.True(t, from.IsZero())
		assert.True(t, to.IsZero())
	})
}

func TestFilterBySignup(t *testing.T) {
	users := []clinic.Registrant{
		{ID: "before", SignupTime: time.Date(2024, 6, 7, 23, 59, 59, 0, time.UTC)},
		{ID: "start", SignupTime: time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)},
		{ID: "middle", SignupTime: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
		{ID: "end", SignupTime: time.Date(2024, 6, 15, 23, 59, 59, 999000000, time.UTC)},
		{ID: "after", SignupTime: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("period bounds are inclusive whole days", func(t *testing.T) {
		got := FilterBySignup(users, DateFilter{Period: PeriodLastWeek}, fixedNow)
		ids := make([]string, len(got))
		for i, u := range got {
			ids[i] = u.ID
		}
		assert.Equal(t, []string{"start", "middle", "end"}, ids)
	})

	t.Run("no bounds returns everything", func(t *testing.T) {
		got := FilterBySignup(users, DateFilter{}, fixedNow)
		assert.Len(t, got, len(users))
	})

	t.Run("result is always a subset", func(t *testing.T) {
		got := FilterBySignup(users, DateFilter{Period: PeriodLastDay}, fixedNow)
		assert.LessOrEqual(t, len(got), len(users))
	})

	t.Run("empty collection", func(t *testing.T) {
		got := FilterBySignup(nil, DateFilter{Period: PeriodLastWeek}, fixedNow)
		assert.Empty(t, got)
	})

	t.Run("filtering twice yields the same view", func(t *testing.T) {
		f := DateFilter{Period: PeriodLastWeek}
		assert.Equal(t, FilterBySignup(users, f, fixedNow), FilterBySignup(users, f, fixedNow))
	})
}

func TestFilterBySignup_ShortDSTDay(t *testing.T) {
	// 2024-03-10 in New York has only 23 hours; the upper bound must still
	// close at 23:59:59.999 of that day, not spill into March 11.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	users := []clinic.Registrant{
		{ID: "dst-day", SignupTime: time.Date(2024, 3, 10, 22, 0, 0, 0, loc)},
		{ID: "next-morning", SignupTime: time.Date(2024, 3, 11, 0, 30, 0, 0, loc)},
	}
	f := DateFilter{
		From: time.Date(2024, 3, 10, 0, 0, 0, 0, loc),
		To:   time.Date(2024, 3, 10, 0, 0, 0, 0, loc),
	}

	got := FilterBySignup(users, f, time.Date(2024, 3, 12, 9, 0, 0, 0, loc))
	require.Len(t, got, 1)
	assert.Equal(t, "dst-day", got[0].ID)
}
