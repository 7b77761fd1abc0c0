//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"escape-booking/internal/pkg/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("iso date", func(t *testing.T) {
		d, err := calendar.Parse("2026-03-06")
		require.NoError(t, err)
		assert.Equal(t, time.Friday, d.Weekday())
		assert.Equal(t, "2026-03-06", d.String())
	})

	for _, in := range []string{"", "2026-02-30", "06/03/2026", "2026-3-6", "2026-03-06T00:00:00Z"} {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := calendar.Parse(in)
			assert.ErrorIs(t, err, calendar.ErrInvalidDate)
		})
	}
}

func TestToday(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	// 23:30 UTC on 30 June is already 1 July in London (BST).
	now := time.Date(2026, time.June, 30, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, calendar.MustParse("2026-07-01"), calendar.Today(now, london))
	assert.Equal(t, calendar.MustParse("2026-06-30"), calendar.Today(now, nil))
}

func TestDateArithmetic(t *testing.T) {
	d := calendar.MustParse("2026-03-28")

	assert.Equal(t, calendar.MustParse("2026-04-02"), d.AddDays(5))
	assert.Equal(t, calendar.MustParse("2026-02-14"), d.AddDays(-42))
	// Crosses the UK clock change on 29 March without losing a day.
	assert.Equal(t, 5, d.DaysUntil(d.AddDays(5)))
	assert.Equal(t, -3, d.DaysUntil(d.AddDays(-3)))
	assert.Equal(t, d.AddDays(1), calendar.Max(d, d.AddDays(1)))
}

func TestDateText(t *testing.T) {
	var d calendar.Date
	require.NoError(t, d.UnmarshalText([]byte("2026-12-24")))

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2026-12-24", string(text))

	assert.Error(t, d.UnmarshalText([]byte("christmas")))
}

func TestRange(t *testing.T) {
	fri := calendar.MustParse("2026-03-06")
	sun := calendar.MustParse("2026-03-08")

	t.Run("nights", func(t *testing.T) {
		r, err := calendar.NewRange(fri, sun)
		require.NoError(t, err)
		assert.Equal(t, 2, r.Nights())
		assert.True(t, r.Contains(fri))
		assert.False(t, r.Contains(sun))
	})

	t.Run("check-out must follow check-in", func(t *testing.T) {
		_, err := calendar.NewRange(fri, fri)
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)

		_, err = calendar.NewRange(sun, fri)
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)

		_, err = calendar.NewRange(calendar.Date{}, sun)
		assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		stay := calendar.Range{CheckIn: fri, CheckOut: sun}

		tests := []struct {
			name     string
			checkIn  string
			checkOut string
			want     bool
		}{
			{"back to back after", "2026-03-08", "2026-03-10", false},
			{"back to back before", "2026-03-04", "2026-03-06", false},
			{"same stay", "2026-03-06", "2026-03-08", true},
			{"starts inside", "2026-03-07", "2026-03-09", true},
			{"ends inside", "2026-03-05", "2026-03-07", true},
			{"surrounds", "2026-03-01", "2026-03-20", true},
			{"disjoint", "2026-04-01", "2026-04-03", false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				other := calendar.Range{
					CheckIn:  calendar.MustParse(tt.checkIn),
					CheckOut: calendar.MustParse(tt.checkOut),
				}
				assert.Equal(t, tt.want, stay.Overlaps(other))
				assert.Equal(t, tt.want, other.Overlaps(stay))
			})
		}
	})
}

func TestWeekdaySet(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		set, err := calendar.ParseWeekdaySet(" fri, Saturday ")
		require.NoError(t, err)
		assert.Equal(t, calendar.NewWeekdaySet(time.Friday, time.Saturday), set)
		assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, set.Days())
	})

	t.Run("empty list", func(t *testing.T) {
		set, err := calendar.ParseWeekdaySet("")
		require.NoError(t, err)
		assert.Empty(t, set.Days())
	})

	t.Run("unknown day", func(t *testing.T) {
		_, err := calendar.ParseWeekdaySet("FRI,FUNDAY")
		assert.ErrorIs(t, err, calendar.ErrInvalidWeekday)
	})

	t.Run("membership", func(t *testing.T) {
		set := calendar.NewWeekdaySet(time.Sunday, time.Saturday)
		assert.True(t, set.Has(time.Sunday))
		assert.True(t, set.Has(time.Saturday))
		assert.False(t, set.Has(time.Friday))
	})
}
