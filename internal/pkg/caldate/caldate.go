// Package caldate provides a timezone-free calendar date value used for
// scheduling. A Date is always stored as midnight UTC so that day arithmetic
// is plain integer arithmetic and never drifts across DST boundaries.
package caldate

import (
	"time"

	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
)

const Layout = "2006-01-02"

type Date struct {
	t time.Time
}

// Parse parses a calendar date in YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return Date{}, mqerr.ErrInvalidDateFormat.Msg("invalid calendar date %q: expected YYYY-MM-DD", s)
	}
	return Date{t: t}, nil
}

// FromTime truncates t to its calendar date, interpreting the wall clock
// fields of t as-is.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	return FromTime(time.Now().UTC())
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(Layout)
}

// AddDays shifts the date by n calendar days. n may be negative.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Weekday returns the day of week with 0 = Sunday, matching time.Weekday.
func (d Date) Weekday() int {
	return int(d.t.Weekday())
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// DaysUntil returns the number of whole days from d to other.
// Negative when other is before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}
