package caldate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-03", d.String())
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), d.Time())

	for _, s := range []string{"", "2024-1-3", "03-01-2024", "2024/01/03", "2024-01-03T00:00:00Z", "not-a-date"} {
		_, err := Parse(s)
		assert.Error(t, err, "expected parse failure for %q", s)
	}
}

func TestWeekday(t *testing.T) {
	// 2024-01-07 is a Sunday
	d, err := Parse("2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Weekday())

	// 2024-01-03 is a Wednesday
	d, err = Parse("2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Weekday())
}

func TestAddDays(t *testing.T) {
	d, err := Parse("2024-02-27")
	require.NoError(t, err)
	// leap year
	assert.Equal(t, "2024-02-29", d.AddDays(2).String())
	assert.Equal(t, "2024-03-01", d.AddDays(3).String())
	assert.Equal(t, "2024-02-26", d.AddDays(-1).String())
}

func TestAddDaysAcrossDSTBoundary(t *testing.T) {
	// 2024-03-10 is the US spring-forward date; a calendar walk must not
	// drift regardless of the process's local timezone.
	d, err := Parse("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", d.AddDays(1).String())
	assert.Equal(t, "2024-03-11", d.AddDays(2).String())
	assert.Equal(t, 2, d.DaysUntil(d.AddDays(2)))
}

func TestComparisons(t *testing.T) {
	a, _ := Parse("2024-01-01")
	b, _ := Parse("2024-01-02")
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a.AddDays(0)))
	assert.Equal(t, 1, a.DaysUntil(b))
	assert.Equal(t, -1, b.DaysUntil(a))
}

func TestFromTimeTruncates(t *testing.T) {
	d := FromTime(time.Date(2024, 5, 6, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2024-05-06", d.String())
}
