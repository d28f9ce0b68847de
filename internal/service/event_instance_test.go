package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/pkg/caldate"
	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
)

func mustDate(t *testing.T, s string) caldate.Date {
	t.Helper()
	d, err := caldate.Parse(s)
	require.NoError(t, err)
	return d
}

func weeklyEvent(dayOfWeek int) *model.Event {
	return &model.Event{
		EventID:   1,
		OrgID:     1,
		Title:     "Weekly Jazz Night",
		IsWeekly:  true,
		DayOfWeek: null.IntFrom(int64(dayOfWeek)),
	}
}

func dateStrings(dates []caldate.Date) []string {
	return lo.Map(dates, func(d caldate.Date, _ int) string { return d.String() })
}

func TestOccurrenceDatesWednesdaysOfJanuary(t *testing.T) {
	dates := occurrenceDates(3, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	assert.Equal(t, []string{
		"2024-01-03", "2024-01-10", "2024-01-17", "2024-01-24", "2024-01-31",
	}, dateStrings(dates))
}

func TestOccurrenceDatesNoMatchInRange(t *testing.T) {
	// Tue..Sat span contains no Sunday
	dates := occurrenceDates(0, mustDate(t, "2024-01-02"), mustDate(t, "2024-01-06"))
	assert.Empty(t, dates)
}

func TestOccurrenceDatesInclusiveBounds(t *testing.T) {
	// both endpoints fall on the requested weekday
	dates := occurrenceDates(1, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-15"))
	assert.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15"}, dateStrings(dates))

	// single-day range matching the weekday
	dates = occurrenceDates(1, mustDate(t, "2024-01-08"), mustDate(t, "2024-01-08"))
	assert.Equal(t, []string{"2024-01-08"}, dateStrings(dates))

	// single-day range not matching
	dates = occurrenceDates(2, mustDate(t, "2024-01-08"), mustDate(t, "2024-01-08"))
	assert.Empty(t, dates)
}

func TestOccurrenceDatesAcrossMonthAndYearBoundary(t *testing.T) {
	dates := occurrenceDates(5, mustDate(t, "2023-12-25"), mustDate(t, "2024-01-14"))
	assert.Equal(t, []string{"2023-12-29", "2024-01-05", "2024-01-12"}, dateStrings(dates))
}

func TestMaterializationDatesRejectsNonRecurring(t *testing.T) {
	oneOff := &model.Event{EventID: 2, OrgID: 1, Title: "Album Release"}
	_, err := materializationDates(oneOff, "2024-01-01", "2024-01-31")
	requireMarqueeCode(t, err, mqerr.CodeNotRecurring)

	// weekly flag without a day of week is equally unusable
	broken := &model.Event{EventID: 3, OrgID: 1, IsWeekly: true}
	_, err = materializationDates(broken, "2024-01-01", "2024-01-31")
	requireMarqueeCode(t, err, mqerr.CodeNotRecurring)
}

func TestMaterializationDatesRejectsMalformedDates(t *testing.T) {
	event := weeklyEvent(3)

	_, err := materializationDates(event, "01/02/2024", "2024-01-31")
	requireMarqueeCode(t, err, mqerr.CodeInvalidDateFormat)

	_, err = materializationDates(event, "2024-01-01", "Jan 31 2024")
	requireMarqueeCode(t, err, mqerr.CodeInvalidDateFormat)
}

func TestMaterializationDatesRejectsInvertedRange(t *testing.T) {
	event := weeklyEvent(3)
	_, err := materializationDates(event, "2024-02-10", "2024-02-01")
	requireMarqueeCode(t, err, mqerr.CodeInvalidRange)
}

func TestMaterializationDatesRejectsOversizedRange(t *testing.T) {
	event := weeklyEvent(3)
	_, err := materializationDates(event, "2024-01-01", "2030-01-01")
	requireMarqueeCode(t, err, mqerr.CodeInvalidRange)
}

func TestMaterializationDatesHappyPath(t *testing.T) {
	event := weeklyEvent(3)
	dates, err := materializationDates(event, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Len(t, dates, 5)
}

func TestOccurrenceDatesIdempotentOverUnion(t *testing.T) {
	// expanding two overlapping ranges yields, as a set, exactly the
	// expansion of their union; the storage-level conflict skip turns that
	// set equality into instance-set equality
	a := occurrenceDates(3, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-20"))
	b := occurrenceDates(3, mustDate(t, "2024-01-10"), mustDate(t, "2024-01-31"))
	union := occurrenceDates(3, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))

	merged := lo.Uniq(append(dateStrings(a), dateStrings(b)...))
	assert.ElementsMatch(t, dateStrings(union), merged)
}

func requireMarqueeCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	me, ok := err.(*mqerr.MarqueeError)
	require.True(t, ok, "expected *mqerr.MarqueeError, got %T", err)
	assert.Equal(t, code, me.ErrorCode)
}
