package pubstatus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestDraftOverrideWins(t *testing.T) {
	w := Window{
		Explicit:       null.StringFrom("draft"),
		PublishStartAt: null.TimeFrom(now.Add(-time.Hour)),
		PublishEndAt:   null.TimeFrom(now.Add(time.Hour)),
	}
	assert.Equal(t, StatusDraft, Compute(w, now))
}

func TestWindowTransitions(t *testing.T) {
	w := Window{
		PublishStartAt: null.TimeFrom(now),
		PublishEndAt:   null.TimeFrom(now.Add(24 * time.Hour)),
	}

	assert.Equal(t, StatusScheduled, Compute(w, now.Add(-time.Minute)))
	assert.Equal(t, StatusLive, Compute(w, now))
	assert.Equal(t, StatusLive, Compute(w, now.Add(time.Hour)))
	assert.Equal(t, StatusLive, Compute(w, now.Add(24*time.Hour)))
	assert.Equal(t, StatusPast, Compute(w, now.Add(24*time.Hour+time.Second)))
}

func TestNoWindow(t *testing.T) {
	assert.Equal(t, StatusLive, Compute(Window{}, now))
}

func TestOpenEndedWindow(t *testing.T) {
	w := Window{PublishStartAt: null.TimeFrom(now.Add(-time.Hour))}
	assert.Equal(t, StatusLive, Compute(w, now))
	assert.Equal(t, StatusLive, Compute(w, now.Add(1000*time.Hour)))

	w = Window{PublishEndAt: null.TimeFrom(now.Add(-time.Hour))}
	assert.Equal(t, StatusPast, Compute(w, now))
}

func TestNonDraftOverrideIsIgnored(t *testing.T) {
	// only "draft" is meaningful as an override; anything else falls through
	// to window evaluation
	w := Window{
		Explicit:     null.StringFrom("live"),
		PublishEndAt: null.TimeFrom(now.Add(-time.Hour)),
	}
	assert.Equal(t, StatusPast, Compute(w, now))
}
