// Package pubstatus derives the lifecycle state of an event or event
// instance from its publication window. The derived state is time-dependent,
// so it must be recomputed on every read with the caller's clock; a persisted
// status column only ever holds an explicit author override.
package pubstatus

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusPast      Status = "past"
)

// Window is the stored publication state a status is derived from.
type Window struct {
	// Explicit is the author override. Only "draft" is meaningful: it forces
	// the resource hidden regardless of the publish window.
	Explicit null.String

	PublishStartAt null.Time
	PublishEndAt   null.Time
}

// Compute derives the status of w at the instant now.
// Rules, in order: an explicit draft override always wins; before
// PublishStartAt the resource is scheduled; after PublishEndAt it is past;
// otherwise it is live.
func Compute(w Window, now time.Time) Status {
	if w.Explicit.Valid && w.Explicit.String == string(StatusDraft) {
		return StatusDraft
	}
	if w.PublishStartAt.Valid && now.Before(w.PublishStartAt.Time) {
		return StatusScheduled
	}
	if w.PublishEndAt.Valid && now.After(w.PublishEndAt.Time) {
		return StatusPast
	}
	return StatusLive
}
