package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/marquee-live/backoffice/internal/pkg/pubstatus"
)

// EventInstance is one concrete calendar occurrence materialized from a
// weekly Event. The (event_id, date) pair is unique at the database level;
// that constraint is what makes materialization idempotent under concurrent
// callers.
type EventInstance struct {
	bun.BaseModel `bun:"event_instances,alias:ei"`

	InstanceID        int         `bun:",pk,autoincrement" json:"id"`
	EventID           int         `json:"eventId"`
	Date              time.Time   `bun:"date,type:date" json:"date"`
	CustomDescription null.String `json:"customDescription" swaggertype:"string"`
	CustomImageURL    null.String `json:"customImageUrl" swaggertype:"string"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`

	// StatusOverride is the per-occurrence author override; see Event.
	StatusOverride null.String `bun:"status" json:"-" swaggertype:"string"`

	// Status is the derived lifecycle state, stamped on every read.
	Status pubstatus.Status `bun:"-" json:"status"`
}

// Window assembles the publication window for this occurrence. Instances
// carry no publish window of their own: they inherit the parent event's
// window, with the instance override taking precedence over the parent's
// when set.
func (i *EventInstance) Window(parent *Event) pubstatus.Window {
	explicit := i.StatusOverride
	if !explicit.Valid {
		explicit = parent.StatusOverride
	}
	return pubstatus.Window{
		Explicit:       explicit,
		PublishStartAt: parent.PublishStartAt,
		PublishEndAt:   parent.PublishEndAt,
	}
}
