package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/marquee-live/backoffice/internal/pkg/pubstatus"
)

// Event is either a weekly recurrence template or a one-off occurrence.
// Exactly one of the two modes is active: a weekly event carries a day of
// week (0 = Sunday) and at most a time-of-day on StartsAt/EndsAt, while a
// one-off event carries full timestamps and no day of week.
type Event struct {
	bun.BaseModel `bun:"events,alias:e"`

	EventID          int         `bun:",pk,autoincrement" json:"id"`
	OrgID            int         `json:"orgId"`
	Title            string      `json:"title"`
	ShortDescription null.String `json:"shortDescription" swaggertype:"string"`
	Description      null.String `json:"description" swaggertype:"string"`
	ImageURL         null.String `json:"imageUrl" swaggertype:"string"`
	EventType        null.String `json:"eventType" swaggertype:"string"`
	IsWeekly         bool        `json:"isWeekly"`
	DayOfWeek        null.Int    `json:"dayOfWeek" swaggertype:"integer"`
	StartsAt         null.Time   `json:"startsAt" swaggertype:"string"`
	EndsAt           null.Time   `json:"endsAt" swaggertype:"string"`
	PublishStartAt   null.Time   `json:"publishStartAt" swaggertype:"string"`
	PublishEndAt     null.Time   `json:"publishEndAt" swaggertype:"string"`
	IsFeatured       bool        `json:"isFeatured"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`

	// StatusOverride is the persisted author override; only "draft" is
	// meaningful. The status presented to callers is always derived at read
	// time, never read back from storage.
	StatusOverride null.String `bun:"status" json:"-" swaggertype:"string"`

	// Status is the derived lifecycle state, stamped on every read.
	Status pubstatus.Status `bun:"-" json:"status"`
}

// Window assembles the publication window the event's status derives from.
func (e *Event) Window() pubstatus.Window {
	return pubstatus.Window{
		Explicit:       e.StatusOverride,
		PublishStartAt: e.PublishStartAt,
		PublishEndAt:   e.PublishEndAt,
	}
}
