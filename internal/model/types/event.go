package types

import (
	"gopkg.in/guregu/null.v3"

	"github.com/marquee-live/backoffice/internal/model"
)

// CreateEventRequest creates either a one-off event (full startsAt/endsAt
// timestamps) or a weekly template (dayOfWeek, time-of-day only). The two
// modes are mutually exclusive; the service validates the invariant.
type CreateEventRequest struct {
	Title            string      `json:"title" validate:"required,max=200"`
	ShortDescription null.String `json:"shortDescription" swaggertype:"string"`
	Description      null.String `json:"description" swaggertype:"string"`
	ImageURL         null.String `json:"imageUrl" swaggertype:"string"`
	EventType        null.String `json:"eventType" swaggertype:"string"`
	IsWeekly         bool        `json:"isWeekly"`
	DayOfWeek        null.Int    `json:"dayOfWeek" validate:"omitempty,weekday" swaggertype:"integer"`
	StartsAt         null.Time   `json:"startsAt" swaggertype:"string"`
	EndsAt           null.Time   `json:"endsAt" swaggertype:"string"`
	PublishStartAt   null.Time   `json:"publishStartAt" swaggertype:"string"`
	PublishEndAt     null.Time   `json:"publishEndAt" swaggertype:"string"`
	Draft            bool        `json:"draft"`
	IsFeatured       bool        `json:"isFeatured"`
}

type UpdateEventRequest struct {
	Title            string      `json:"title" validate:"required,max=200"`
	ShortDescription null.String `json:"shortDescription" swaggertype:"string"`
	Description      null.String `json:"description" swaggertype:"string"`
	ImageURL         null.String `json:"imageUrl" swaggertype:"string"`
	EventType        null.String `json:"eventType" swaggertype:"string"`
	IsWeekly         bool        `json:"isWeekly"`
	DayOfWeek        null.Int    `json:"dayOfWeek" validate:"omitempty,weekday" swaggertype:"integer"`
	StartsAt         null.Time   `json:"startsAt" swaggertype:"string"`
	EndsAt           null.Time   `json:"endsAt" swaggertype:"string"`
	PublishStartAt   null.Time   `json:"publishStartAt" swaggertype:"string"`
	PublishEndAt     null.Time   `json:"publishEndAt" swaggertype:"string"`
	Draft            bool        `json:"draft"`
	IsFeatured       bool        `json:"isFeatured"`
}

// MaterializeRequest expands a weekly event into concrete instances over the
// inclusive [startDate, endDate] calendar range.
type MaterializeRequest struct {
	StartDate string `json:"startDate" validate:"required,calendardate"`
	EndDate   string `json:"endDate" validate:"required,calendardate"`
}

type MaterializeResponse struct {
	Created   int                    `json:"created"`
	Instances []*model.EventInstance `json:"instances"`
}
