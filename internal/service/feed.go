package service

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Feed publishes calendar change notifications to the org-partitioned
// CALENDAR.<orgID> JetStream subjects. Downstream consumers (the public site
// cache invalidator, mostly) use these to know when to refetch; the feed is
// advisory, so a publish failure is logged and never fails the write that
// triggered it.
type Feed struct {
	js nats.JetStreamContext
}

func NewFeed(js nats.JetStreamContext) *Feed {
	return &Feed{js: js}
}

type feedMessage struct {
	Kind       string    `json:"kind"`
	EventID    int       `json:"eventId,omitempty"`
	InstanceID int       `json:"instanceId,omitempty"`
	Created    int       `json:"created,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (f *Feed) EventChanged(ctx context.Context, orgID, eventID int, kind string) {
	f.publish(orgID, feedMessage{
		Kind:       kind,
		EventID:    eventID,
		OccurredAt: time.Now(),
	})
}

func (f *Feed) InstanceChanged(ctx context.Context, orgID, instanceID int, kind string) {
	f.publish(orgID, feedMessage{
		Kind:       kind,
		InstanceID: instanceID,
		OccurredAt: time.Now(),
	})
}

func (f *Feed) InstancesMaterialized(ctx context.Context, orgID, eventID, created int) {
	f.publish(orgID, feedMessage{
		Kind:       "instances.materialized",
		EventID:    eventID,
		Created:    created,
		OccurredAt: time.Now(),
	})
}

func (f *Feed) publish(orgID int, msg feedMessage) {
	subject := "CALENDAR." + strconv.Itoa(orgID)
	b, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("feed: failed to marshal message")
		return
	}
	if _, err := f.js.PublishAsync(subject, b); err != nil {
		log.Warn().
			Str("evt.name", "feed.publish").
			Err(err).
			Str("subject", subject).
			Str("kind", msg.Kind).
			Msg("feed: failed to publish message")
	}
}
