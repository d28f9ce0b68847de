package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
	"github.com/marquee-live/backoffice/internal/repo/selector"
)

type Event struct {
	db  *bun.DB
	sel selector.S[model.Event]
}

func NewEvent(db *bun.DB) *Event {
	return &Event{db: db, sel: selector.New[model.Event](db)}
}

func (r *Event) GetEvents(ctx context.Context, orgID int) ([]*model.Event, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("org_id = ?", orgID).Order("event_id ASC")
	})
}

// GetEventByID scopes the lookup by org: an event belonging to another org
// is indistinguishable from a missing one.
func (r *Event) GetEventByID(ctx context.Context, orgID, eventID int) (*model.Event, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("event_id = ?", eventID).Where("org_id = ?", orgID)
	})
}

func (r *Event) CreateEvent(ctx context.Context, event *model.Event) error {
	_, err := r.db.NewInsert().
		Model(event).
		Returning("event_id").
		Exec(ctx)
	return err
}

func (r *Event) UpdateEvent(ctx context.Context, orgID int, event *model.Event) error {
	res, err := r.db.NewUpdate().
		Model(event).
		Column(
			"title", "short_description", "description", "image_url",
			"event_type", "is_weekly", "day_of_week", "starts_at", "ends_at",
			"publish_start_at", "publish_end_at", "status", "is_featured",
			"updated_at",
		).
		Where("event_id = ?", event.EventID).
		Where("org_id = ?", orgID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return mqerr.ErrNotFound
	}
	return nil
}

// DeleteEvent removes the event; instances and lineup rows cascade at the
// database level.
func (r *Event) DeleteEvent(ctx context.Context, orgID, eventID int) error {
	res, err := r.db.NewDelete().
		Model((*model.Event)(nil)).
		Where("event_id = ?", eventID).
		Where("org_id = ?", orgID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return mqerr.ErrNotFound
	}
	return nil
}

// ListWeeklyEvents returns every weekly template, optionally restricted to
// one org (orgID > 0). Used by the horizon worker and the backfill script.
func (r *Event) ListWeeklyEvents(ctx context.Context, orgID int) ([]*model.Event, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("is_weekly = TRUE").Where("day_of_week IS NOT NULL")
		if orgID > 0 {
			q = q.Where("org_id = ?", orgID)
		}
		return q.Order("event_id ASC")
	})
}
