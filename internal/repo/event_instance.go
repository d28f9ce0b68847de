package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
	"github.com/marquee-live/backoffice/internal/repo/selector"
)

type EventInstance struct {
	db  *bun.DB
	sel selector.S[model.EventInstance]
}

func NewEventInstance(db *bun.DB) *EventInstance {
	return &EventInstance{db: db, sel: selector.New[model.EventInstance](db)}
}

// GetInstanceByID joins through the parent event for org scoping; a
// cross-tenant instance reads as not found.
func (r *EventInstance) GetInstanceByID(ctx context.Context, orgID, instanceID int) (*model.EventInstance, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Join("JOIN events AS e ON e.event_id = ei.event_id").
			Where("ei.instance_id = ?", instanceID).
			Where("e.org_id = ?", orgID)
	})
}

func (r *EventInstance) ListInstancesByEvent(ctx context.Context, eventID int) ([]*model.EventInstance, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("event_id = ?", eventID).Order("date ASC")
	})
}

// CreateIgnoringDuplicates inserts the batch in a single statement with
// ON CONFLICT DO NOTHING on the (event_id, date) unique index, returning only
// the rows this call actually created. Racing callers materializing
// overlapping ranges each receive a disjoint created set; the union is always
// the same. The statement is atomic, so a storage failure creates nothing and
// the call is safe to retry as-is.
func (r *EventInstance) CreateIgnoringDuplicates(ctx context.Context, instances []*model.EventInstance) ([]*model.EventInstance, error) {
	if len(instances) == 0 {
		return []*model.EventInstance{}, nil
	}

	created := make([]*model.EventInstance, 0, len(instances))
	_, err := r.db.NewInsert().
		Model(&instances).
		On("CONFLICT (event_id, date) DO NOTHING").
		Returning("*").
		Exec(ctx, &created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *EventInstance) UpdateInstance(ctx context.Context, orgID int, instance *model.EventInstance) error {
	res, err := r.db.NewUpdate().
		Model(instance).
		Column("custom_description", "custom_image_url", "status", "updated_at").
		Where("instance_id = ?", instance.InstanceID).
		Where("event_id IN (SELECT event_id FROM events WHERE org_id = ?)", orgID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return mqerr.ErrNotFound
	}
	return nil
}

func (r *EventInstance) DeleteInstance(ctx context.Context, orgID, instanceID int) error {
	res, err := r.db.NewDelete().
		Model((*model.EventInstance)(nil)).
		Where("instance_id = ?", instanceID).
		Where("event_id IN (SELECT event_id FROM events WHERE org_id = ?)", orgID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return mqerr.ErrNotFound
	}
	return nil
}
