package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/repo/selector"
)

type EventBand struct {
	db  *bun.DB
	sel selector.S[model.EventBand]
}

func NewEventBand(db *bun.DB) *EventBand {
	return &EventBand{db: db, sel: selector.New[model.EventBand](db)}
}

func (r *EventBand) ListByEvent(ctx context.Context, eventID int) ([]*model.EventBand, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("event_id = ?", eventID).Order("ord ASC")
	})
}

// ReplaceLineup swaps the template lineup in one transaction so a concurrent
// reader never observes a half-cleared set.
func (r *EventBand) ReplaceLineup(ctx context.Context, eventID int, rows []*model.EventBand) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*model.EventBand)(nil)).
			Where("event_id = ?", eventID).
			Exec(ctx)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		_, err = tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
}
