package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/repo/selector"
)

type EventInstanceBand struct {
	db  *bun.DB
	sel selector.S[model.EventInstanceBand]
}

func NewEventInstanceBand(db *bun.DB) *EventInstanceBand {
	return &EventInstanceBand{db: db, sel: selector.New[model.EventInstanceBand](db)}
}

func (r *EventInstanceBand) ListByInstance(ctx context.Context, instanceID int) ([]*model.EventInstanceBand, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("instance_id = ?", instanceID).Order("ord ASC")
	})
}

// ReplaceLineup swaps the per-occurrence lineup in one transaction. Ord
// density (0..N-1 with no gaps) is guaranteed by construction since the set
// is always written whole.
func (r *EventInstanceBand) ReplaceLineup(ctx context.Context, instanceID int, rows []*model.EventInstanceBand) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*model.EventInstanceBand)(nil)).
			Where("instance_id = ?", instanceID).
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
