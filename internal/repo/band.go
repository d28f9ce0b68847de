package repo

import (
	"context"
	"strconv"
	"time"

	"github.com/uptrace/bun"

	"github.com/marquee-live/backoffice/internal/model"
	modelcache "github.com/marquee-live/backoffice/internal/model/cache"
	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
	"github.com/marquee-live/backoffice/internal/repo/selector"
)

type Band struct {
	db  *bun.DB
	sel selector.S[model.Band]
}

func NewBand(db *bun.DB) *Band {
	return &Band{db: db, sel: selector.New[model.Band](db)}
}

func (r *Band) GetBands(ctx context.Context, orgID int) ([]*model.Band, error) {
	var bands []*model.Band
	err := modelcache.BandsByOrg.MutexGetSet(strconv.Itoa(orgID), &bands, func() ([]*model.Band, error) {
		return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("org_id = ?", orgID).Order("band_id ASC")
		})
	}, time.Minute*30)
	if err != nil {
		return nil, err
	}
	return bands, nil
}

func (r *Band) GetBandByID(ctx context.Context, orgID, bandID int) (*model.Band, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("band_id = ?", bandID).Where("org_id = ?", orgID)
	})
}

func (r *Band) GetBandsByIDs(ctx context.Context, orgID int, bandIDs []int) ([]*model.Band, error) {
	if len(bandIDs) == 0 {
		return []*model.Band{}, nil
	}
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("org_id = ?", orgID).Where("band_id IN (?)", bun.In(bandIDs))
	})
}

// CountByIDs reports how many of the distinct ids belong to orgID. Callers
// compare against the distinct input size to reject cross-tenant references
// before any write happens.
func (r *Band) CountByIDs(ctx context.Context, orgID int, bandIDs []int) (int, error) {
	if len(bandIDs) == 0 {
		return 0, nil
	}
	return r.db.NewSelect().
		Model((*model.Band)(nil)).
		Where("org_id = ?", orgID).
		Where("band_id IN (?)", bun.In(bandIDs)).
		Count(ctx)
}

func (r *Band) CreateBand(ctx context.Context, band *model.Band) error {
	_, err := r.db.NewInsert().
		Model(band).
		Returning("band_id").
		Exec(ctx)
	if err != nil {
		return err
	}
	r.flush(band.OrgID)
	return nil
}

func (r *Band) UpdateBand(ctx context.Context, orgID int, band *model.Band) error {
	res, err := r.db.NewUpdate().
		Model(band).
		Column("name", "description", "image_url").
		Where("band_id = ?", band.BandID).
		Where("org_id = ?", orgID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return mqerr.ErrNotFound
	}
	r.flush(orgID)
	return nil
}

func (r *Band) DeleteBand(ctx context.Context, orgID, bandID int) error {
	res, err := r.db.NewDelete().
		Model((*model.Band)(nil)).
		Where("band_id = ?", bandID).
		Where("org_id = ?", orgID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return mqerr.ErrNotFound
	}
	r.flush(orgID)
	return nil
}

func (r *Band) flush(orgID int) {
	_ = modelcache.BandsByOrg.Delete(strconv.Itoa(orgID))
}
