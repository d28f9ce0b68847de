package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/marquee-live/backoffice/internal/model"
	modelcache "github.com/marquee-live/backoffice/internal/model/cache"
	"github.com/marquee-live/backoffice/internal/repo/selector"
)

type Org struct {
	db  *bun.DB
	sel selector.S[model.Org]
}

func NewOrg(db *bun.DB) *Org {
	return &Org{db: db, sel: selector.New[model.Org](db)}
}

func (r *Org) GetOrgByID(ctx context.Context, orgID int) (*model.Org, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("org_id = ?", orgID)
	})
}

// GetOrgBySlug resolves the gateway slug. Resolution happens on every
// request, so hits are served from cache.
func (r *Org) GetOrgBySlug(ctx context.Context, slug string) (*model.Org, error) {
	var org model.Org
	err := modelcache.OrgBySlug.MutexGetSet(slug, &org, func() (model.Org, error) {
		o, err := r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("slug = ?", slug)
		})
		if err != nil {
			return model.Org{}, err
		}
		return *o, nil
	}, time.Minute*10)
	if err != nil {
		return nil, err
	}
	return &org, nil
}
