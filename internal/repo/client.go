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

type Client struct {
	db  *bun.DB
	sel selector.S[model.Client]
}

func NewClient(db *bun.DB) *Client {
	return &Client{db: db, sel: selector.New[model.Client](db)}
}

func (r *Client) GetClients(ctx context.Context, orgID int) ([]*model.Client, error) {
	var clients []*model.Client
	err := modelcache.ClientsByOrg.MutexGetSet(strconv.Itoa(orgID), &clients, func() ([]*model.Client, error) {
		return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("org_id = ?", orgID).Order("client_id ASC")
		})
	}, time.Minute*30)
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *Client) GetClientByID(ctx context.Context, orgID, clientID int) (*model.Client, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("client_id = ?", clientID).Where("org_id = ?", orgID)
	})
}

func (r *Client) CreateClient(ctx context.Context, client *model.Client) error {
	_, err := r.db.NewInsert().
		Model(client).
		Returning("client_id").
		Exec(ctx)
	if err != nil {
		return err
	}
	r.flush(client.OrgID)
	return nil
}

func (r *Client) UpdateClient(ctx context.Context, orgID int, client *model.Client) error {
	res, err := r.db.NewUpdate().
		Model(client).
		Column("name", "email", "phone", "notes", "updated_at").
		Where("client_id = ?", client.ClientID).
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

func (r *Client) DeleteClient(ctx context.Context, orgID, clientID int) error {
	res, err := r.db.NewDelete().
		Model((*model.Client)(nil)).
		Where("client_id = ?", clientID).
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

func (r *Client) flush(orgID int) {
	_ = modelcache.ClientsByOrg.Delete(strconv.Itoa(orgID))
}
