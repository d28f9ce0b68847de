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

type Product struct {
	db  *bun.DB
	sel selector.S[model.Product]
}

func NewProduct(db *bun.DB) *Product {
	return &Product{db: db, sel: selector.New[model.Product](db)}
}

func (r *Product) GetProducts(ctx context.Context, orgID int) ([]*model.Product, error) {
	var products []*model.Product
	err := modelcache.ProductsByOrg.MutexGetSet(strconv.Itoa(orgID), &products, func() ([]*model.Product, error) {
		return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("org_id = ?", orgID).Order("product_id ASC")
		})
	}, time.Minute*30)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Product) GetProductByID(ctx context.Context, orgID, productID int) (*model.Product, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("product_id = ?", productID).Where("org_id = ?", orgID)
	})
}

func (r *Product) CreateProduct(ctx context.Context, product *model.Product) error {
	_, err := r.db.NewInsert().
		Model(product).
		Returning("product_id").
		Exec(ctx)
	if err != nil {
		return err
	}
	r.flush(product.OrgID)
	return nil
}

func (r *Product) UpdateProduct(ctx context.Context, orgID int, product *model.Product) error {
	res, err := r.db.NewUpdate().
		Model(product).
		Column("name", "description", "price_cents", "image_url", "updated_at").
		Where("product_id = ?", product.ProductID).
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

func (r *Product) DeleteProduct(ctx context.Context, orgID, productID int) error {
	res, err := r.db.NewDelete().
		Model((*model.Product)(nil)).
		Where("product_id = ?", productID).
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

func (r *Product) flush(orgID int) {
	_ = modelcache.ProductsByOrg.Delete(strconv.Itoa(orgID))
}
