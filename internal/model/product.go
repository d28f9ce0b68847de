package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Product is an org-scoped catalog entry.
type Product struct {
	bun.BaseModel `bun:"products,alias:p"`

	ProductID   int         `bun:",pk,autoincrement" json:"id"`
	OrgID       int         `json:"orgId"`
	Name        string      `json:"name"`
	Description null.String `json:"description" swaggertype:"string"`
	PriceCents  null.Int    `json:"priceCents" swaggertype:"integer"`
	ImageURL    null.String `json:"imageUrl" swaggertype:"string"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
