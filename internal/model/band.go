package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Band is a tenant-scoped performer.
type Band struct {
	bun.BaseModel `bun:"bands,alias:b"`

	BandID      int         `bun:",pk,autoincrement" json:"id"`
	OrgID       int         `json:"orgId"`
	Name        string      `json:"name"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageURL    null.String `json:"imageUrl" swaggertype:"string"`
}
