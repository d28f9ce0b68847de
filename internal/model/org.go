package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Org is the owning tenant. Every other record in the system is partitioned
// by its org id; nothing is ever visible across orgs.
type Org struct {
	bun.BaseModel `bun:"orgs,alias:o"`

	OrgID     int       `bun:",pk,autoincrement" json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}
