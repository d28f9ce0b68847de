package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Client is an org-scoped agency client record.
type Client struct {
	bun.BaseModel `bun:"clients,alias:c"`

	ClientID  int         `bun:",pk,autoincrement" json:"id"`
	OrgID     int         `json:"orgId"`
	Name      string      `json:"name"`
	Email     null.String `json:"email" swaggertype:"string"`
	Phone     null.String `json:"phone" swaggertype:"string"`
	Notes     null.String `json:"notes" swaggertype:"string"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
