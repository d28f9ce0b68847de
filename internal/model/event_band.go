package model

import "github.com/uptrace/bun"

// EventBand is the template-level lineup entry: the band appears on every
// occurrence of the event unless an instance-level lineup overrides it.
type EventBand struct {
	bun.BaseModel `bun:"event_bands,alias:eb"`

	EventID int `json:"eventId"`
	BandID  int `json:"bandId"`
	Ord     int `bun:"ord" json:"order"`
}
