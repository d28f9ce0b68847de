package model

import "github.com/uptrace/bun"

// EventInstanceBand is the per-occurrence lineup entry. Ord values for one
// instance form a dense 0..N-1 sequence; the set is always replaced as a
// whole, never patched row by row.
type EventInstanceBand struct {
	bun.BaseModel `bun:"event_instance_bands,alias:eib"`

	InstanceID int `bun:"instance_id" json:"instanceId"`
	BandID     int `json:"bandId"`
	Ord        int `bun:"ord" json:"order"`
}
