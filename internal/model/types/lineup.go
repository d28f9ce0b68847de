package types

import "gopkg.in/guregu/null.v3"

// SetLineupRequest replaces the full ordered lineup of an event or an event
// instance. An empty list is valid and clears the lineup.
type SetLineupRequest struct {
	BandIDs []int `json:"bandIds" validate:"omitempty,dive,min=1"`
}

// LineupEntry is one performer slot in an effective lineup, ordered by Order.
type LineupEntry struct {
	BandID      int         `json:"bandId"`
	Order       int         `json:"order"`
	Name        string      `json:"name"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageURL    null.String `json:"imageUrl" swaggertype:"string"`
}

// EffectiveLineup is the lineup shown for one occurrence. A non-empty
// instance-level lineup fully replaces the template lineup for that date;
// otherwise the template lineup applies. Source reports which one won.
type EffectiveLineup struct {
	Source  string         `json:"source"` // "instance" or "template"
	Entries []*LineupEntry `json:"entries"`
}
