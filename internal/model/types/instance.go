package types

import "gopkg.in/guregu/null.v3"

// UpdateInstanceRequest edits the per-occurrence override fields. The date
// of an instance is never editable: occurrences only come into existence
// through materialization on the parent's weekday.
type UpdateInstanceRequest struct {
	CustomDescription null.String `json:"customDescription" swaggertype:"string"`
	CustomImageURL    null.String `json:"customImageUrl" swaggertype:"string"`
	Draft             bool        `json:"draft"`
}
