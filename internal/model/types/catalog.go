package types

import "gopkg.in/guregu/null.v3"

type BandRequest struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Description null.String `json:"description" swaggertype:"string"`
	ImageURL    null.String `json:"imageUrl" swaggertype:"string"`
}

type ClientRequest struct {
	Name  string      `json:"name" validate:"required,max=200"`
	Email null.String `json:"email" validate:"omitempty" swaggertype:"string"`
	Phone null.String `json:"phone" swaggertype:"string"`
	Notes null.String `json:"notes" swaggertype:"string"`
}

type ProductRequest struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Description null.String `json:"description" swaggertype:"string"`
	PriceCents  null.Int    `json:"priceCents" validate:"omitempty" swaggertype:"integer"`
	ImageURL    null.String `json:"imageUrl" swaggertype:"string"`
}
