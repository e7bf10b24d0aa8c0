package models

import "time"

type Favorite struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	Property   *Property `json:"property,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AddFavoriteRequest is the body of POST /favorites.
type AddFavoriteRequest struct {
	PropertyID string `json:"propertyId"`
}
