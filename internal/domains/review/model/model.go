package model

import (
	"time"

	gModel "bookme/shared/model"
)

const (
	EntityName     = "review"
	CollectionName = "reviews"
)

// Review is one customer's opinion of a business. A customer holds at most
// one review per business; re-reviewing replaces stars and comment in place.
type Review struct {
	BusinessID string     `json:"business_id"`
	CustomerID string     `json:"customer_id"`
	Stars      int        `json:"stars"`
	Comment    string     `json:"comment"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	gModel.Metadata
}
