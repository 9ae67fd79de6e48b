package model

import (
	"bookme/infras/docstore"
	"bookme/shared/model"
)

const (
	EntityName        = "business"
	ServiceEntityName = "service"

	CollectionName        = "businesses"
	ServiceCollectionName = "services"
)

// ServiceCollection is the per-business subcollection holding the
// services a business offers.
func ServiceCollection(businessID string) string {
	return docstore.Collection(CollectionName, businessID, ServiceCollectionName)
}

type Business struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	OwnerID string `json:"owner_id"`
	model.Metadata
}

// Service is a bookable offering; DurationMinutes drives how many
// consecutive slots a booking of this service occupies.
type Service struct {
	ID              string  `json:"id"`
	BusinessID      string  `json:"business_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	model.Metadata
}
