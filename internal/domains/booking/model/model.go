package model

import (
	"bookme/infras/docstore"
	scheduleModel "bookme/internal/domains/schedule/model"
	"bookme/shared/model"
)

const (
	EntityName            = "booking"
	ReservationEntityName = "reservation"

	CollectionName            = "bookings"
	ReservationCollectionName = "reservations"
	CustomerCollectionName    = "customers"

	StatusConfirmed = "confirmed"
)

// Collection is the business-side bookings subcollection.
func Collection(businessID string) string {
	return docstore.Collection("businesses", businessID, CollectionName)
}

// ReservationCollection is the customer-side mirror subcollection. Both
// records of a booking share the same document ID so either side can find
// its counterpart.
func ReservationCollection(customerID string) string {
	return docstore.Collection(CustomerCollectionName, customerID, ReservationCollectionName)
}

// Booking is stored twice: once under the business, once under the
// customer. Date is a business-local calendar date (YYYY-MM-DD); no
// timezone conversion applies anywhere in booking handling.
type Booking struct {
	ID              string                  `json:"id"`
	BusinessID      string                  `json:"business_id"`
	ServiceID       string                  `json:"service_id"`
	CustomerID      string                  `json:"customer_id"`
	Date            string                  `json:"date"`
	StartTime       scheduleModel.TimeOfDay `json:"start_time"`
	DurationMinutes int                     `json:"duration_minutes"`
	Status          string                  `json:"status"`
	model.Metadata
}

// Correlates reports whether two records describe the same booking when
// their IDs are not comparable (records written before shared IDs were
// introduced). The correlation key is customer, service, date and start
// time.
func (b Booking) Correlates(other Booking) bool {
	return b.CustomerID == other.CustomerID &&
		b.ServiceID == other.ServiceID &&
		b.Date == other.Date &&
		b.StartTime == other.StartTime
}
