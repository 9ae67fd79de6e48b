package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bookme/infras/docstore"
	"bookme/infras/otel"
	"bookme/internal/domains/booking/model"
	gRepo "bookme/shared/repository"
)

// Booking persists the two mirrored views of a booking: the business-side
// record and the customer-side reservation. The two views are written and
// deleted independently; keeping them consistent is the service's job.
type Booking interface {
	InsertBooking(ctx context.Context, booking model.Booking) error
	InsertReservation(ctx context.Context, booking model.Booking) error
	GetBooking(ctx context.Context, businessID, id string) (model.Booking, error)
	GetReservation(ctx context.Context, customerID, id string) (model.Booking, error)
	GetBookings(ctx context.Context, businessID string) ([]model.Booking, error)
	GetReservations(ctx context.Context, customerID string) ([]model.Booking, error)
	DeleteBooking(ctx context.Context, businessID, id string) error
	DeleteReservation(ctx context.Context, customerID, id string) error
}

type repositoryImpl struct {
	bookings     gRepo.Repository[model.Booking]
	reservations gRepo.Repository[model.Booking]
}

func New(store docstore.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		bookings:     gRepo.NewRepository[model.Booking](model.EntityName, store, otel),
		reservations: gRepo.NewRepository[model.Booking](model.ReservationEntityName, store, otel),
	}
}

func (repo *repositoryImpl) InsertBooking(ctx context.Context, booking model.Booking) error {
	return repo.bookings.Create(ctx, model.Collection(booking.BusinessID), booking.ID, booking)
}

func (repo *repositoryImpl) InsertReservation(ctx context.Context, booking model.Booking) error {
	return repo.reservations.Create(ctx, model.ReservationCollection(booking.CustomerID), booking.ID, booking)
}

func (repo *repositoryImpl) GetBooking(ctx context.Context, businessID, id string) (model.Booking, error) {
	return repo.bookings.Get(ctx, model.Collection(businessID), id)
}

func (repo *repositoryImpl) GetReservation(ctx context.Context, customerID, id string) (model.Booking, error) {
	return repo.reservations.Get(ctx, model.ReservationCollection(customerID), id)
}

func (repo *repositoryImpl) GetBookings(ctx context.Context, businessID string) ([]model.Booking, error) {
	return repo.bookings.List(ctx, model.Collection(businessID))
}

func (repo *repositoryImpl) GetReservations(ctx context.Context, customerID string) ([]model.Booking, error) {
	return repo.reservations.List(ctx, model.ReservationCollection(customerID))
}

func (repo *repositoryImpl) DeleteBooking(ctx context.Context, businessID, id string) error {
	return repo.bookings.Delete(ctx, model.Collection(businessID), id)
}

func (repo *repositoryImpl) DeleteReservation(ctx context.Context, customerID, id string) error {
	return repo.reservations.Delete(ctx, model.ReservationCollection(customerID), id)
}
