package service

import (
	"context"
	"time"

	"bookme/config"
	"bookme/infras/docstore"
	"bookme/infras/otel"
	availabilityModel "bookme/internal/domains/availability/model"
	"bookme/internal/domains/booking/model"
	"bookme/internal/domains/booking/model/dto"
	"bookme/internal/domains/booking/repository"
	businessRepo "bookme/internal/domains/business/repository"
	scheduleModel "bookme/internal/domains/schedule/model"
	scheduleService "bookme/internal/domains/schedule/service"
	"bookme/internal/events"
	"bookme/shared"
	"bookme/shared/cache"
	"bookme/shared/constant"
	"bookme/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBookings     = "booking:gets"
	cacheGetReservations = "booking:reservations"
	cacheAvailability    = "availability:slots"
)

type Booking interface {
	Commit(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) error
	MyReservations(ctx context.Context) (dto.GetBookingsResponse, error)
	BusinessBookings(ctx context.Context, businessID, date string) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	businessRepo businessRepo.Business
	schedules    scheduleService.Schedule
	publisher    events.Publisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	businessRepo businessRepo.Business,
	schedules scheduleService.Schedule,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		businessRepo: businessRepo,
		schedules:    schedules,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Commit turns a selected slot into a persisted booking. Occupancy is
// re-derived from the booking records read here, immediately before the
// write; client-side availability is never trusted, which narrows (but
// cannot fully close) the race between two customers picking the same
// slot. On a lost race the caller gets SlotUnavailable and must re-query
// availability.
func (s *serviceImpl) Commit(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CommitBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if customerID == constant.Empty {
		return res, failure.Unauthorized("missing principal") // nolint:wrapcheck
	}

	date, err := time.Parse(constant.DateFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted YYYY-MM-DD") // nolint:wrapcheck
	}

	startTime, err := scheduleModel.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	service, err := s.businessRepo.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return res, failure.NotFound("service not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get service")

		return res, err
	}

	if service.DurationMinutes <= 0 {
		return res, failure.InvalidDuration // nolint:wrapcheck
	}

	weekly, err := s.schedules.GetWeekly(ctx, req.BusinessID)
	if err != nil {
		return res, err
	}

	day := weekly.Day(date.Weekday())
	if day.Closed {
		return res, failure.ScheduleClosed // nolint:wrapcheck
	}

	slots, err := s.freshSlots(ctx, req.BusinessID, req.ServiceID, req.Date, day)
	if err != nil {
		return res, err
	}

	index := availabilityModel.SlotIndex(slots, startTime)
	if index < 0 || !availabilityModel.CanStartAt(slots, index, service.DurationMinutes) {
		return res, failure.SlotUnavailable // nolint:wrapcheck
	}

	booking := req.ToModel(customerID, startTime, service.DurationMinutes)

	// business side first; the customer-side mirror follows, with a
	// compensating delete if the mirror write fails
	if err = s.repo.InsertBooking(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, err
	}

	if err = s.repo.InsertReservation(ctx, booking); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to insert reservation, compensating")

		if compErr := s.repo.DeleteBooking(ctx, booking.BusinessID, booking.ID); compErr != nil {
			log.Error().Err(compErr).Str("bookingID", booking.ID).Msg("compensation failed, booking partially committed")

			return res, failure.PartialBooking // nolint:wrapcheck
		}

		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.BookingCreated(c, booking); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking created event")
		}

		s.invalidate(c, booking)
	}()

	return res, nil
}

// Cancel hard-deletes both mirrored records of the caller's reservation.
// Occupancy is derived, so the freed slots reappear on the next
// availability read with no further bookkeeping.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if customerID == constant.Empty {
		return failure.Unauthorized("missing principal") // nolint:wrapcheck
	}

	reservation, err := s.repo.GetReservation(ctx, customerID, bookingID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return failure.BookingNotFound // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get reservation")

		return err
	}

	businessSideGone := false

	if err = s.deleteBusinessSide(ctx, reservation); err != nil {
		if err != docstore.ErrNotFound {
			log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to delete business-side booking")

			return err
		}

		businessSideGone = true
	}

	if err = s.repo.DeleteReservation(ctx, customerID, bookingID); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("reservation left behind after business-side delete")

		return failure.PartialCancellation // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.BookingCancelled(c, reservation); err != nil {
			log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to publish booking cancelled event")
		}

		s.invalidate(c, reservation)
	}()

	// one side was already missing: the cancellation took effect, but the
	// caller is told so it can reconcile
	if businessSideGone {
		return failure.PartialCancellation // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) MyReservations(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if customerID == constant.Empty {
		return res, failure.Unauthorized("missing principal") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetReservations, customerID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	reservations, err := s.repo.GetReservations(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, err
	}

	res.FromModels(reservations)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) BusinessBookings(ctx context.Context, businessID, date string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BusinessBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	if date != constant.Empty {
		if _, err = time.Parse(constant.DateFormat, date); err != nil {
			return res, failure.BadRequestFromString("date must be formatted YYYY-MM-DD") // nolint:wrapcheck
		}
	}

	cacheKey := shared.BuildCacheKey(cacheGetBookings, businessID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	exist, err := s.businessRepo.Exist(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check business existence")

		return res, err
	}

	if !exist {
		return res, failure.NotFound("business not found") // nolint:wrapcheck
	}

	bookings, err := s.repo.GetBookings(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, err
	}

	if date != constant.Empty {
		filtered := bookings[:0]
		for _, booking := range bookings {
			if booking.Date == date {
				filtered = append(filtered, booking)
			}
		}
		bookings = filtered
	}

	res.FromModels(bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// freshSlots derives the current slot list straight from the stores,
// bypassing the availability read cache on purpose.
func (s *serviceImpl) freshSlots(ctx context.Context, businessID, serviceID, date string, day scheduleModel.DaySchedule) ([]availabilityModel.Slot, error) {
	bookings, err := s.repo.GetBookings(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, err
	}

	scopedServiceID := constant.Empty
	if s.cfg.App.OccupancyScope == config.OccupancyScopeService {
		scopedServiceID = serviceID
	}

	return availabilityModel.ListSlots(day, availabilityModel.Occupied(bookings, date, scopedServiceID)), nil
}

// deleteBusinessSide removes the business-side record by shared ID,
// falling back to field correlation for records whose two sides carry
// independent IDs. Returns docstore.ErrNotFound when neither lookup finds
// a business-side record.
func (s *serviceImpl) deleteBusinessSide(ctx context.Context, reservation model.Booking) error {
	err := s.repo.DeleteBooking(ctx, reservation.BusinessID, reservation.ID)
	if err == nil || err != docstore.ErrNotFound {
		return err
	}

	bookings, err := s.repo.GetBookings(ctx, reservation.BusinessID)
	if err != nil {
		return err
	}

	for _, booking := range bookings {
		if booking.Correlates(reservation) {
			return s.repo.DeleteBooking(ctx, reservation.BusinessID, booking.ID)
		}
	}

	return docstore.ErrNotFound
}

func (s *serviceImpl) invalidate(ctx context.Context, booking model.Booking) {
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheAvailability, booking.BusinessID))
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetBookings, booking.BusinessID))
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetReservations, booking.CustomerID))
}
