package service

import (
	"context"
	"time"

	"bookme/config"
	"bookme/infras/otel"
	"bookme/internal/domains/availability/model"
	"bookme/internal/domains/availability/model/dto"
	bookingRepo "bookme/internal/domains/booking/repository"
	scheduleService "bookme/internal/domains/schedule/service"
	"bookme/shared"
	"bookme/shared/cache"
	"bookme/shared/constant"
	"bookme/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheSlots = "availability:slots"

type Availability interface {
	Slots(ctx context.Context, businessID, serviceID, date string) (dto.GetSlotsResponse, error)
}

type serviceImpl struct {
	schedules scheduleService.Schedule
	bookings  bookingRepo.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(schedules scheduleService.Schedule, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		schedules: schedules,
		bookings:  bookings,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Slots derives the slot list for a business day. The occupancy is always
// recomputed from the current booking records; the cache in front is a
// short-lived read-side convenience that booking writes invalidate, and
// the booking committer never reads it.
func (s *serviceImpl) Slots(ctx context.Context, businessID, serviceID, date string) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsed, err := time.Parse(constant.DateFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted YYYY-MM-DD") // nolint:wrapcheck
	}

	scopedServiceID := s.occupancyServiceID(serviceID)
	if s.cfg.App.OccupancyScope == config.OccupancyScopeService && scopedServiceID == constant.Empty {
		return res, failure.BadRequestFromString("service_id is required") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheSlots, businessID, scopedServiceID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slots")

		return res, nil
	}

	weekly, err := s.schedules.GetWeekly(ctx, businessID)
	if err != nil {
		return res, err
	}

	bookings, err := s.bookings.GetBookings(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, err
	}

	day := weekly.Day(parsed.Weekday())
	slots := model.ListSlots(day, model.Occupied(bookings, date, scopedServiceID))

	res.FromModels(businessID, serviceID, date, slots)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slots to cache")
		}
	}()

	return res, nil
}

// occupancyServiceID applies the configured occupancy scope: under
// per-business scope every booking blocks the whole business, so the
// service filter is dropped.
func (s *serviceImpl) occupancyServiceID(serviceID string) string {
	if s.cfg.App.OccupancyScope == config.OccupancyScopeService {
		return serviceID
	}

	return constant.Empty
}
