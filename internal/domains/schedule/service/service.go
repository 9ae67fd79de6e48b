package service

import (
	"context"

	"bookme/config"
	"bookme/infras/docstore"
	"bookme/infras/otel"
	businessRepo "bookme/internal/domains/business/repository"
	"bookme/internal/domains/schedule/model"
	"bookme/internal/domains/schedule/model/dto"
	"bookme/internal/domains/schedule/repository"
	"bookme/shared"
	"bookme/shared/cache"
	"bookme/shared/constant"
	"bookme/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSchedule = "schedule:get"

	// availability responses derive from the schedule, so schedule writes
	// flush them too.
	cacheAvailability = "availability:slots"
)

type Schedule interface {
	Get(ctx context.Context, businessID string) (dto.ScheduleResponse, error)
	GetWeekly(ctx context.Context, businessID string) (model.WeeklySchedule, error)
	Update(ctx context.Context, req dto.UpdateScheduleRequest, businessID string) error
}

type serviceImpl struct {
	repo         repository.Schedule
	businessRepo businessRepo.Business
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Schedule, businessRepo businessRepo.Business, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Schedule {
	return &serviceImpl{
		repo:         repo,
		businessRepo: businessRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, businessID string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSchedule, businessID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedule")

		return res, nil
	}

	weekly, err := s.GetWeekly(ctx, businessID)
	if err != nil {
		return res, err
	}

	res.FromModel(weekly)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule to cache")
		}
	}()

	return res, nil
}

// GetWeekly loads the stored weekly schedule, falling back to the default
// template when the business has never saved one. The fallback is not
// persisted; it becomes durable on the first Update.
func (s *serviceImpl) GetWeekly(ctx context.Context, businessID string) (res model.WeeklySchedule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWeeklySchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.businessRepo.Exist(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check business existence")

		return nil, err
	}

	if !exist {
		return nil, failure.NotFound("business not found") // nolint:wrapcheck
	}

	weekly, err := s.repo.Get(ctx, businessID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return model.DefaultTemplate(), nil
		}

		log.Error().Err(err).Msg("failed to get schedule")

		return nil, err
	}

	return weekly, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateScheduleRequest, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.businessRepo.Exist(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check business existence")

		return err
	}

	if !exist {
		return failure.NotFound("business not found") // nolint:wrapcheck
	}

	weekly, err := req.ToModel()
	if err != nil {
		return err
	}

	if err = s.repo.Set(ctx, businessID, weekly); err != nil {
		log.Error().Err(err).Msg("failed to store schedule")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetSchedule)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheAvailability, businessID))
	}()

	return nil
}
