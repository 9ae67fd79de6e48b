package service

import (
	"context"
	"fmt"

	"bookme/config"
	"bookme/infras/docstore"
	"bookme/infras/otel"
	"bookme/internal/domains/business/model/dto"
	"bookme/internal/domains/business/repository"
	scheduleModel "bookme/internal/domains/schedule/model"
	scheduleRepo "bookme/internal/domains/schedule/repository"
	"bookme/shared"
	"bookme/shared/cache"
	"bookme/shared/constant"
	"bookme/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBusiness    = "business:get"
	cacheGetAllBusiness = "business:gets"
	cacheGetAllService  = "service:gets"
	cacheGetService     = "service:get"
)

type Business interface {
	Create(ctx context.Context, req dto.CreateBusinessRequest) (dto.BusinessResponse, error)
	Get(ctx context.Context, id string) (dto.BusinessResponse, error)
	GetAll(ctx context.Context) (dto.GetBusinessesResponse, error)
	CreateService(ctx context.Context, req dto.CreateServiceRequest, businessID string) (dto.ServiceResponse, error)
	GetService(ctx context.Context, businessID, serviceID string) (dto.ServiceResponse, error)
	GetServices(ctx context.Context, businessID string) (dto.GetServicesResponse, error)
}

type serviceImpl struct {
	repo         repository.Business
	scheduleRepo scheduleRepo.Schedule
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Business, scheduleRepo scheduleRepo.Schedule, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Business {
	return &serviceImpl{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create stores the business and issues its default weekly schedule so
// availability works before the owner edits opening hours.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBusinessRequest) (res dto.BusinessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBusiness")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	business := req.ToModel(user)

	if err = s.repo.Insert(ctx, business); err != nil {
		log.Error().Err(err).Msg("failed to insert business")

		return res, err
	}

	if err = s.scheduleRepo.Set(ctx, business.ID, scheduleModel.DefaultTemplate()); err != nil {
		log.Error().Err(err).Str("businessID", business.ID).Msg("failed to store default schedule")

		return res, fmt.Errorf("failed to store default schedule: %w", err)
	}

	res.FromModel(business)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBusiness)
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BusinessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBusiness")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBusiness, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for business")

		return res, nil
	}

	business, err := s.repo.Get(ctx, id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return res, failure.NotFound("business not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get business")

		return res, err
	}

	res.FromModel(business)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save business to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBusinessesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBusinesses")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := cacheGetAllBusiness

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for businesses")

		return res, nil
	}

	businesses, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get businesses")

		return res, err
	}

	res.FromModels(businesses)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save businesses to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateService(ctx context.Context, req dto.CreateServiceRequest, businessID string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check business existence")

		return res, err
	}

	if !exist {
		return res, failure.NotFound("business not found") // nolint:wrapcheck
	}

	service := req.ToModel(businessID, user)

	if err = s.repo.InsertService(ctx, service); err != nil {
		log.Error().Err(err).Msg("failed to insert service")

		return res, err
	}

	res.FromModel(service)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
	}()

	return res, nil
}

func (s *serviceImpl) GetService(ctx context.Context, businessID, serviceID string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetService")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetService, businessID, serviceID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service")

		return res, nil
	}

	service, err := s.repo.GetService(ctx, businessID, serviceID)
	if err != nil {
		if err == docstore.ErrNotFound {
			return res, failure.NotFound("service not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get service")

		return res, err
	}

	res.FromModel(service)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetServices(ctx context.Context, businessID string) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllService, businessID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	exist, err := s.repo.Exist(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check business existence")

		return res, err
	}

	if !exist {
		return res, failure.NotFound("business not found") // nolint:wrapcheck
	}

	services, err := s.repo.GetAllServices(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, err
	}

	res.FromModels(services)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}
