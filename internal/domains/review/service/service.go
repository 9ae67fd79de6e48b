package service

import (
	"context"
	"sort"

	"bookme/config"
	"bookme/infras/docstore"
	"bookme/infras/otel"
	businessRepo "bookme/internal/domains/business/repository"
	"bookme/internal/domains/review/model/dto"
	"bookme/internal/domains/review/repository"
	"bookme/shared"
	"bookme/shared/cache"
	"bookme/shared/constant"
	"bookme/shared/failure"
	"bookme/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllReview = "review:gets"
)

type Review interface {
	Upsert(ctx context.Context, req dto.UpsertReviewRequest, businessID string) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, businessID string) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo         repository.Review
	businessRepo businessRepo.Business
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Review, businessRepo businessRepo.Business, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:         repo,
		businessRepo: businessRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Upsert writes the customer's review of a business. A customer holds one
// review per business: re-reviewing replaces stars and comment, keeps the
// original creation metadata and stamps the update time.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertReviewRequest, businessID string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if customerID == "" {
		return res, failure.Unauthorized("missing principal") // nolint:wrapcheck
	}

	exist, err := s.businessRepo.Exist(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check business existence")

		return res, err
	}

	if !exist {
		return res, failure.NotFound("business not found") // nolint:wrapcheck
	}

	review := req.ToModel(businessID, customerID)

	existing, err := s.repo.Get(ctx, businessID, customerID)
	switch {
	case err == nil:
		review.Metadata = existing.Metadata
		now := timezone.Now()
		review.UpdatedAt = &now
	case err != docstore.ErrNotFound:
		log.Error().Err(err).Msg("failed to get existing review")

		return res, err
	}

	if err = s.repo.Upsert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to store review")

		return res, err
	}

	res.FromModel(review)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAllReview, businessID))
	}()

	return res, nil
}

// GetAll lists a business's reviews, newest first.
func (s *serviceImpl) GetAll(ctx context.Context, businessID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReviews")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllReview, businessID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

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

	reviews, err := s.repo.GetAll(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, err
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})

	res.FromModels(reviews)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}
