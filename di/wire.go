//go:build wireinject
// +build wireinject

package di

import (
	"bookme/config"
	"bookme/infras/docstore"
	docstorePostgres "bookme/infras/docstore/postgres"
	"bookme/infras/jwt"
	"bookme/infras/kafka"
	"bookme/infras/otel"
	"bookme/infras/postgres"
	"bookme/infras/redis"
	"bookme/internal/events"
	"bookme/shared/cache"
	"bookme/transport/http"
	"bookme/transport/http/middleware"
	"bookme/transport/http/router"

	"github.com/google/wire"

	availabilityService "bookme/internal/domains/availability/service"
	bookingRepository "bookme/internal/domains/booking/repository"
	bookingService "bookme/internal/domains/booking/service"
	businessRepository "bookme/internal/domains/business/repository"
	businessService "bookme/internal/domains/business/service"
	reviewRepository "bookme/internal/domains/review/repository"
	reviewService "bookme/internal/domains/review/service"
	scheduleRepository "bookme/internal/domains/schedule/repository"
	scheduleService "bookme/internal/domains/schedule/service"
	availabilityHandler "bookme/internal/handlers/availability"
	bookingHandler "bookme/internal/handlers/booking"
	businessHandler "bookme/internal/handlers/business"
	reviewHandler "bookme/internal/handlers/review"
	scheduleHandler "bookme/internal/handlers/schedule"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	docstorePostgres.New,
	wire.Bind(new(docstore.Store), new(*docstorePostgres.Store)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var businessDomain = wire.NewSet(
	businessRepository.New,
	businessService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	events.NewPublisher,
	bookingService.New,
)

var domains = wire.NewSet(
	businessDomain,
	reviewDomain,
	scheduleDomain,
	availabilityDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	bookingHandler.New,
	businessHandler.New,
	reviewHandler.New,
	scheduleHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
