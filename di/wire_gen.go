// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"bookme/config"
	"bookme/infras/docstore"
	postgres2 "bookme/infras/docstore/postgres"
	"bookme/infras/jwt"
	"bookme/infras/kafka"
	"bookme/infras/otel"
	"bookme/infras/postgres"
	"bookme/infras/redis"
	service2 "bookme/internal/domains/availability/service"
	repository3 "bookme/internal/domains/booking/repository"
	service3 "bookme/internal/domains/booking/service"
	repository2 "bookme/internal/domains/business/repository"
	service4 "bookme/internal/domains/business/service"
	repository4 "bookme/internal/domains/review/repository"
	service5 "bookme/internal/domains/review/service"
	"bookme/internal/domains/schedule/repository"
	"bookme/internal/domains/schedule/service"
	"bookme/internal/events"
	"bookme/internal/handlers/availability"
	"bookme/internal/handlers/booking"
	"bookme/internal/handlers/business"
	"bookme/internal/handlers/review"
	"bookme/internal/handlers/schedule"
	"bookme/shared/cache"
	"bookme/transport/http"
	"bookme/transport/http/middleware"
	"bookme/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	store := postgres2.New(connection, otelOtel)
	repositorySchedule := repository.New(store, otelOtel)
	repositoryBusiness := repository2.New(store, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceSchedule := service.New(repositorySchedule, repositoryBusiness, configConfig, redisCache, otelOtel)
	repositoryBooking := repository3.New(store, otelOtel)
	serviceAvailability := service2.New(serviceSchedule, repositoryBooking, configConfig, redisCache, otelOtel)
	handler := availability.New(serviceAvailability, otelOtel)
	kafkaClient := kafka.New(configConfig)
	publisher := events.NewPublisher(kafkaClient, configConfig, otelOtel)
	serviceBooking := service3.New(repositoryBooking, repositoryBusiness, serviceSchedule, publisher, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	serviceBusiness := service4.New(repositoryBusiness, repositorySchedule, configConfig, redisCache, otelOtel)
	businessHandler := business.New(serviceBusiness, otelOtel)
	repositoryReview := repository4.New(store, otelOtel)
	serviceReview := service5.New(repositoryReview, repositoryBusiness, configConfig, redisCache, otelOtel)
	reviewHandler := review.New(serviceReview, otelOtel)
	scheduleHandler := schedule.New(serviceSchedule, otelOtel)
	domainHandlers := router.DomainHandlers{
		Availability: handler,
		Booking:      bookingHandler,
		Business:     businessHandler,
		Review:       reviewHandler,
		Schedule:     scheduleHandler,
	}
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	jwtJWT := jwt.New(configConfig)
	auth := middleware.NewAuthMiddleware(jwtJWT, otelOtel)
	routerRouter := router.New(domainHandlers, appMiddleware, auth, configConfig)
	httpHTTP := http.New(configConfig, routerRouter)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, postgres2.New, wire.Bind(new(docstore.Store), new(*postgres2.Store)))

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var businessDomain = wire.NewSet(repository2.New, service4.New)

var reviewDomain = wire.NewSet(repository4.New, service5.New)

var scheduleDomain = wire.NewSet(repository.New, service.New)

var availabilityDomain = wire.NewSet(service2.New)

var bookingDomain = wire.NewSet(repository3.New, events.NewPublisher, service3.New)

var domains = wire.NewSet(
	businessDomain,
	reviewDomain,
	scheduleDomain,
	availabilityDomain,
	bookingDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), availability.New, booking.New, business.New, review.New, schedule.New, router.New)
