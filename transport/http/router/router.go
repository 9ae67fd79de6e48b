package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"bookme/config"
	"bookme/internal/handlers/availability"
	"bookme/internal/handlers/booking"
	"bookme/internal/handlers/business"
	"bookme/internal/handlers/review"
	"bookme/internal/handlers/schedule"
	"bookme/transport/http/middleware"
)

type DomainHandlers struct {
	Availability availability.Handler
	Booking      booking.Handler
	Business     business.Handler
	Review       review.Handler
	Schedule     schedule.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.Auth
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	if r.Config.App.RateLimiter.Enable {
		router.Use(r.AppMiddleware.RateLimit())
	}

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.Auth)

		routerGroup.Route("/businesses", func(businessGroup chi.Router) {
			r.DomainHandlers.Business.Router(businessGroup)
			r.DomainHandlers.Schedule.Router(businessGroup)
			r.DomainHandlers.Review.Router(businessGroup)
			r.DomainHandlers.Availability.Router(businessGroup)
			r.DomainHandlers.Booking.RouterBusiness(businessGroup)
		})

		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.Auth, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
		Config:         cfg,
	}
}
