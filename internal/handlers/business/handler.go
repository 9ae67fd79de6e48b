package business

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bookme/infras/otel"
	"bookme/internal/domains/business/model/dto"
	"bookme/internal/domains/business/service"
	"bookme/shared/constant"
	"bookme/shared/validator"
	"bookme/transport/http/response"
)

type Handler struct {
	service service.Business
	otel    otel.Otel
}

func New(service service.Business, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.CreateBusiness)
	router.Get("/", handler.GetBusinesses)
	router.Get("/{id}", handler.GetBusinessByID)
	router.Post("/{id}/services", handler.CreateService)
	router.Get("/{id}/services", handler.GetServices)
	router.Get("/{id}/services/{serviceID}", handler.GetServiceByID)
}

// CreateBusiness handles the creation of a new business.
// @Summary Create a new business
// @Description Create a business owned by the authenticated user, with the default weekly schedule.
// @Tags Business
// @Accept json
// @Produce json
// @Param request body dto.CreateBusinessRequest true "Create Business Request"
// @Success 201 {object} response.Data[dto.BusinessResponse] "Created business"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses [post]
// @Security BearerAuth
func (handler *Handler) CreateBusiness(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBusiness")
	defer scope.End()

	req := dto.CreateBusinessRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create business")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBusinesses retrieves every registered business.
// @Summary Get all businesses
// @Tags Business
// @Produce json
// @Success 200 {object} response.Data[dto.GetBusinessesResponse] "List of businesses"
// @Failure 500 {object} response.Error
// @Router /v1/businesses [get]
// @Security BearerAuth
func (handler *Handler) GetBusinesses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusinesses")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get businesses")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBusinessByID retrieves a single business.
// @Summary Get a business by ID
// @Tags Business
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} response.Data[dto.BusinessResponse] "Business"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBusinessByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusinessByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get business")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateService adds a bookable service to a business.
// @Summary Create a service
// @Description Create a bookable service under a business; its duration drives slot occupancy.
// @Tags Business
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Data[dto.ServiceResponse] "Created service"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses/{id}/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	businessID := chi.URLParam(request, constant.RequestParamID)

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateService(ctx, req, businessID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetServiceByID retrieves a single service of a business.
// @Summary Get a service by ID
// @Tags Business
// @Produce json
// @Param id path string true "Business ID"
// @Param serviceID path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse] "Service"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses/{id}/services/{serviceID} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	businessID := chi.URLParam(request, constant.RequestParamID)
	serviceID := chi.URLParam(request, constant.RequestParamServiceID)

	res, err := handler.service.GetService(ctx, businessID, serviceID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetServices lists the services of a business.
// @Summary Get services of a business
// @Tags Business
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} response.Data[dto.GetServicesResponse] "List of services"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses/{id}/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	businessID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetServices(ctx, businessID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
