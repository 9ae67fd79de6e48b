package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bookme/infras/otel"
	"bookme/internal/domains/booking/model/dto"
	"bookme/internal/domains/booking/service"
	"bookme/shared/constant"
	"bookme/shared/validator"
	"bookme/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/myreservations", handler.GetMyReservations)
		routerGroup.Delete("/{id}", handler.CancelBooking)
	})
}

// RouterBusiness registers the business-scoped booking routes.
func (handler *Handler) RouterBusiness(router chi.Router) {
	router.Get("/{id}/bookings", handler.GetBusinessBookings)
}

// CreateBooking books a slot for the authenticated customer.
// @Summary Create a booking
// @Description Books the requested slot when it is free, writing the business booking and the customer reservation under one ID.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Commit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("booking created")
	response.WithJSON(writer, http.StatusCreated, res)
}

// CancelBooking cancels a reservation of the authenticated customer.
// @Summary Cancel a booking
// @Description Deletes the customer reservation and the mirrored business booking, freeing the occupied slots.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("booking cancelled")
	response.WithMessage(writer, http.StatusOK, "booking cancelled")
}

// GetMyReservations lists the reservations of the authenticated customer.
// @Summary Get my reservations
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of reservations"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/myreservations [get]
// @Security BearerAuth
func (handler *Handler) GetMyReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	res, err := handler.service.MyReservations(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBusinessBookings lists the bookings of a business for one date.
// @Summary Get bookings of a business
// @Tags Booking
// @Produce json
// @Param id path string true "Business ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBusinessBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusinessBookings")
	defer scope.End()

	businessID := chi.URLParam(request, constant.RequestParamID)
	date := request.URL.Query().Get(constant.RequestQueryDate)

	res, err := handler.service.BusinessBookings(ctx, businessID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get business bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
