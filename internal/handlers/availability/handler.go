package availability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bookme/infras/otel"
	"bookme/internal/domains/availability/service"
	"bookme/shared/constant"
	"bookme/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/{id}/availability", handler.GetSlots)
}

// GetSlots lists the bookable slots of a business for one date.
// @Summary Get availability slots
// @Description Returns the slot grid for the given date, each slot tagged free or occupied.
// @Tags Availability
// @Produce json
// @Param id path string true "Business ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param service_id query string false "Service ID, required when occupancy scope is per service"
// @Success 200 {object} response.Data[dto.GetSlotsResponse] "Slots for the date"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses/{id}/availability [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	businessID := chi.URLParam(request, constant.RequestParamID)
	serviceID := request.URL.Query().Get(constant.RequestQueryServiceID)
	date := request.URL.Query().Get(constant.RequestQueryDate)

	res, err := handler.service.Slots(ctx, businessID, serviceID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
