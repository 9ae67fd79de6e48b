package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bookme/infras/otel"
	"bookme/internal/domains/schedule/model/dto"
	"bookme/internal/domains/schedule/service"
	"bookme/shared/constant"
	"bookme/shared/validator"
	"bookme/transport/http/response"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/{id}/schedule", handler.GetSchedule)
	router.Put("/{id}/schedule", handler.UpdateSchedule)
}

// GetSchedule retrieves the weekly opening hours of a business.
// @Summary Get the weekly schedule of a business
// @Description Returns opening hours per weekday. Businesses without a stored schedule get the default template.
// @Tags Schedule
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Weekly schedule"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses/{id}/schedule [get]
// @Security BearerAuth
func (handler *Handler) GetSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	businessID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, businessID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateSchedule replaces the weekly opening hours of a business.
// @Summary Update the weekly schedule of a business
// @Description Replaces the whole week. Weekdays left out of the request are stored as closed.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param request body dto.UpdateScheduleRequest true "Update Schedule Request"
// @Success 200 {object} response.Message "Schedule updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses/{id}/schedule [put]
// @Security BearerAuth
func (handler *Handler) UpdateSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSchedule")
	defer scope.End()

	businessID := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateScheduleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, businessID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update schedule")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("schedule updated")
	response.WithMessage(writer, http.StatusOK, "schedule updated")
}
