package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bookme/infras/otel"
	"bookme/internal/domains/review/model/dto"
	"bookme/internal/domains/review/service"
	"bookme/shared/constant"
	"bookme/shared/validator"
	"bookme/transport/http/response"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/{id}/reviews", handler.UpsertReview)
	router.Get("/{id}/reviews", handler.GetReviews)
}

// UpsertReview creates or replaces the caller's review of a business.
// @Summary Review a business
// @Description Creates the caller's review, or replaces it when one already exists.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param request body dto.UpsertReviewRequest true "Upsert Review Request"
// @Success 200 {object} response.Data[dto.ReviewResponse] "Stored review"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses/{id}/reviews [post]
// @Security BearerAuth
func (handler *Handler) UpsertReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertReview")
	defer scope.End()

	businessID := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpsertReviewRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Upsert(ctx, req, businessID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to store review")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("review stored")
	response.WithJSON(writer, http.StatusOK, res)
}

// GetReviews lists the reviews of a business, newest first.
// @Summary Get reviews of a business
// @Tags Review
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/businesses/{id}/reviews [get]
// @Security BearerAuth
func (handler *Handler) GetReviews(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	businessID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetAll(ctx, businessID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
