package dto

import (
	"strings"

	"bookme/internal/domains/review/model"
	"bookme/shared/constant"
	gDto "bookme/shared/dto"
	gModel "bookme/shared/model"
	"bookme/shared/timezone"
)

type UpsertReviewRequest struct {
	Stars   int    `json:"stars"   validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=500"`
}

func (u *UpsertReviewRequest) ToModel(businessID, customer string) model.Review {
	return model.Review{
		BusinessID: businessID,
		CustomerID: customer,
		Stars:      u.Stars,
		Comment:    strings.TrimSpace(u.Comment),
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			CreatedBy: customer,
		},
	}
}

type ReviewResponse struct {
	BusinessID string `json:"business_id"`
	CustomerID string `json:"customer_id"`
	Stars      int    `json:"stars"`
	Comment    string `json:"comment"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.BusinessID = model.BusinessID
	r.CustomerID = model.CustomerID
	r.Stars = model.Stars
	r.Comment = model.Comment
	r.Metadata.FromModel(model.Metadata)

	if model.UpdatedAt != nil {
		r.UpdatedAt = timezone.Format(*model.UpdatedAt, constant.TimestampFormat)
	}
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalData int              `json:"total_data"`
}

func (g *GetReviewsResponse) FromModels(models []model.Review) {
	g.Reviews = make([]ReviewResponse, len(models))
	for i, m := range models {
		g.Reviews[i].FromModel(m)
	}
	g.TotalData = len(models)
}
