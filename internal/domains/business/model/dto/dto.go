package dto

import (
	"bookme/internal/domains/business/model"
	gDto "bookme/shared/dto"
	gModel "bookme/shared/model"
	"bookme/shared/timezone"

	"github.com/google/uuid"
)

type CreateBusinessRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
}

func (c *CreateBusinessRequest) ToModel(owner string) model.Business {
	return model.Business{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		OwnerID: owner,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			CreatedBy: owner,
		},
	}
}

type BusinessResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	OwnerID string `json:"owner_id"`
	gDto.Metadata
}

func (b *BusinessResponse) FromModel(model model.Business) {
	b.ID = model.ID
	b.Name = model.Name
	b.Email = model.Email
	b.OwnerID = model.OwnerID
	b.Metadata.FromModel(model.Metadata)
}

type GetBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
	TotalData  int                `json:"total_data"`
}

func (g *GetBusinessesResponse) FromModels(models []model.Business) {
	g.Businesses = make([]BusinessResponse, len(models))
	for i, m := range models {
		g.Businesses[i].FromModel(m)
	}
	g.TotalData = len(models)
}

type CreateServiceRequest struct {
	Name            string  `json:"name"             validate:"required,max=100"`
	Price           float64 `json:"price"            validate:"omitempty,min=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=1"`
}

func (c *CreateServiceRequest) ToModel(businessID, user string) model.Service {
	return model.Service{
		ID:              uuid.NewString(),
		BusinessID:      businessID,
		Name:            c.Name,
		Price:           c.Price,
		DurationMinutes: c.DurationMinutes,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			CreatedBy: user,
		},
	}
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	BusinessID      string  `json:"business_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	gDto.Metadata
}

func (s *ServiceResponse) FromModel(model model.Service) {
	s.ID = model.ID
	s.BusinessID = model.BusinessID
	s.Name = model.Name
	s.Price = model.Price
	s.DurationMinutes = model.DurationMinutes
	s.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalData int               `json:"total_data"`
}

func (g *GetServicesResponse) FromModels(models []model.Service) {
	g.Services = make([]ServiceResponse, len(models))
	for i, m := range models {
		g.Services[i].FromModel(m)
	}
	g.TotalData = len(models)
}
