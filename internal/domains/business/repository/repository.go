package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bookme/infras/docstore"
	"bookme/infras/otel"
	"bookme/internal/domains/business/model"
	gRepo "bookme/shared/repository"
)

type Business interface {
	Insert(ctx context.Context, business model.Business) error
	Get(ctx context.Context, id string) (model.Business, error)
	GetAll(ctx context.Context) ([]model.Business, error)
	Exist(ctx context.Context, id string) (bool, error)
	InsertService(ctx context.Context, service model.Service) error
	GetService(ctx context.Context, businessID, serviceID string) (model.Service, error)
	GetAllServices(ctx context.Context, businessID string) ([]model.Service, error)
}

type repositoryImpl struct {
	businesses gRepo.Repository[model.Business]
	services   gRepo.Repository[model.Service]
}

func New(store docstore.Store, otel otel.Otel) Business {
	return &repositoryImpl{
		businesses: gRepo.NewRepository[model.Business](model.EntityName, store, otel),
		services:   gRepo.NewRepository[model.Service](model.ServiceEntityName, store, otel),
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, business model.Business) error {
	return repo.businesses.Create(ctx, model.CollectionName, business.ID, business)
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (model.Business, error) {
	return repo.businesses.Get(ctx, model.CollectionName, id)
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Business, error) {
	return repo.businesses.List(ctx, model.CollectionName)
}

func (repo *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	_, err := repo.businesses.Get(ctx, model.CollectionName, id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (repo *repositoryImpl) InsertService(ctx context.Context, service model.Service) error {
	return repo.services.Create(ctx, model.ServiceCollection(service.BusinessID), service.ID, service)
}

func (repo *repositoryImpl) GetService(ctx context.Context, businessID, serviceID string) (model.Service, error) {
	return repo.services.Get(ctx, model.ServiceCollection(businessID), serviceID)
}

func (repo *repositoryImpl) GetAllServices(ctx context.Context, businessID string) ([]model.Service, error) {
	return repo.services.List(ctx, model.ServiceCollection(businessID))
}
