package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bookme/infras/docstore"
	"bookme/infras/otel"
	"bookme/internal/domains/schedule/model"
	gRepo "bookme/shared/repository"
)

type Schedule interface {
	Get(ctx context.Context, businessID string) (model.WeeklySchedule, error)
	Set(ctx context.Context, businessID string, schedule model.WeeklySchedule) error
}

type repositoryImpl struct {
	gRepo.Repository[model.WeeklySchedule]
}

func New(store docstore.Store, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WeeklySchedule](model.EntityName, store, otel),
	}
}

func collection(businessID string) string {
	return docstore.Collection("businesses", businessID, model.CollectionName)
}

func (repo *repositoryImpl) Get(ctx context.Context, businessID string) (model.WeeklySchedule, error) {
	return repo.Repository.Get(ctx, collection(businessID), model.DocumentID)
}

func (repo *repositoryImpl) Set(ctx context.Context, businessID string, schedule model.WeeklySchedule) error {
	return repo.Repository.Set(ctx, collection(businessID), model.DocumentID, schedule)
}
