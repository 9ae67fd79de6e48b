package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bookme/infras/docstore"
	"bookme/infras/otel"
	"bookme/internal/domains/review/model"
	gRepo "bookme/shared/repository"
)

type Review interface {
	Upsert(ctx context.Context, review model.Review) error
	Get(ctx context.Context, businessID, customerID string) (model.Review, error)
	GetAll(ctx context.Context, businessID string) ([]model.Review, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
}

func New(store docstore.Store, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, store, otel),
	}
}

func collection(businessID string) string {
	return docstore.Collection("businesses", businessID, model.CollectionName)
}

// Upsert writes the review keyed by its customer, so a customer can never
// hold more than one review per business.
func (repo *repositoryImpl) Upsert(ctx context.Context, review model.Review) error {
	return repo.Repository.Set(ctx, collection(review.BusinessID), review.CustomerID, review)
}

func (repo *repositoryImpl) Get(ctx context.Context, businessID, customerID string) (model.Review, error) {
	return repo.Repository.Get(ctx, collection(businessID), customerID)
}

func (repo *repositoryImpl) GetAll(ctx context.Context, businessID string) ([]model.Review, error) {
	return repo.Repository.List(ctx, collection(businessID))
}
