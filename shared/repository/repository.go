package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"bookme/infras/docstore"
	"bookme/infras/otel"
	"bookme/shared/constant"
	"bookme/shared/logger"
)

// Repository is a typed accessor over a docstore collection family. Domain
// repositories embed it and supply the collection paths; T is the document
// payload type, marshalled as JSON.
type Repository[T any] struct {
	store  docstore.Store
	otel   otel.Otel
	entity string
}

func NewRepository[T any](entityName string, store docstore.Store, otl otel.Otel) Repository[T] {
	return Repository[T]{
		store:  store,
		otel:   otl,
		entity: entityName,
	}
}

// Get unmarshals the document at collection/id; docstore.ErrNotFound passes
// through untouched so callers can map it to their own not-found failure.
func (repo *Repository[T]) Get(ctx context.Context, collection, id string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	var zero T

	doc, err := repo.store.Get(ctx, collection, id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return zero, err
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return zero, fmt.Errorf("failed to get %s: %w", repo.entity, err)
	}

	if err = json.Unmarshal(doc.Data, &zero); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return zero, fmt.Errorf("failed to decode %s document: %w", repo.entity, err)
	}

	return zero, nil
}

// List unmarshals every document in a collection, in ID order.
func (repo *Repository[T]) List(ctx context.Context, collection string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	docs, err := repo.store.List(ctx, collection)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list %s: %w", repo.entity, err)
	}

	models := make([]T, len(docs))
	for i, doc := range docs {
		if err = json.Unmarshal(doc.Data, &models[i]); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to decode %s document: %w", repo.entity, err)
		}
	}

	return models, nil
}

// Create marshals and stores a new document under collection/id.
func (repo *Repository[T]) Create(ctx context.Context, collection, id string, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Create", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	data, err := json.Marshal(model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to encode %s document: %w", repo.entity, err)
	}

	if err = repo.store.Create(ctx, collection, id, data); err != nil {
		if err == docstore.ErrAlreadyExists {
			return err
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to create %s: %w", repo.entity, err)
	}

	return nil
}

// Set marshals and stores a document, overwriting existing data.
func (repo *Repository[T]) Set(ctx context.Context, collection, id string, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Set", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	data, err := json.Marshal(model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to encode %s document: %w", repo.entity, err)
	}

	if err = repo.store.Set(ctx, collection, id, data); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to set %s: %w", repo.entity, err)
	}

	return nil
}

// Delete removes collection/id; docstore.ErrNotFound passes through.
func (repo *Repository[T]) Delete(ctx context.Context, collection, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	if err := repo.store.Delete(ctx, collection, id); err != nil {
		if err == docstore.ErrNotFound {
			return err
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete %s: %w", repo.entity, err)
	}

	return nil
}
