// Package postgres backs the docstore with a single documents table
// (collection, id, data JSONB) over the read/write connection pair.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookme/infras/docstore"
	"bookme/infras/otel"
	"bookme/infras/postgres"
	"bookme/shared/constant"
	"bookme/shared/logger"
	"bookme/shared/timezone"
)

const (
	otelScopeName = "docstore"

	queryGet    = `SELECT id, data FROM documents WHERE collection = $1 AND id = $2`
	queryList   = `SELECT id, data FROM documents WHERE collection = $1 ORDER BY id`
	queryCreate = `INSERT INTO documents (collection, id, data, created_at) VALUES ($1, $2, $3, $4) ON CONFLICT (collection, id) DO NOTHING`
	querySet    = `INSERT INTO documents (collection, id, data, created_at) VALUES ($1, $2, $3, $4) ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data`
	queryDelete = `DELETE FROM documents WHERE collection = $1 AND id = $2`
)

type row struct {
	ID   string `db:"id"`
	Data []byte `db:"data"`
}

type Store struct {
	db   *postgres.Connection
	otel otel.Otel
}

var _ docstore.Store = (*Store)(nil)

func New(db *postgres.Connection, ot otel.Otel) *Store {
	return &Store{
		db:   db,
		otel: ot,
	}
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)
	scope.SetAttribute(constant.OtelDocumentAttributeKey, id)

	var res row
	err := s.db.Read.GetContext(ctx, &res, queryGet, collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return docstore.Document{}, docstore.ErrNotFound
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return docstore.Document{}, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}

	return docstore.Document{ID: res.ID, Data: res.Data}, nil
}

func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".List")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)

	var rows []row
	err := s.db.Read.SelectContext(ctx, &rows, queryList, collection)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}

	docs := make([]docstore.Document, len(rows))
	for i, r := range rows {
		docs[i] = docstore.Document{ID: r.ID, Data: r.Data}
	}

	return docs, nil
}

func (s *Store) Create(ctx context.Context, collection, id string, data []byte) error {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Create")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)
	scope.SetAttribute(constant.OtelDocumentAttributeKey, id)

	res, err := s.db.Write.ExecContext(ctx, queryCreate, collection, id, data, timezone.Now())
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to create document %s/%s: %w", collection, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read create result for %s/%s: %w", collection, id, err)
	}

	if affected == 0 {
		return docstore.ErrAlreadyExists
	}

	return nil
}

func (s *Store) Set(ctx context.Context, collection, id string, data []byte) error {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Set")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)
	scope.SetAttribute(constant.OtelDocumentAttributeKey, id)

	_, err := s.db.Write.ExecContext(ctx, querySet, collection, id, data, timezone.Now())
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to set document %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collection)
	scope.SetAttribute(constant.OtelDocumentAttributeKey, id)

	res, err := s.db.Write.ExecContext(ctx, queryDelete, collection, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result for %s/%s: %w", collection, id, err)
	}

	if affected == 0 {
		return docstore.ErrNotFound
	}

	return nil
}
