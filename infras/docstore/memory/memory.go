// Package memory is an in-memory docstore.Store used by tests and local
// development. Operations are serialized by a single mutex, which also makes
// it a faithful stand-in for the commit re-check discipline: concurrent
// commits observe each other's writes.
package memory

import (
	"context"
	"sort"
	"sync"

	"bookme/infras/docstore"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

var _ docstore.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		collections: make(map[string]map[string][]byte),
	}
}

func (s *Store) Get(_ context.Context, collection, id string) (docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return docstore.Document{}, docstore.ErrNotFound
	}

	return docstore.Document{ID: id, Data: clone(data)}, nil
}

func (s *Store) List(_ context.Context, collection string) ([]docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col := s.collections[collection]

	docs := make([]docstore.Document, 0, len(col))
	for id, data := range col {
		docs = append(docs, docstore.Document{ID: id, Data: clone(data)})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	return docs, nil
}

func (s *Store) Create(_ context.Context, collection, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[collection]
	if !ok {
		col = make(map[string][]byte)
		s.collections[collection] = col
	}

	if _, exists := col[id]; exists {
		return docstore.ErrAlreadyExists
	}

	col[id] = clone(data)

	return nil
}

func (s *Store) Set(_ context.Context, collection, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[collection]
	if !ok {
		col = make(map[string][]byte)
		s.collections[collection] = col
	}

	col[id] = clone(data)

	return nil
}

func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collections[collection]
	if _, ok := col[id]; !ok {
		return docstore.ErrNotFound
	}

	delete(col, id)

	return nil
}

func clone(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	return out
}
