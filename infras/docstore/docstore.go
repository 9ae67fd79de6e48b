// Package docstore defines the generic document-store abstraction the domain
// repositories are built on: collections of JSON documents addressed by a
// slash-joined collection path plus a document ID. Point lookup, listing the
// children of a collection, and per-document create/set/delete are the only
// operations the core needs; any backend providing them can be substituted.
package docstore

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrAlreadyExists = errors.New("document already exists")
)

// Document is one stored record: its ID within the collection and its raw
// JSON payload.
type Document struct {
	ID   string
	Data []byte
}

type Store interface {
	// Get returns the document at collection/id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)
	// List returns all documents in a collection, ordered by ID.
	List(ctx context.Context, collection string) ([]Document, error)
	// Create stores a new document; ErrAlreadyExists if the ID is taken.
	Create(ctx context.Context, collection, id string, data []byte) error
	// Set stores a document, overwriting any existing data.
	Set(ctx context.Context, collection, id string, data []byte) error
	// Delete removes the document at collection/id, or returns ErrNotFound.
	Delete(ctx context.Context, collection, id string) error
}

// Collection joins path segments into a collection path, e.g.
// Collection("businesses", bizID, "bookings") → "businesses/b1/bookings".
func Collection(segments ...string) string {
	return strings.Join(segments, "/")
}
