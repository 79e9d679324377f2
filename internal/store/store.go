package store

import (
	"context"
	"errors"
	"time"
)

// Collection names used by the storefront.
const (
	CollectionProducts = "products"
	CollectionClients  = "clients"
)

// ErrNotFound is returned when a document does not exist in a collection.
var ErrNotFound = errors.New("DOCUMENT_NOT_FOUND")

// Document is a schemaless record addressed by collection name + id.
type Document struct {
	Collection string         `json:"collection"`
	ID         string         `json:"id"`
	Fields     map[string]any `json:"fields"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// Store is the two-operation document store contract. The handlers and the
// product view depend only on this interface so tests can substitute the
// in-memory backend.
type Store interface {
	// GetDocument fetches a single document. Returns ErrNotFound when the
	// collection has no document with the given id.
	GetDocument(ctx context.Context, collection, id string) (*Document, error)

	// CreateDocument appends a new document with a generated id and
	// returns that id. Existing documents are never mutated.
	CreateDocument(ctx context.Context, collection string, fields map[string]any) (string, error)
}
