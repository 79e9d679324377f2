package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process document store. It backs local development and
// is the substitute used by tests for both store operations.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]map[string]*Document

	// GetErr and CreateErr, when set, force the next calls to fail.
	// Used by tests to exercise read and write failure paths.
	GetErr    error
	CreateErr error
}

// NewMemory creates an empty in-memory document store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]map[string]*Document)}
}

// GetDocument fetches one document by collection and id.
func (s *Memory) GetDocument(_ context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.GetErr != nil {
		return nil, s.GetErr
	}
	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

// CreateDocument inserts a new document with a generated uuid.
func (s *Memory) CreateDocument(_ context.Context, collection string, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return "", s.CreateErr
	}
	return s.put(collection, uuid.New().String(), fields), nil
}

// Seed inserts a document with a caller-chosen id, for fixtures.
func (s *Memory) Seed(collection, id string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(collection, id, fields)
}

// Count returns the number of documents in a collection.
func (s *Memory) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs[collection])
}

// All returns every document in a collection, in no particular order.
func (s *Memory) All(collection string) []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Document, 0, len(s.docs[collection]))
	for _, doc := range s.docs[collection] {
		out = append(out, doc)
	}
	return out
}

func (s *Memory) put(collection, id string, fields map[string]any) string {
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]*Document)
	}
	s.docs[collection][id] = &Document{
		Collection: collection,
		ID:         id,
		Fields:     fields,
		CreatedAt:  time.Now().UTC(),
	}
	return id
}
