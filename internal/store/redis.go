package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis stores each document as a JSON value under doc:{collection}:{id}.
// Documents have no TTL: the catalog and order records are durable.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed document store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func docKey(collection, id string) string {
	return fmt.Sprintf("doc:%s:%s", collection, id)
}

// GetDocument fetches one document by collection and id.
func (s *Redis) GetDocument(ctx context.Context, collection, id string) (*Document, error) {
	raw, err := s.client.Get(ctx, docKey(collection, id)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document %s/%s: %w", collection, id, err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// CreateDocument inserts a new document with a generated uuid.
func (s *Redis) CreateDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	doc := Document{
		Collection: collection,
		ID:         uuid.New().String(),
		Fields:     fields,
		CreatedAt:  time.Now().UTC(),
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	if err := s.client.Set(ctx, docKey(collection, doc.ID), raw, 0).Err(); err != nil {
		return "", fmt.Errorf("create document in %s: %w", collection, err)
	}
	return doc.ID, nil
}
