package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Postgres stores documents in a single JSONB-backed table.
type Postgres struct {
	db *sqlx.DB
	sq sq.StatementBuilderType
}

// NewPostgres creates a Postgres-backed document store.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetDocument fetches one document by collection and id.
func (s *Postgres) GetDocument(ctx context.Context, collection, id string) (*Document, error) {
	query, args, err := s.sq.
		Select("collection", "id", "fields", "created_at").
		From("documents").
		Where(sq.Eq{"collection": collection, "id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var row struct {
		Collection string    `db:"collection"`
		ID         string    `db:"id"`
		Fields     []byte    `db:"fields"`
		CreatedAt  time.Time `db:"created_at"`
	}
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get document %s/%s: %w", collection, id, err)
	}

	doc := &Document{
		Collection: row.Collection,
		ID:         row.ID,
		CreatedAt:  row.CreatedAt,
	}
	if err := json.Unmarshal(row.Fields, &doc.Fields); err != nil {
		return nil, fmt.Errorf("decode document fields: %w", err)
	}
	return doc, nil
}

// CreateDocument inserts a new document with a generated uuid.
func (s *Postgres) CreateDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode document fields: %w", err)
	}

	id := uuid.New().String()
	query, args, err := s.sq.
		Insert("documents").
		Columns("collection", "id", "fields").
		Values(collection, id, payload).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("create document in %s: %w", collection, err)
	}
	return id, nil
}
