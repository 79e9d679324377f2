package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostgresTest(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewPostgres(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestPostgres_GetDocument(t *testing.T) {
	expectedSQL := `SELECT collection, id, fields, created_at FROM documents WHERE collection = \$1 AND id = \$2 LIMIT 1`

	t.Run("returns decoded document", func(t *testing.T) {
		s, mock := setupPostgresTest(t)
		now := time.Now().UTC()

		mock.ExpectQuery(expectedSQL).
			WithArgs(CollectionProducts, "P1").
			WillReturnRows(
				sqlmock.NewRows([]string{"collection", "id", "fields", "created_at"}).
					AddRow(CollectionProducts, "P1", []byte(`{"productName":"Leather Bag","productPrice":49.99}`), now),
			)

		doc, err := s.GetDocument(context.Background(), CollectionProducts, "P1")
		require.NoError(t, err)
		assert.Equal(t, "P1", doc.ID)
		assert.Equal(t, "Leather Bag", doc.Fields["productName"])
		assert.Equal(t, 49.99, doc.Fields["productPrice"])
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		s, mock := setupPostgresTest(t)

		mock.ExpectQuery(expectedSQL).
			WithArgs(CollectionProducts, "absent").
			WillReturnRows(sqlmock.NewRows([]string{"collection", "id", "fields", "created_at"}))

		doc, err := s.GetDocument(context.Background(), CollectionProducts, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, doc)
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		s, mock := setupPostgresTest(t)

		mock.ExpectQuery(expectedSQL).
			WithArgs(CollectionProducts, "P1").
			WillReturnError(errors.New("connection reset"))

		_, err := s.GetDocument(context.Background(), CollectionProducts, "P1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgres_CreateDocument(t *testing.T) {
	expectedSQL := `INSERT INTO documents \(collection,id,fields\) VALUES \(\$1,\$2,\$3\)`

	t.Run("inserts and returns generated id", func(t *testing.T) {
		s, mock := setupPostgresTest(t)

		mock.ExpectExec(expectedSQL).
			WithArgs(CollectionClients, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := s.CreateDocument(context.Background(), CollectionClients, map[string]any{
			"name": "Amine", "purchased": false,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure is wrapped", func(t *testing.T) {
		s, mock := setupPostgresTest(t)

		mock.ExpectExec(expectedSQL).
			WithArgs(CollectionClients, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(errors.New("write refused"))

		id, err := s.CreateDocument(context.Background(), CollectionClients, map[string]any{"name": "Amine"})
		assert.Error(t, err)
		assert.Empty(t, id)
	})
}
