package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fatah2004/KechEx/internal/store"
)

func setupCatalogTest(t *testing.T) (*gin.Engine, *store.Memory) {
	gin.SetMode(gin.TestMode)
	st := store.NewMemory()

	r := gin.New()
	r.POST("/v1/catalog/products", NewCatalogHandler(st).CreateProduct)
	r.GET("/v1/health", NewHealthHandler(st).GetHealth)
	return r, st
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	r, st := setupCatalogTest(t)

	body, _ := json.Marshal(gin.H{
		"productName":  "Leather Bag",
		"productPrice": 49.99,
		"description":  "<p>Handmade</p>",
		"imageUrls":    []string{"u1", "u2"},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/catalog/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			ProductID string `json:"productId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.ProductID)

	doc, err := st.GetDocument(context.Background(), store.CollectionProducts, resp.Data.ProductID)
	require.NoError(t, err)
	assert.Equal(t, "Leather Bag", doc.Fields["productName"])
}

func TestCatalogHandler_CreateProductRequiresName(t *testing.T) {
	r, st := setupCatalogTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/catalog/products", bytes.NewReader([]byte(`{"productPrice": 5}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, st.Count(store.CollectionProducts))
}

func TestHealthHandler_GetHealth(t *testing.T) {
	r, _ := setupCatalogTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"connected"`)
}
