package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fatah2004/KechEx/internal/models"
	"github.com/fatah2004/KechEx/internal/store"
	"github.com/fatah2004/KechEx/internal/utils"
)

// CatalogHandler is the ingest surface for the external catalog process:
// it creates product documents. The storefront itself never mutates them.
type CatalogHandler struct {
	store store.Store
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(st store.Store) *CatalogHandler {
	return &CatalogHandler{store: st}
}

// CreateProduct writes a new product document and returns its id.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req struct {
		ProductName  string   `json:"productName" binding:"required"`
		ProductPrice float64  `json:"productPrice"`
		Description  string   `json:"description"`
		ImageURLs    []string `json:"imageUrls"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "productName is required")
		return
	}

	product := &models.Product{
		ProductName:  req.ProductName,
		ProductPrice: req.ProductPrice,
		Description:  req.Description,
		ImageURLs:    req.ImageURLs,
	}
	id, err := h.store.CreateDocument(c.Request.Context(), store.CollectionProducts, product.Fields())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create product")
		return
	}

	utils.Success(c, 201, "Product created", gin.H{"productId": id})
}
