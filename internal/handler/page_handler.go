package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"

	"github.com/fatah2004/KechEx/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PageHandler serves the server-rendered product detail page.
type PageHandler struct {
	views *ViewHandler
	// The catalog description arrives as markup from the document store.
	// It is sanitized before rendering rather than trusted verbatim.
	sanitizer *bluemonday.Policy
}

// NewPageHandler constructs a PageHandler sharing the view sessions.
func NewPageHandler(views *ViewHandler) *PageHandler {
	return &PageHandler{
		views:     views,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// pageData is the template input for the product page.
type pageData struct {
	View        view.Snapshot
	Description template.HTML
}

// GetProductPage renders the product detail page for the routed product
// id. An unloaded product renders the loading state.
func (h *PageHandler) GetProductPage(c *gin.Context) {
	v := h.views.attach(c)
	snap := v.Snapshot()

	data := pageData{View: snap}
	if snap.Product != nil {
		data.Description = template.HTML(h.sanitizer.Sanitize(snap.Product.Description))
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pageTemplates.ExecuteTemplate(c.Writer, "product.html", data); err != nil {
		log.Error().Err(err).Str("productId", snap.ProductID).Msg("Failed to render product page")
	}
}
