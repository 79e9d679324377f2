package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fatah2004/KechEx/internal/session"
	"github.com/fatah2004/KechEx/internal/utils"
	"github.com/fatah2004/KechEx/internal/view"
)

// sessionCookie keys the visitor's view session.
const sessionCookie = "kechex_session"

// ViewHandler exposes the product view interactions as session-scoped
// JSON endpoints. Every response carries the resulting view snapshot so
// the page can re-render from it.
type ViewHandler struct {
	sessions   *session.Manager
	sessionTTL time.Duration
}

// NewViewHandler constructs a ViewHandler.
func NewViewHandler(sessions *session.Manager, sessionTTL time.Duration) *ViewHandler {
	return &ViewHandler{sessions: sessions, sessionTTL: sessionTTL}
}

// attach resolves the visitor's view for the routed product id, minting
// a session cookie on first contact.
func (h *ViewHandler) attach(c *gin.Context) *view.ProductView {
	sid, err := c.Cookie(sessionCookie)
	if err != nil || sid == "" {
		sid = uuid.New().String()
		c.SetCookie(sessionCookie, sid, int(h.sessionTTL.Seconds()), "/", "", false, true)
	}
	return h.sessions.Attach(c.Request.Context(), sid, c.Param("productId"))
}

func (h *ViewHandler) respond(c *gin.Context, v *view.ProductView, message string) {
	utils.Success(c, 200, message, gin.H{"view": v.Snapshot()})
}

// GetState returns the current view snapshot.
func (h *ViewHandler) GetState(c *gin.Context) {
	h.respond(c, h.attach(c), "View state retrieved")
}

// SelectImage sets the carousel to the requested index.
func (h *ViewHandler) SelectImage(c *gin.Context) {
	var req struct {
		Index *int `json:"index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "index is required")
		return
	}

	v := h.attach(c)
	v.SelectImage(*req.Index)
	h.respond(c, v, "Image selected")
}

// NextImage advances the carousel by one with wraparound.
func (h *ViewHandler) NextImage(c *gin.Context) {
	v := h.attach(c)
	v.NextImage()
	h.respond(c, v, "Carousel advanced")
}

// PrevImage moves the carousel back by one with wraparound.
func (h *ViewHandler) PrevImage(c *gin.Context) {
	v := h.attach(c)
	v.PrevImage()
	h.respond(c, v, "Carousel moved back")
}

// IncrementQuantity raises the order quantity by one.
func (h *ViewHandler) IncrementQuantity(c *gin.Context) {
	v := h.attach(c)
	v.IncrementQuantity()
	h.respond(c, v, "Quantity incremented")
}

// DecrementQuantity lowers the order quantity by one, flooring at 1.
func (h *ViewHandler) DecrementQuantity(c *gin.Context) {
	v := h.attach(c)
	v.DecrementQuantity()
	h.respond(c, v, "Quantity decremented")
}

// OpenModal shows the order form.
func (h *ViewHandler) OpenModal(c *gin.Context) {
	v := h.attach(c)
	v.OpenModal()
	h.respond(c, v, "Modal opened")
}

// CloseModal hides the order form and resets its transient state.
func (h *ViewHandler) CloseModal(c *gin.Context) {
	v := h.attach(c)
	v.CloseModal()
	h.respond(c, v, "Modal closed")
}

// DismissAlert clears the success indicator.
func (h *ViewHandler) DismissAlert(c *gin.Context) {
	v := h.attach(c)
	v.DismissAlert()
	h.respond(c, v, "Alert dismissed")
}

// SubmitOrder runs the order submission protocol. Validation rejects
// and write failures are view states, not HTTP errors: the snapshot in
// the response carries the outcome either way.
func (h *ViewHandler) SubmitOrder(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		LastName string `json:"lastName" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "name, lastName, and phone are required")
		return
	}

	v := h.attach(c)
	_, err := v.Submit(c.Request.Context(), view.FormData{
		Name:     req.Name,
		LastName: req.LastName,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, view.ErrNoProduct) {
			utils.Error(c, 409, "NO_PRODUCT_LOADED", "Product has not loaded yet")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to submit order")
		return
	}
	h.respond(c, v, "Order processed")
}
