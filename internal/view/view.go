package view

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fatah2004/KechEx/internal/models"
	"github.com/fatah2004/KechEx/internal/store"
)

// phoneRe is the only validation rule on the order form: exactly ten
// digits, no separators, no country code.
var phoneRe = regexp.MustCompile(`^\d{10}$`)

// timestampLayout mirrors a locale-style wall-clock string, e.g.
// "8/29/2026, 3:04:05 PM".
const timestampLayout = "1/2/2006, 3:04:05 PM"

// User-facing form messages.
const (
	msgInvalidPhone = "Please enter a valid 10-digit phone number."
	msgWriteFailed  = "Error submitting form. Please try again later."
)

// ErrNoProduct is returned when an order is submitted before a product
// has loaded.
var ErrNoProduct = errors.New("NO_PRODUCT_LOADED")

// FormData holds the order form fields as entered by the customer.
type FormData struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Phone    string `json:"phone"`
}

// ProductView owns the transient state of one product detail page for
// one visitor: the loaded product, carousel position, quantity, modal
// and order form. All mutation goes through its methods; the two store
// calls are the only operations performed outside the lock so the rest
// of the view stays responsive while they are in flight.
type ProductView struct {
	store store.Store
	now   func() time.Time

	mu         sync.Mutex
	productID  string
	product    *models.Product
	carousel   Carousel
	quantity   int
	showModal  bool
	form       FormData
	submission Submission

	// gen increments on every product id change; an async fetch result
	// carrying a stale generation is discarded instead of overwriting
	// state that belongs to a newer product id.
	gen uint64
}

// New creates a view for the given product id. Call Load to fetch the
// product.
func New(st store.Store, productID string) *ProductView {
	return &ProductView{
		store:      st,
		now:        time.Now,
		productID:  productID,
		quantity:   1,
		submission: submitIdle(),
	}
}

// ProductID returns the product id the view is mounted on.
func (v *ProductView) ProductID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.productID
}

// Load issues one read of the product document. Lookup misses and read
// failures are logged only; the view stays in its loading state and the
// visitor sees no error.
func (v *ProductView) Load(ctx context.Context) {
	v.mu.Lock()
	id := v.productID
	gen := v.gen
	v.mu.Unlock()

	doc, err := v.store.GetDocument(ctx, store.CollectionProducts, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn().Str("productId", id).Msg("No such product document")
		} else {
			log.Error().Err(err).Str("productId", id).Msg("Error fetching product")
		}
		return
	}

	product, err := models.ProductFromDocument(doc)
	if err != nil {
		log.Error().Err(err).Str("productId", id).Msg("Error decoding product")
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.gen != gen {
		// Superseded by a newer product id while the read was in flight.
		return
	}
	v.product = product
	v.carousel = NewCarousel(len(product.ImageURLs))
}

// SetProductID remounts the view on a different product. All transient
// state resets and the previous product is dropped immediately so a
// stale product is never rendered; the caller must Load again.
func (v *ProductView) SetProductID(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if id == v.productID {
		return
	}
	v.gen++
	v.productID = id
	v.product = nil
	v.carousel = Carousel{}
	v.quantity = 1
	v.showModal = false
	v.form = FormData{}
	v.submission = submitIdle()
}

// SelectImage sets the carousel to a given index. Thumbnail clicks,
// carousel controls, and autoplay all land here so the three navigation
// modes share one position.
func (v *ProductView) SelectImage(i int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.carousel.Select(i)
}

// NextImage advances the carousel by one with wraparound.
func (v *ProductView) NextImage() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.carousel.Next()
}

// PrevImage moves the carousel back by one with wraparound.
func (v *ProductView) PrevImage() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.carousel.Prev()
}

// IncrementQuantity raises the order quantity by one, without bound.
func (v *ProductView) IncrementQuantity() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.quantity++
}

// DecrementQuantity lowers the order quantity by one, flooring at 1.
func (v *ProductView) DecrementQuantity() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.quantity > 1 {
		v.quantity--
	}
}

// OpenModal shows the order form.
func (v *ProductView) OpenModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showModal = true
}

// CloseModal hides the order form and unconditionally resets the form
// fields, error, and success state, whatever the submission was doing.
func (v *ProductView) CloseModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showModal = false
	v.form = FormData{}
	v.submission = submitIdle()
}

// DismissAlert clears the success indicator.
func (v *ProductView) DismissAlert() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.submission.Phase == SubmitSucceeded {
		v.submission = submitIdle()
	}
}

// Submit validates the form and, on a pass, writes exactly one order
// document. A validation reject performs no write. A write failure
// keeps the entered values so the customer can resubmit. Repeated
// submissions are not deduplicated.
func (v *ProductView) Submit(ctx context.Context, form FormData) (Submission, error) {
	v.mu.Lock()
	if v.product == nil {
		v.mu.Unlock()
		return submitIdle(), ErrNoProduct
	}
	v.form = form
	v.submission = submitValidating()
	if !phoneRe.MatchString(form.Phone) {
		v.submission = submitRejected(msgInvalidPhone)
		s := v.submission
		v.mu.Unlock()
		return s, nil
	}

	order := &models.Order{
		Name:      form.Name,
		LastName:  form.LastName,
		Phone:     form.Phone,
		Quantity:  v.quantity,
		ProductID: v.productID,
		Timestamp: v.now().Format(timestampLayout),
	}
	v.submission = submitSubmitting()
	gen := v.gen
	v.mu.Unlock()

	id, err := v.store.CreateDocument(ctx, store.CollectionClients, order.Fields())

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.gen != gen {
		return v.submission, nil
	}
	if err != nil {
		log.Error().Err(err).Str("productId", order.ProductID).Msg("Error adding order document")
		v.submission = submitFailed(msgWriteFailed)
		return v.submission, nil
	}
	log.Info().Str("documentId", id).Str("productId", order.ProductID).Msg("Order document written")
	v.submission = submitSucceeded()
	return v.submission, nil
}

// StartAutoplay advances the carousel on a fixed interval until the
// context is cancelled. Ticks go through the same selection mechanism
// as manual navigation and do nothing until a product with at least two
// images is loaded.
func (v *ProductView) StartAutoplay(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			v.NextImage()
		case <-ctx.Done():
			return
		}
	}
}

// Snapshot is the immutable render state of the view.
type Snapshot struct {
	ProductID    string          `json:"productId"`
	Loaded       bool            `json:"loaded"`
	Product      *models.Product `json:"product,omitempty"`
	CurrentIndex int             `json:"currentIndex"`
	Thumbnails   []Thumbnail     `json:"thumbnails,omitempty"`
	NavEnabled   bool            `json:"navEnabled"`
	Quantity     int             `json:"quantity"`
	ShowModal    bool            `json:"showModal"`
	Form         FormData        `json:"form"`
	Submission   Submission      `json:"submission"`
}

// Snapshot returns a copy of the current view state for rendering.
func (v *ProductView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := Snapshot{
		ProductID:    v.productID,
		Loaded:       v.product != nil,
		CurrentIndex: v.carousel.Index(),
		Thumbnails:   v.carousel.Thumbnails(),
		NavEnabled:   v.carousel.NavEnabled(),
		Quantity:     v.quantity,
		ShowModal:    v.showModal,
		Form:         v.form,
		Submission:   v.submission,
	}
	if v.product != nil {
		p := *v.product
		snap.Product = &p
	}
	return snap
}
