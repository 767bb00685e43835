// Package checkout orchestrates cart-to-order submission: price the cart,
// post the order to the order collaborator, then best-effort decrement
// dessert stock. The order is authoritative; a stock sync failure is
// logged and the workflow still succeeds.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/anasmohamad369/hotelzeeshan/cart"
	"github.com/anasmohamad369/hotelzeeshan/catalog"
	"github.com/anasmohamad369/hotelzeeshan/pricing"
	"github.com/anasmohamad369/hotelzeeshan/stock"
)

var ErrEmptyCart = errors.New("cart is empty")

// PayloadItem is one order line on the wire.
type PayloadItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// OrderPayload is the body sent to the order collaborator.
type OrderPayload struct {
	Items       []PayloadItem `json:"items"`
	Discount    float64       `json:"discount"`
	Total       int           `json:"total"`
	TotalAmount int           `json:"totalAmount"`
}

// OrderPlacer submits an order and returns its token.
type OrderPlacer interface {
	Place(ctx context.Context, payload OrderPayload) (string, error)
}

// StockDecrementer applies clamped stock deductions.
type StockDecrementer interface {
	Decrement(ctx context.Context, items []stock.DecrementItem) error
}

// Receipt is what a successful submission hands back to the caller.
type Receipt struct {
	Token string        `json:"token"`
	Quote pricing.Quote `json:"quote"`
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

type Workflow struct {
	carts  *cart.Store
	orders OrderPlacer
	stock  StockDecrementer

	mu       sync.Mutex
	inflight map[string]*sessionLock
}

func NewWorkflow(carts *cart.Store, orders OrderPlacer, decrementer StockDecrementer) *Workflow {
	return &Workflow{
		carts:    carts,
		orders:   orders,
		stock:    decrementer,
		inflight: make(map[string]*sessionLock),
	}
}

// acquireSession serializes submissions per session so a double-click
// cannot run two workflows over the same cart. Locks are refcounted and
// exist only while a submission holds or waits on them.
func (w *Workflow) acquireSession(sessionID string) *sessionLock {
	w.mu.Lock()
	lock, ok := w.inflight[sessionID]
	if !ok {
		lock = &sessionLock{}
		w.inflight[sessionID] = lock
	}
	lock.refs++
	w.mu.Unlock()

	lock.mu.Lock()
	return lock
}

func (w *Workflow) releaseSession(sessionID string, lock *sessionLock) {
	lock.mu.Unlock()

	w.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(w.inflight, sessionID)
	}
	w.mu.Unlock()
}

// PlaceOrder runs the submission workflow for one session. On order
// failure the cart is untouched and the error is retryable; on success
// the cart is cleared and the discount is reset by dropping it with the
// returned receipt.
func (w *Workflow) PlaceOrder(ctx context.Context, sessionID string, rawDiscount any) (Receipt, error) {
	lock := w.acquireSession(sessionID)
	defer w.releaseSession(sessionID, lock)

	userCart := w.carts.Fetch(sessionID)
	lines := userCart.Lines()
	if len(lines) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	quote := pricing.Compute(userCart.PricingLines(), pricing.ParsePercent(rawDiscount))

	payload := OrderPayload{
		Items:       make([]PayloadItem, 0, len(lines)),
		Discount:    quote.DiscountPercent,
		Total:       quote.Total,
		TotalAmount: quote.TotalAmount,
	}
	for _, l := range lines {
		payload.Items = append(payload.Items, PayloadItem{Name: l.Item, Qty: l.Quantity, Price: l.Price})
	}

	token, err := w.orders.Place(ctx, payload)
	if err != nil {
		return Receipt{}, fmt.Errorf("place order: %w", err)
	}

	// Stock sync is advisory: the order already stands.
	if tracked := dessertItems(lines); len(tracked) > 0 {
		if err := w.stock.Decrement(ctx, tracked); err != nil {
			log.Printf("checkout: stock decrement failed for order %s: %v", token, err)
		}
	}

	userCart.Clear()
	return Receipt{Token: token, Quote: quote}, nil
}

func dessertItems(lines []cart.Line) []stock.DecrementItem {
	var tracked []stock.DecrementItem
	for _, l := range lines {
		if catalog.IsDessert(l.Slug) {
			tracked = append(tracked, stock.DecrementItem{Slug: l.Slug, Quantity: l.Quantity})
		}
	}
	return tracked
}
