package checkoutControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anasmohamad369/hotelzeeshan/cart"
	"github.com/anasmohamad369/hotelzeeshan/catalog"
	"github.com/anasmohamad369/hotelzeeshan/checkout"
	"github.com/anasmohamad369/hotelzeeshan/stock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrders struct {
	placed []checkout.OrderPayload
}

func (s *stubOrders) Place(ctx context.Context, payload checkout.OrderPayload) (string, error) {
	s.placed = append(s.placed, payload)
	return "tok-ctrl", nil
}

type stubStock struct{}

func (stubStock) Decrement(ctx context.Context, items []stock.DecrementItem) error { return nil }

func newTestRouter(carts *cart.Store, orders *stubOrders) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// stand-in for the session middleware
	r.Use(func(c *gin.Context) {
		c.Set("session_id", "guest_test")
	})

	wf := checkout.NewWorkflow(carts, orders, stubStock{})
	r.POST("/checkout", PlaceOrder(wf))
	return r
}

func fillCart(t *testing.T, carts *cart.Store, slug string, times int) {
	t.Helper()
	u, ok := catalog.FindUnit(slug)
	require.True(t, ok)
	c := carts.Fetch("guest_test")
	for i := 0; i < times; i++ {
		c.Add(u)
	}
}

func postCheckout(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderWithDiscount(t *testing.T) {
	carts := cart.NewStore(time.Hour)
	orders := &stubOrders{}
	r := newTestRouter(carts, orders)

	fillCart(t, carts, "paya", 2)

	w := postCheckout(r, `{"discount": 10}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		Quote struct {
			Discount    float64 `json:"discount"`
			TotalAmount int     `json:"totalAmount"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok-ctrl", resp.Token)
	assert.Equal(t, 10.0, resp.Quote.Discount)
	assert.Equal(t, 270, resp.Quote.TotalAmount)
}

func TestPlaceOrderWithoutBody(t *testing.T) {
	carts := cart.NewStore(time.Hour)
	orders := &stubOrders{}
	r := newTestRouter(carts, orders)

	fillCart(t, carts, "paya", 1)

	// discount is optional; no body means no discount
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, orders.placed, 1)
	assert.Equal(t, 0.0, orders.placed[0].Discount)
	assert.Equal(t, 150, orders.placed[0].TotalAmount)
	assert.Empty(t, carts.Fetch("guest_test").Lines())
}

func TestPlaceOrderMalformedJSON(t *testing.T) {
	carts := cart.NewStore(time.Hour)
	r := newTestRouter(carts, &stubOrders{})

	fillCart(t, carts, "paya", 1)

	w := postCheckout(r, `{"discount":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, carts.Fetch("guest_test").Lines(), 1, "cart untouched on bad input")
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	carts := cart.NewStore(time.Hour)
	r := newTestRouter(carts, &stubOrders{})

	w := postCheckout(r, `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cart is empty", resp["error"])
}

func TestPlaceOrderMissingSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	wf := checkout.NewWorkflow(cart.NewStore(time.Hour), &stubOrders{}, stubStock{})
	r.POST("/checkout", PlaceOrder(wf))

	w := postCheckout(r, `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
