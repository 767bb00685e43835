package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anasmohamad369/hotelzeeshan/cart"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(carts *cart.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// stand-in for the session middleware
	r.Use(func(c *gin.Context) {
		c.Set("session_id", "guest_test")
	})

	r.GET("/cart", GetCart(carts))
	r.POST("/cart/items", AddCartItem(carts))
	r.DELETE("/cart/items/:slug", RemoveCartItem(carts))
	r.DELETE("/cart", ClearCart(carts))
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type cartResponse struct {
	Items    []cart.Line `json:"items"`
	Count    int         `json:"count"`
	Subtotal float64     `json:"subtotal"`
}

func TestAddAndGetCart(t *testing.T) {
	carts := cart.NewStore(time.Hour)
	r := newTestRouter(carts)

	w := doJSON(r, http.MethodPost, "/cart/items", gin.H{"slug": "paya"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/cart/items", gin.H{"slug": "paya"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 300.0, resp.Subtotal)
}

func TestAddUnknownSlug(t *testing.T) {
	carts := cart.NewStore(time.Hour)
	r := newTestRouter(carts)

	w := doJSON(r, http.MethodPost, "/cart/items", gin.H{"slug": "no-such-item"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/cart/items", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveAndClear(t *testing.T) {
	carts := cart.NewStore(time.Hour)
	r := newTestRouter(carts)

	doJSON(r, http.MethodPost, "/cart/items", gin.H{"slug": "butter-naan"})
	doJSON(r, http.MethodPost, "/cart/items", gin.H{"slug": "butter-naan"})

	w := doJSON(r, http.MethodDelete, "/cart/items/butter-naan", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)

	w = doJSON(r, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, carts.Fetch("guest_test").Lines())
}

func TestMissingSessionIsUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	carts := cart.NewStore(time.Hour)
	r := gin.New()
	r.GET("/cart", GetCart(carts))

	w := doJSON(r, http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
