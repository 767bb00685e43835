package cartControllers

import (
	"net/http"

	"github.com/anasmohamad369/hotelzeeshan/cart"
	"github.com/anasmohamad369/hotelzeeshan/catalog"
	"github.com/anasmohamad369/hotelzeeshan/pricing"
	"github.com/gin-gonic/gin"
)

type AddItemInput struct {
	Slug string `json:"slug" binding:"required"`
}

func sessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return val.(string), true
}

func cartView(userCart *cart.Cart) gin.H {
	lines := userCart.Lines()
	return gin.H{
		"items":    lines,
		"count":    userCart.TotalCount(),
		"subtotal": pricing.Subtotal(userCart.PricingLines()),
	}
}

// GET /cart
func GetCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartView(carts.Fetch(id)))
	}
}

// POST /cart/items
func AddCartItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		unit, found := catalog.FindUnit(input.Slug)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
			return
		}

		userCart := carts.Fetch(id)
		userCart.Add(unit)
		c.JSON(http.StatusCreated, cartView(userCart))
	}
}

// DELETE /cart/items/:slug
func RemoveCartItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		userCart := carts.Fetch(id)
		userCart.Remove(c.Param("slug"))
		c.JSON(http.StatusOK, cartView(userCart))
	}
}

// DELETE /cart
func ClearCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		userCart := carts.Fetch(id)
		userCart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
