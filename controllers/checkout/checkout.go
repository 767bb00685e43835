package checkoutControllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/anasmohamad369/hotelzeeshan/checkout"
	"github.com/gin-gonic/gin"
)

// Discount arrives as the user typed it, so it may be a number, a string,
// or missing; the pricing engine coerces it.
type CheckoutRequest struct {
	Discount any `json:"discount"`
}

// POST /checkout
func PlaceOrder(workflow *checkout.Workflow) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionVal, exists := c.Get("session_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// Discount is optional; an empty body means no discount.
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		receipt, err := workflow.PlaceOrder(c.Request.Context(), sessionVal.(string), req.Discount)
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to place order. Please try again."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed successfully",
			"token":   receipt.Token,
			"quote":   receipt.Quote,
		})
	}
}
