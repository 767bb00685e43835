package routes

import (
	"github.com/anasmohamad369/hotelzeeshan/cart"
	"github.com/anasmohamad369/hotelzeeshan/checkout"
	cartControllers "github.com/anasmohamad369/hotelzeeshan/controllers/cart"
	checkoutControllers "github.com/anasmohamad369/hotelzeeshan/controllers/checkout"
	"github.com/anasmohamad369/hotelzeeshan/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes registers the session cart and checkout endpoints.
// Requires a guest session token.
func SetupCartRoutes(r *gin.Engine, carts *cart.Store, workflow *checkout.Workflow) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateSession)
	{
		cartGroup.GET("", cartControllers.GetCart(carts))                       // GET /cart
		cartGroup.POST("/items", cartControllers.AddCartItem(carts))            // POST /cart/items
		cartGroup.DELETE("/items/:slug", cartControllers.RemoveCartItem(carts)) // DELETE /cart/items/:slug
		cartGroup.DELETE("", cartControllers.ClearCart(carts))                  // DELETE /cart
	}

	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.ValidateSession)
	{
		checkoutGroup.POST("", checkoutControllers.PlaceOrder(workflow)) // POST /checkout
	}
}
