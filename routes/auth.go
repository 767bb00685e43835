package routes

import (
	"github.com/anasmohamad369/hotelzeeshan/auth"
	"github.com/anasmohamad369/hotelzeeshan/cart"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(r *gin.Engine, carts *cart.Store) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession(carts)) // POST /auth/guest
	}
}
