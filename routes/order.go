package routes

import (
	orderControllers "github.com/anasmohamad369/hotelzeeshan/controllers/order"
	"github.com/anasmohamad369/hotelzeeshan/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// Create a new order
	r.POST("/place-order", orderControllers.PlaceOrderHandler(db))

	// Fetch orders, optionally bounded by ?startDate=&endDate=
	r.GET("/orders", orderControllers.GetOrdersHandler(db))

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

	// Sales aggregates for the back office
	r.GET("/stats", orderControllers.StatsHandler(db))

	// Mutations used by the orders admin page
	r.DELETE("/delete-order", orderControllers.DeleteOrderHandler(db))
	r.PUT("/update-order", orderControllers.UpdateOrderHandler(db))

	// Excel export (admin only)
	r.GET("/orders/export", middleware.ValidateAPIKey, orderControllers.ExportOrdersToExcel(db))
}
