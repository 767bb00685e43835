package routes

import (
	stockControllers "github.com/anasmohamad369/hotelzeeshan/controllers/stock"
	"github.com/anasmohamad369/hotelzeeshan/middleware"
	"github.com/anasmohamad369/hotelzeeshan/stock"
	"github.com/gin-gonic/gin"
)

func SetupStockRoutes(r *gin.Engine, ledger *stock.Ledger) {
	stockGroup := r.Group("/stock")
	{
		// Storefront reads; checkout posts decrements
		stockGroup.GET("/desserts", stockControllers.ListDessertStock(ledger))
		stockGroup.POST("/decrement", stockControllers.DecrementStock(ledger))

		// Admin writes
		adminStock := stockGroup.Group("/desserts")
		adminStock.Use(middleware.ValidateAPIKey)
		{
			adminStock.PUT("", stockControllers.UpdateDessertStock(ledger))
			adminStock.PUT("/bulk", stockControllers.BulkUpdateDessertStock(ledger))
			adminStock.POST("/initialize", stockControllers.InitializeDessertStock(ledger))
		}
	}
}
