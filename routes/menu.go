package routes

import (
	menuControllers "github.com/anasmohamad369/hotelzeeshan/controllers/menu"
	"github.com/anasmohamad369/hotelzeeshan/stock"
	"github.com/gin-gonic/gin"
)

func SetupMenuRoutes(r *gin.Engine, ledger *stock.Ledger) {
	r.GET("/menu", menuControllers.GetMenu(ledger)) // GET /menu
}
