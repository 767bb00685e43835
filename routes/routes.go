package routes

import (
	"github.com/anasmohamad369/hotelzeeshan/cart"
	"github.com/anasmohamad369/hotelzeeshan/checkout"
	"github.com/anasmohamad369/hotelzeeshan/stock"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Store, workflow *checkout.Workflow) {
	ledger := stock.NewLedger(db)

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, carts)

	// Storefront: menu, session cart, checkout
	SetupMenuRoutes(r, ledger)
	SetupCartRoutes(r, carts, workflow)

	// Stock ledger
	SetupStockRoutes(r, ledger)

	// Order persistence + back office
	SetupOrderRoutes(r, db)
}
