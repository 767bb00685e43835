package stockControllers

import (
	"net/http"

	"github.com/anasmohamad369/hotelzeeshan/catalog"
	"github.com/anasmohamad369/hotelzeeshan/models"
	"github.com/anasmohamad369/hotelzeeshan/stock"
	"github.com/gin-gonic/gin"
)

type UpsertRequest struct {
	Slug  string `json:"slug" binding:"required"`
	Stock int    `json:"stock"`
}

type BulkUpsertRequest struct {
	Updates []stock.Update `json:"updates" binding:"required"`
}

type DecrementRequest struct {
	Items []stock.DecrementItem `json:"items" binding:"required"`
}

// StockResponse is the wire shape of a record: {slug, stock, item}.
type StockResponse struct {
	Slug  string `json:"slug"`
	Stock int    `json:"stock"`
	Item  string `json:"item"`
}

func toResponse(records []models.StockRecord) []StockResponse {
	out := make([]StockResponse, 0, len(records))
	for _, r := range records {
		out = append(out, StockResponse{Slug: r.Slug, Stock: r.Stock, Item: r.Item})
	}
	return out
}

// GET /stock/desserts
func ListDessertStock(ledger *stock.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := ledger.ListByCategory(catalog.CategoryDesserts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stock"})
			return
		}
		c.JSON(http.StatusOK, toResponse(records))
	}
}

// PUT /stock/desserts
func UpdateDessertStock(ledger *stock.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		record, err := ledger.Upsert(req.Slug, req.Stock)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}
		c.JSON(http.StatusOK, StockResponse{Slug: record.Slug, Stock: record.Stock, Item: record.Item})
	}
}

// PUT /stock/desserts/bulk
func BulkUpdateDessertStock(ledger *stock.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkUpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		records, err := ledger.UpsertBulk(req.Updates)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}
		c.JSON(http.StatusOK, toResponse(records))
	}
}

// POST /stock/desserts/initialize
func InitializeDessertStock(ledger *stock.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ledger.Initialize(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize stock"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Desserts initialized successfully"})
	}
}

// POST /stock/decrement
func DecrementStock(ledger *stock.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DecrementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Items array is required"})
			return
		}

		updated, err := ledger.Decrement(req.Items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Stock updated successfully",
			"updated": toResponse(updated),
		})
	}
}
