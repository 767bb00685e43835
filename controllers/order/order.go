package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/anasmohamad369/hotelzeeshan/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderItemInput struct {
	Name  string  `json:"name" binding:"required"`
	Qty   int     `json:"qty" binding:"required,min=1"`
	Price float64 `json:"price"`
}

type PlaceOrderRequest struct {
	Items       []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	Discount    float64          `json:"discount"`
	Total       int              `json:"total"`
	TotalAmount int              `json:"totalAmount"`
}

type DeleteOrderRequest struct {
	ID uint `json:"id" binding:"required"`
}

type UpdateOrderRequest struct {
	ID        uint              `json:"id" binding:"required"`
	OrderData PlaceOrderRequest `json:"orderData" binding:"required"`
}

// -------- Helpers --------

// Generate unique order token, e.g. 20250908130500-<uuid4>
func generateOrderToken() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func buildOrderItems(inputs []OrderItemInput) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, models.OrderItem{Name: in.Name, Qty: in.Qty, Price: in.Price})
	}
	return items
}

// -------- Handlers --------

// POST /place-order
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order := models.Order{
			Token:       generateOrderToken(),
			Items:       buildOrderItems(req.Items),
			Discount:    req.Discount,
			Total:       req.Total,
			TotalAmount: req.TotalAmount,
			Date:        time.Now(),
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("date DESC")

		if raw := c.Query("startDate"); raw != "" {
			start, err := time.ParseInLocation("2006-01-02", raw, time.Local)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate"})
				return
			}
			query = query.Where("date >= ?", start)
		}
		if raw := c.Query("endDate"); raw != "" {
			end, err := time.ParseInLocation("2006-01-02", raw, time.Local)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate"})
				return
			}
			// endDate is inclusive
			query = query.Where("date < ?", end.AddDate(0, 0, 1))
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// DELETE /delete-order
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", req.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			res := tx.Where("id = ?", req.ID).Delete(&models.Order{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

// PUT /update-order
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&order, "id = ?", req.ID).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}

			order.Items = buildOrderItems(req.OrderData.Items)
			order.Discount = req.OrderData.Discount
			order.Total = req.OrderData.Total
			order.TotalAmount = req.OrderData.TotalAmount
			return tx.Save(&order).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// StatRow aggregates sales per item name.
type StatRow struct {
	ItemName     string  `gorm:"column:item_name" json:"_id"`
	TotalQty     int     `gorm:"column:total_qty" json:"totalQty"`
	TotalRevenue float64 `gorm:"column:total_revenue" json:"totalRevenue"`
}

// GET /stats
func StatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []StatRow
		err := db.Model(&models.OrderItem{}).
			Select("name AS item_name, SUM(qty) AS total_qty, SUM(qty * price) AS total_revenue").
			Group("name").
			Order("total_revenue DESC").
			Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if rows == nil {
			rows = []StatRow{}
		}
		c.JSON(http.StatusOK, rows)
	}
}
