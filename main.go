package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anasmohamad369/hotelzeeshan/auth"
	"github.com/anasmohamad369/hotelzeeshan/cart"
	"github.com/anasmohamad369/hotelzeeshan/checkout"
	"github.com/anasmohamad369/hotelzeeshan/models"
	"github.com/anasmohamad369/hotelzeeshan/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.StockRecord{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Session carts live in memory; they are gone after checkout or expiry
	carts := cart.NewStore(auth.SessionTTL)

	// Checkout talks to the order and stock services over HTTP. By default
	// both point at this process so a single binary serves everything.
	selfURL := "http://127.0.0.1:" + serverPort()
	orderAPI := os.Getenv("ORDER_API_URL")
	if orderAPI == "" {
		orderAPI = selfURL
	}
	stockAPI := os.Getenv("STOCK_API_URL")
	if stockAPI == "" {
		stockAPI = selfURL
	}
	workflow := checkout.NewWorkflow(carts, checkout.NewOrderClient(orderAPI), checkout.NewStockClient(stockAPI))

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, carts, workflow)

	// Sweep expired guest carts every hour
	go startSessionSweeper(carts, time.Hour)

	// Start server
	port := serverPort()
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func serverPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startSessionSweeper drops expired guest carts on a fixed interval
func startSessionSweeper(carts *cart.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if removed := carts.SweepExpired(); removed > 0 {
			log.Printf("🗑️ Removed %d expired guest carts", removed)
		}
	}
}
