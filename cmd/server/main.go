package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	mydb "thelo/internal/db"
	"thelo/internal/handlers"
	"thelo/internal/models"
	"thelo/internal/notify"
)

func main() {
	// грузим .env из нескольких мест: текущая папка, родительская, корень репо
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty (check your .env)")
	}

	db := mydb.MustOpen()
	if err := db.AutoMigrate(
		&models.User{},
		&models.SellerProfile{},
		&models.ShopkeeperProfile{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Notification{},
	); err != nil {
		log.Fatal(err)
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	notifier := notify.New(db, notify.MailerFromEnv())

	r := gin.Default()

	// health
	r.GET("/health", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	key := []byte(secret)
	handlers.AuthRoutes(r, db, key)
	handlers.ProfileRoutes(r, db, key)
	handlers.ProductRoutes(r, db, key)
	handlers.OrderRoutes(r, db, key, notifier)
	handlers.NotificationRoutes(r, key, notifier)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server listening on :" + port)
	log.Fatal(r.Run(":" + port))
}
