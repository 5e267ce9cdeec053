package infra

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"canteen/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	// .env is optional outside local development.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dsn := os.Getenv("POSTGRES_URL")

	// TranslateError lets unique-constraint violations surface as
	// gorm.ErrDuplicatedKey, which the ledger writes depend on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.MenuItem{},
		&db_models.PurchaseRequest{},
		&db_models.MealPayment{},
		&db_models.Subscription{},
		&db_models.MealIssued{},
		&db_models.Review{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed")
	}
}
