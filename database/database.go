package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ATripathi13/Human-Resource-Management-System/config"
	"github.com/ATripathi13/Human-Resource-Management-System/models"
)

// Connect opens the database and creates the schema if it is absent.
// The returned handle is shared for the process lifetime; gorm scopes a
// session per call, so handlers never hold connections across requests.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Employee{},
		&models.Attendance{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	return db
}
