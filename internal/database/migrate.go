package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/Billmike/MR-API/internal/models"
)

// RunMigrations brings the schema up to date. The unique indexes created
// here are the authoritative guard for the username and recipe-name
// invariants; handler-level existence checks are best-effort UX on top.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		log.Printf("Using GORM auto-migration for SQLite")
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Like{},
		&models.Review{},
		&models.Follow{},
		&models.BlockedUser{},
	)
}
