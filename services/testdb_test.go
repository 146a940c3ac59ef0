package services

import (
	"testing"
	"time"

	"hotel-management-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB builds an isolated in-memory database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A fresh connection would get a fresh :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Guest{},
		&models.Staff{},
		&models.Room{},
		&models.Service{},
		&models.Reservation{},
		&models.Payment{},
		&models.RoomServiceCharge{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return d
}

func createRoom(t *testing.T, db *gorm.DB, number string, rent float64) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber: number,
		Category:   models.CategorySingle,
		Rent:       rent,
		Status:     models.RoomAvailable,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create room %s: %v", number, err)
	}
	return room
}

func createGuest(t *testing.T, db *gorm.DB, name, email string) models.Guest {
	t.Helper()
	guest := models.Guest{Name: name, Email: email}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("create guest %s: %v", email, err)
	}
	return guest
}

func kindOf(t *testing.T, err error) ErrKind {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	return KindOf(err)
}
