package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-management-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func openDialector() (gorm.Dialector, error) {
	// DB_DRIVER=sqlite keeps local runs and CI off a MySQL server.
	if envOrDefault("DB_DRIVER", "mysql") == "sqlite" {
		return sqlite.Open(envOrDefault("SQLITE_PATH", "hotel.db")), nil
	}
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}
	return mysql.Open(dsn), nil
}

// SeedDatabase fills empty catalog tables so a fresh install is usable.
func SeedDatabase() {
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Category: models.CategorySingle, Rent: 100, Status: models.RoomAvailable},
			{RoomNumber: "102", Category: models.CategoryDouble, Rent: 150, Status: models.RoomAvailable},
			{RoomNumber: "201", Category: models.CategorySuite, Rent: 280, Status: models.RoomAvailable},
			{RoomNumber: "202", Category: models.CategoryDeluxe, Rent: 350, Status: models.RoomAvailable},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var svcCount int64
	DB.Model(&models.Service{}).Count(&svcCount)
	if svcCount == 0 {
		services := []models.Service{
			{Name: "Laundry", Description: "Per-load laundry service", Charge: 25},
			{Name: "Room Cleaning", Description: "Extra housekeeping visit", Charge: 15},
			{Name: "Breakfast", Description: "In-room breakfast tray", Charge: 20},
			{Name: "Spa", Description: "One-hour spa session", Charge: 80},
		}
		if err := DB.Create(&services).Error; err != nil {
			log.Printf("warning: failed to seed services: %v", err)
		} else {
			log.Println("Service catalog seeded")
		}
	}
}

func ConnectDatabase() error {
	dialector, err := openDialector()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Guest{},
		&models.Staff{},
		&models.Room{},
		&models.Service{},
		&models.Reservation{},
		&models.Payment{},
		&models.RoomServiceCharge{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
