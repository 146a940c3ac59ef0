package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-management-backend/config"
	"hotel-management-backend/controllers"
	"hotel-management-backend/routes"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	roomService := services.NewRoomService(db)
	availabilityService := services.NewAvailabilityService(db)
	guestService := services.NewGuestService(db)
	staffService := services.NewStaffService(db)
	catalogService := services.NewCatalogService(db)
	reservationService := services.NewReservationService(db)
	billingService := services.NewBillingService(db)
	paymentService := services.NewPaymentService(db)
	chargeService := services.NewChargeService(db)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService, availabilityService)
	guestController := controllers.NewGuestController(guestService)
	staffController := controllers.NewStaffController(staffService)
	serviceController := controllers.NewServiceController(catalogService)
	reservationController := controllers.NewReservationController(reservationService, billingService)
	paymentController := controllers.NewPaymentController(paymentService)
	chargeController := controllers.NewChargeController(chargeService)

	// Build router
	router := routes.SetupRouter(
		roomController,
		guestController,
		staffController,
		serviceController,
		reservationController,
		paymentController,
		chargeController,
	)

	// Port from env (prefer), fallback to 8080
	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
