package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-management-backend/controllers"
	"hotel-management-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the /api surface.
func SetupRouter(
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	stc *controllers.StaffController,
	svc *controllers.ServiceController,
	resc *controllers.ReservationController,
	pc *controllers.PaymentController,
	cc *controllers.ChargeController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			// /available must be registered before any /:id style route
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.POST("", rc.UpsertRoom)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.POST("", gc.CreateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		staff := api.Group("/staff")
		{
			staff.GET("", stc.GetStaff)
			staff.POST("", stc.CreateStaff)
			staff.PUT("/:id", stc.UpdateStaff)
			staff.DELETE("/:id", stc.DeleteStaff)
		}

		servicesRoutes := api.Group("/services")
		{
			servicesRoutes.GET("", svc.GetServices)
			servicesRoutes.POST("", svc.CreateService)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", resc.GetReservations)
			reservations.POST("", resc.CreateReservation)
			reservations.GET("/:id", resc.GetReservation)
			reservations.PUT("/:id/status", resc.SetReservationStatus)
			reservations.GET("/:id/bill", resc.GetBill)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", pc.GetPayments)
			payments.POST("", pc.CreatePayment)
		}

		roomServices := api.Group("/room-services")
		{
			roomServices.GET("", cc.GetRoomServiceCharges)
			roomServices.POST("", cc.AssignRoomServiceCharge)
		}
	}

	return r
}
