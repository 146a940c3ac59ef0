package controllers

import (
	"net/http"
	"strconv"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type CreateReservationRequest struct {
	GuestID            uint           `json:"guestId" binding:"required"`
	RoomNo             string         `json:"roomNo" binding:"required"`
	CheckIn            string         `json:"checkIn" binding:"required"`
	CheckOut           string         `json:"checkOut" binding:"required"`
	AccompanyingGuests datatypes.JSON `json:"accompanyingGuests,omitempty"`
	IdempotencyKey     string         `json:"idempotencyKey,omitempty"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReservationController struct {
	Reservations *services.ReservationService
	Billing      *services.BillingService
}

func NewReservationController(res *services.ReservationService, billing *services.BillingService) *ReservationController {
	return &ReservationController{Reservations: res, Billing: billing}
}

// GetReservations (GET /api/reservations)
func (rc *ReservationController) GetReservations(c *gin.Context) {
	list, err := rc.Reservations.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetReservation (GET /api/reservations/:id)
func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}
	res, err := rc.Reservations.GetByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// CreateReservation (POST /api/reservations) books a room for a window.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := rc.Reservations.Create(services.CreateReservationInput{
		GuestID:            req.GuestID,
		RoomNumber:         req.RoomNo,
		CheckIn:            checkIn,
		CheckOut:           checkOut,
		AccompanyingGuests: req.AccompanyingGuests,
		IdempotencyKey:     req.IdempotencyKey,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

// SetReservationStatus (PUT /api/reservations/:id/status)
func (rc *ReservationController) SetReservationStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	res, err := rc.Reservations.SetStatus(uint(id), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// GetBill (GET /api/reservations/:id/bill) returns the derived bill,
// recomputed on every read.
func (rc *ReservationController) GetBill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}
	bill, err := rc.Billing.ComputeBill(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}
