package controllers

import (
	"net/http"
	"strconv"

	"hotel-management-backend/models"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateGuestRequest struct {
	Name        string `json:"name" binding:"required"`
	Contact     string `json:"contact"`
	Email       string `json:"email" binding:"required,email"`
	Nationality string `json:"nationality"`
	Gender      string `json:"gender"`
}

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{Guests: svc}
}

// GetGuests (GET /api/guests)
func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.Guests.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// CreateGuest (POST /api/guests) is an email-keyed find-or-create; the
// response says whether the guest already existed.
func (gc *GuestController) CreateGuest(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	guest := models.Guest{
		Name:        req.Name,
		Contact:     req.Contact,
		Email:       req.Email,
		Nationality: req.Nationality,
		Gender:      req.Gender,
	}
	alreadyExists, err := gc.Guests.CreateOrGet(&guest)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if alreadyExists {
		status = http.StatusOK
	}
	utils.JSONSuccess(c, status, gin.H{
		"guest":         guest,
		"alreadyExists": alreadyExists,
	})
}

// DeleteGuest (DELETE /api/guests/:id) refuses checked-in guests.
func (gc *GuestController) DeleteGuest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return
	}
	if err := gc.Guests.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Guest deleted successfully")
}
