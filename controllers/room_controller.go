package controllers

import (
	"net/http"
	"time"

	"hotel-management-backend/models"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpsertRoomRequest struct {
	RoomNumber  string  `json:"roomNumber" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Rent        float64 `json:"rent" binding:"required"`
	LastCleaned string  `json:"lastCleaned,omitempty"`
}

type RoomController struct {
	Rooms        *services.RoomService
	Availability *services.AvailabilityService
}

func NewRoomController(rooms *services.RoomService, availability *services.AvailabilityService) *RoomController {
	return &RoomController{Rooms: rooms, Availability: availability}
}

// GetRooms (GET /api/rooms) lists every room ordered by number.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Rooms.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetAvailableRooms (GET /api/rooms/available?checkIn=&checkOut=) returns the
// rooms free for the window, or all rooms when either date is missing.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	var checkIn, checkOut *time.Time

	ciRaw := c.Query("checkIn")
	coRaw := c.Query("checkOut")
	if ciRaw != "" && coRaw != "" {
		ci, err := utils.ParseDate(ciRaw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		co, err := utils.ParseDate(coRaw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		checkIn, checkOut = &ci, &co
	}

	rooms, err := rc.Availability.FindAvailableRooms(checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// UpsertRoom (POST /api/rooms) creates the room or updates category/rent when
// the room number already exists.
func (rc *RoomController) UpsertRoom(c *gin.Context) {
	var req UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room := models.Room{
		RoomNumber: req.RoomNumber,
		Category:   req.Category,
		Rent:       req.Rent,
	}
	if req.LastCleaned != "" {
		lc, err := utils.ParseDate(req.LastCleaned)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		room.LastCleaned = &lc
	}

	created, err := rc.Rooms.Upsert(&room)
	if err != nil {
		respondError(c, err)
		return
	}
	if created {
		utils.JSONSuccess(c, http.StatusCreated, room)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
