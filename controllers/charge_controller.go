package controllers

import (
	"net/http"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"

	"github.com/gin-gonic/gin"
)

type AssignChargeRequest struct {
	RoomNo        string `json:"roomNo" binding:"required"`
	ServiceID     uint   `json:"serviceId" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
	ReservationID uint   `json:"reservationId,omitempty"`
	ServiceDate   string `json:"serviceDate,omitempty"`
}

type ChargeController struct {
	Charges *services.ChargeService
}

func NewChargeController(svc *services.ChargeService) *ChargeController {
	return &ChargeController{Charges: svc}
}

func (cc *ChargeController) GetRoomServiceCharges(c *gin.Context) {
	charges, err := cc.Charges.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, charges)
}

func (cc *ChargeController) AssignRoomServiceCharge(c *gin.Context) {
	var req AssignChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	in := services.AssignChargeInput{
		RoomNumber:    req.RoomNo,
		ServiceID:     req.ServiceID,
		Quantity:      req.Quantity,
		ReservationID: req.ReservationID,
	}
	if req.ServiceDate != "" {
		sd, err := utils.ParseDate(req.ServiceDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		in.ServiceDate = &sd
	}

	charge, err := cc.Charges.Assign(in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, charge)
}
