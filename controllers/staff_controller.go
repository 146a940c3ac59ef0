package controllers

import (
	"net/http"
	"strconv"

	"hotel-management-backend/models"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"

	"github.com/gin-gonic/gin"
)

type StaffRequest struct {
	Name     string  `json:"name" binding:"required"`
	Dept     string  `json:"dept"`
	Age      int     `json:"age"`
	Contact  string  `json:"contact"`
	Salary   float64 `json:"salary"`
	JoinDate string  `json:"joinDate,omitempty"`
}

type StaffController struct {
	Staff *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{Staff: svc}
}

func (sc *StaffController) GetStaff(c *gin.Context) {
	staff, err := sc.Staff.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	staff := models.Staff{
		Name:    req.Name,
		Dept:    req.Dept,
		Age:     req.Age,
		Contact: req.Contact,
		Salary:  req.Salary,
	}
	if req.JoinDate != "" {
		jd, err := utils.ParseDate(req.JoinDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		staff.JoinDate = jd
	}

	if err := sc.Staff.Create(&staff); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, staff)
}

func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff id")
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	staff := models.Staff{
		ID:      uint(id),
		Name:    req.Name,
		Dept:    req.Dept,
		Age:     req.Age,
		Contact: req.Contact,
		Salary:  req.Salary,
	}
	if err := sc.Staff.Update(&staff); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Staff member updated successfully")
}

func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff id")
		return
	}
	if err := sc.Staff.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Staff member deleted successfully")
}
