package controllers

import (
	"net/http"

	"hotel-management-backend/models"
	"hotel-management-backend/services"
	"hotel-management-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Charge      float64 `json:"charge" binding:"required"`
}

type ServiceController struct {
	Catalog *services.CatalogService
}

func NewServiceController(svc *services.CatalogService) *ServiceController {
	return &ServiceController{Catalog: svc}
}

func (sc *ServiceController) GetServices(c *gin.Context) {
	list, err := sc.Catalog.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Charge:      req.Charge,
	}
	if err := sc.Catalog.Create(&svc); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, svc)
}
