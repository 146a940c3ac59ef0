package controllers

import (
	"log"
	"net/http"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Store-level
// failures are logged with their cause and surfaced as a generic message.
func respondError(c *gin.Context, err error) {
	switch services.KindOf(err) {
	case services.KindValidation:
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case services.KindNotFound:
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case services.KindConflict:
		utils.JSONError(c, http.StatusConflict, err.Error())
	case services.KindInvalidTransition:
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("❌ internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
