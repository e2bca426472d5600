// internal/handlers/proximity.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/collaboration-service/internal/services"
	"github.com/javajoker/collaboration-service/internal/utils"
)

type ProximityHandler struct {
	proximityService *services.ProximityService
}

func NewProximityHandler(proximityService *services.ProximityService) *ProximityHandler {
	return &ProximityHandler{proximityService: proximityService}
}

// POST /proximity
func (h *ProximityHandler) CalculateProximity(c *gin.Context) {
	var req services.ProximityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	result, err := h.proximityService.CalculateProximity(&req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
