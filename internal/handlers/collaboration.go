// internal/handlers/collaboration.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/collaboration-service/internal/models"
	"github.com/javajoker/collaboration-service/internal/services"
	"github.com/javajoker/collaboration-service/internal/utils"
)

type CollaborationHandler struct {
	collaborationService *services.CollaborationService
	proximityService     *services.ProximityService
}

func NewCollaborationHandler(collaborationService *services.CollaborationService, proximityService *services.ProximityService) *CollaborationHandler {
	return &CollaborationHandler{
		collaborationService: collaborationService,
		proximityService:     proximityService,
	}
}

// POST /collaborations
func (h *CollaborationHandler) CreateCollaboration(c *gin.Context) {
	var req services.CreateCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	collaboration, err := h.collaborationService.CreateCollaboration(c.Request.Context(), &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":       "Collaboration created",
		"collaboration": collaboration,
	})
}

// GET /collaborations/:id
func (h *CollaborationHandler) GetCollaboration(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	collaboration, err := h.collaborationService.GetCollaboration(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"collaboration": collaboration,
	})
}

// GET /collaborations/seller/:seller_id
func (h *CollaborationHandler) GetSellerCollaborations(c *gin.Context) {
	sellerID, ok := parseIDParam(c, "seller_id")
	if !ok {
		return
	}

	collaborations, err := h.collaborationService.ListCollaborationsBySeller(c.Request.Context(), sellerID, c.Query("collaboration_type"))
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	if len(collaborations) == 0 {
		utils.NotFoundResponse(c, "No collaborations found for seller ID "+strconv.FormatInt(sellerID, 10))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"collaborations": collaborations,
		"count":          len(collaborations),
	})
}

// PUT, PATCH /collaborations/:id
func (h *CollaborationHandler) UpdateCollaboration(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch models.CollaborationPatch
	if !bindPatch(c, &patch) {
		return
	}

	collaboration, err := h.collaborationService.UpdateCollaboration(c.Request.Context(), id, patch)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":       "Collaboration updated",
		"collaboration": collaboration,
	})
}

// DELETE /collaborations/:id
func (h *CollaborationHandler) DeleteCollaboration(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	collaboration, err := h.collaborationService.DeleteCollaboration(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":       "Collaboration deleted",
		"collaboration": collaboration,
	})
}

// POST /collaborations/:id/shared-inventory
func (h *CollaborationHandler) CreateSharedInventoryAgreement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var agreement models.SharedInventoryAgreement
	if err := c.ShouldBindJSON(&agreement); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	collaboration, err := h.collaborationService.CreateSharedInventoryAgreement(c.Request.Context(), id, &agreement)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":       "Shared inventory agreement recorded",
		"collaboration": collaboration,
	})
}

// GET /collaborations/nearby-sellers/:seller_id
func (h *CollaborationHandler) FindNearbySellers(c *gin.Context) {
	sellerID, ok := parseIDParam(c, "seller_id")
	if !ok {
		return
	}

	query := services.NearbyQuery{
		Location:       c.Query("location"),
		SortByDistance: c.Query("sort") == "distance",
	}

	if radius := c.Query("radius_km"); radius != "" {
		r, err := strconv.ParseFloat(radius, 64)
		if err != nil || r <= 0 {
			utils.BadRequestResponse(c, "radius_km must be a positive number", nil)
			return
		}
		query.RadiusKm = r
	}

	if excludeSelf := c.Query("exclude_self"); excludeSelf != "" {
		v, err := strconv.ParseBool(excludeSelf)
		if err != nil {
			utils.BadRequestResponse(c, "exclude_self must be a boolean", nil)
			return
		}
		query.ExcludeSelf = v
	}

	nearby, err := h.proximityService.FindNearbySellers(c.Request.Context(), sellerID, query)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	if len(nearby) == 0 {
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", "No nearby sellers found", nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"sellers": nearby,
		"count":   len(nearby),
	})
}
