// internal/handlers/seller.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/collaboration-service/internal/services"
	"github.com/javajoker/collaboration-service/internal/utils"
)

type SellerHandler struct {
	sellerService *services.SellerService
}

func NewSellerHandler(sellerService *services.SellerService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

// GET /sellers
func (h *SellerHandler) GetSellers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	sellers, total, err := h.sellerService.ListSellers(c.Request.Context(), params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(sellers, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /sellers
func (h *SellerHandler) CreateSeller(c *gin.Context) {
	var req services.CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	seller, err := h.sellerService.CreateSeller(c.Request.Context(), &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Seller registered",
		"seller":  seller,
	})
}

// GET /sellers/:id
func (h *SellerHandler) GetSeller(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	seller, err := h.sellerService.GetSeller(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"seller": seller})
}

// PUT /sellers/:id
func (h *SellerHandler) UpdateSeller(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	seller, err := h.sellerService.UpdateSeller(c.Request.Context(), id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Seller updated",
		"seller":  seller,
	})
}
