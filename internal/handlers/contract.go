// internal/handlers/contract.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/collaboration-service/internal/models"
	"github.com/javajoker/collaboration-service/internal/services"
	"github.com/javajoker/collaboration-service/internal/utils"
)

type ContractHandler struct {
	contractService *services.ContractService
}

func NewContractHandler(contractService *services.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// POST /contracts
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req services.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  "Contract created",
		"contract": contract,
	})
}

// GET /contracts/:id
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	contract, err := h.contractService.GetContract(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"contract": contract})
}

// GET /contracts/seller/:seller_id
func (h *ContractHandler) GetSellerContracts(c *gin.Context) {
	sellerID, ok := parseIDParam(c, "seller_id")
	if !ok {
		return
	}

	contracts, err := h.contractService.ListContractsBySeller(c.Request.Context(), sellerID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	if len(contracts) == 0 {
		utils.NotFoundResponse(c, "No contracts found for seller ID "+strconv.FormatInt(sellerID, 10))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"contracts": contracts,
		"count":     len(contracts),
	})
}

// PUT, PATCH /contracts/:id
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch models.B2BContractPatch
	if !bindPatch(c, &patch) {
		return
	}

	contract, err := h.contractService.UpdateContract(c.Request.Context(), id, patch)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Contract updated",
		"contract": contract,
	})
}

// DELETE /contracts/:id
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	contract, err := h.contractService.DeleteContract(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Contract deleted",
		"contract": contract,
	})
}
