// internal/handlers/registry.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/collaboration-service/internal/models"
	"github.com/javajoker/collaboration-service/internal/services"
	"github.com/javajoker/collaboration-service/internal/utils"
)

// RegistryHandler forwards brand and category requests to the services
// that own them.
type RegistryHandler struct {
	brands     services.BrandRegistry
	categories services.CategoryRegistry
}

func NewRegistryHandler(brands services.BrandRegistry, categories services.CategoryRegistry) *RegistryHandler {
	return &RegistryHandler{
		brands:     brands,
		categories: categories,
	}
}

// POST /brands
func (h *RegistryHandler) CreateBrand(c *gin.Context) {
	var input models.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}
	if err := utils.ValidateStruct(&input); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	brand, err := h.brands.CreateBrand(c.Request.Context(), &input)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"brand": brand})
}

// GET /brands/:id
func (h *RegistryHandler) GetBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	brand, err := h.brands.GetBrand(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"brand": brand})
}

// PUT /brands/:id
func (h *RegistryHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input models.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}
	if err := utils.ValidateStruct(&input); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	brand, err := h.brands.UpdateBrand(c.Request.Context(), id, &input)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"brand": brand})
}

// DELETE /brands/:id
func (h *RegistryHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.brands.DeleteBrand(c.Request.Context(), id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Brand deleted"})
}

// GET /categories
func (h *RegistryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"categories": categories})
}

// POST /categories
func (h *RegistryHandler) CreateCategory(c *gin.Context) {
	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}
	if err := utils.ValidateStruct(&input); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	category, err := h.categories.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"category": category})
}

// GET /categories/:id
func (h *RegistryHandler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := h.categories.GetCategory(c.Request.Context(), id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"category": category})
}

// DELETE /categories/:id
func (h *RegistryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.categories.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Category deleted"})
}
