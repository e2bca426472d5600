// internal/services/seller_service.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/collaboration-service/internal/apperror"
	"github.com/javajoker/collaboration-service/internal/models"
	"github.com/javajoker/collaboration-service/internal/repository"
	"github.com/javajoker/collaboration-service/internal/utils"
)

type SellerService struct {
	sellers repository.SellerRepository
}

type CreateSellerRequest struct {
	Name                        string  `json:"name" validate:"required,min=2,max=255"`
	Email                       string  `json:"email" validate:"required,email"`
	PhoneNumber                 *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	BusinessLicense             *string `json:"business_license,omitempty" validate:"omitempty,max=100"`
	Address                     *string `json:"address,omitempty" validate:"omitempty,max=255"`
	WarehouseLocation           *string `json:"warehouse_location,omitempty" validate:"omitempty,latlon"`
	PreferredCollaborationTypes *string `json:"preferred_collaboration_types,omitempty" validate:"omitempty,max=50"`
	IsActive                    *bool   `json:"is_active,omitempty"`
}

// UpdateSellerRequest only changes the fields that are present.
type UpdateSellerRequest struct {
	Name                        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	PhoneNumber                 *string  `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	BusinessLicense             *string  `json:"business_license,omitempty" validate:"omitempty,max=100"`
	Address                     *string  `json:"address,omitempty" validate:"omitempty,max=255"`
	WarehouseLocation           *string  `json:"warehouse_location,omitempty" validate:"omitempty,latlon"`
	PreferredCollaborationTypes *string  `json:"preferred_collaboration_types,omitempty" validate:"omitempty,max=50"`
	SellerRating                *float64 `json:"seller_rating,omitempty" validate:"omitempty,min=0,max=5"`
	IsActive                    *bool    `json:"is_active,omitempty"`
}

func NewSellerService(sellers repository.SellerRepository) *SellerService {
	return &SellerService{sellers: sellers}
}

func (s *SellerService) CreateSeller(ctx context.Context, req *CreateSellerRequest) (*models.Seller, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	seller := &models.Seller{
		Name:                        strings.TrimSpace(req.Name),
		Email:                       strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber:                 req.PhoneNumber,
		BusinessLicense:             req.BusinessLicense,
		Address:                     req.Address,
		WarehouseLocation:           req.WarehouseLocation,
		PreferredCollaborationTypes: req.PreferredCollaborationTypes,
		IsActive:                    true,
	}
	if req.IsActive != nil {
		seller.IsActive = *req.IsActive
	}

	if err := s.sellers.Create(ctx, seller); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"seller_id": seller.ID,
		"email":     seller.Email,
	}).Info("Seller registered")

	return seller, nil
}

func (s *SellerService) GetSeller(ctx context.Context, id int64) (*models.Seller, error) {
	return s.sellers.GetByID(ctx, id)
}

func (s *SellerService) ListSellers(ctx context.Context, params utils.PaginationParams) ([]models.Seller, int64, error) {
	return s.sellers.List(ctx, params)
}

func (s *SellerService) UpdateSeller(ctx context.Context, id int64, req *UpdateSellerRequest) (*models.Seller, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.BusinessLicense != nil {
		updates["business_license"] = *req.BusinessLicense
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.WarehouseLocation != nil {
		updates["warehouse_location"] = *req.WarehouseLocation
	}
	if req.PreferredCollaborationTypes != nil {
		updates["preferred_collaboration_types"] = *req.PreferredCollaborationTypes
	}
	if req.SellerRating != nil {
		updates["seller_rating"] = *req.SellerRating
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return nil, apperror.Validation("no fields to update")
	}
	updates["updated_at"] = time.Now().UTC()

	if err := s.sellers.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}

	logrus.WithField("seller_id", id).Info("Seller profile updated")
	return s.sellers.GetByID(ctx, id)
}
