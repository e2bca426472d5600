// internal/services/collaboration_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/collaboration-service/internal/apperror"
	"github.com/javajoker/collaboration-service/internal/models"
	"github.com/javajoker/collaboration-service/internal/repository"
	"github.com/javajoker/collaboration-service/internal/utils"
)

type CollaborationService struct {
	collaborations repository.CollaborationRepository
	sellers        repository.SellerRepository
	products       repository.ProductRepository
	brands         BrandRegistry
	categories     CategoryRegistry
}

type CreateCollaborationRequest struct {
	SellerID                 int64                    `json:"seller_id" validate:"required,gt=0"`
	PartnerSellerID          int64                    `json:"partner_seller_id" validate:"required,gt=0"`
	CollaborationType        models.CollaborationType `json:"collaboration_type"`
	ProductID                *int64                   `json:"product_id,omitempty" validate:"omitempty,gt=0"`
	CategoryID               *int64                   `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	BrandID                  *int64                   `json:"brand_id,omitempty" validate:"omitempty,gt=0"`
	GeographicalExclusivity  bool                     `json:"geographical_exclusivity"`
	LogisticsSharing         bool                     `json:"logistics_sharing"`
	BulkOrderThreshold       *int                     `json:"bulk_order_threshold,omitempty"`
	RevenueSharingPercentage *float64                 `json:"revenue_sharing_percentage,omitempty"`
	ContractTerms            *string                  `json:"contract_terms,omitempty"`
	AgreementDetails         string                   `json:"agreement_details" validate:"required"`
	CollaborationStartDate   *time.Time               `json:"collaboration_start_date,omitempty"`
	CollaborationEndDate     *time.Time               `json:"collaboration_end_date,omitempty"`
}

func NewCollaborationService(
	collaborations repository.CollaborationRepository,
	sellers repository.SellerRepository,
	products repository.ProductRepository,
	brands BrandRegistry,
	categories CategoryRegistry,
) *CollaborationService {
	return &CollaborationService{
		collaborations: collaborations,
		sellers:        sellers,
		products:       products,
		brands:         brands,
		categories:     categories,
	}
}

// CreateCollaboration checks every reference before writing, so a failed
// request leaves no row behind.
func (s *CollaborationService) CreateCollaboration(ctx context.Context, req *CreateCollaborationRequest) (*models.Collaboration, error) {
	if !req.CollaborationType.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidCollaborationType, req.CollaborationType)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.ProductID != nil && req.CategoryID != nil {
		return nil, apperror.Validation("product_id and category_id are mutually exclusive")
	}

	if err := s.ensureSellers(ctx, req.SellerID, req.PartnerSellerID); err != nil {
		return nil, err
	}

	if req.ProductID != nil {
		if _, err := s.products.GetByID(ctx, *req.ProductID); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		if _, err := s.categories.GetCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}
	if req.BrandID != nil {
		if _, err := s.brands.GetBrand(ctx, *req.BrandID); err != nil {
			return nil, err
		}
	}

	startDate := time.Now().UTC()
	if req.CollaborationStartDate != nil {
		startDate = *req.CollaborationStartDate
	}

	collaboration := &models.Collaboration{
		SellerID:                 req.SellerID,
		PartnerSellerID:          req.PartnerSellerID,
		CollaborationType:        req.CollaborationType,
		ProductID:                req.ProductID,
		CategoryID:               req.CategoryID,
		BrandID:                  req.BrandID,
		GeographicalExclusivity:  req.GeographicalExclusivity,
		LogisticsSharing:         req.LogisticsSharing,
		BulkOrderThreshold:       req.BulkOrderThreshold,
		RevenueSharingPercentage: req.RevenueSharingPercentage,
		ContractTerms:            req.ContractTerms,
		AgreementDetails:         req.AgreementDetails,
		CollaborationStartDate:   startDate,
		CollaborationEndDate:     req.CollaborationEndDate,
	}

	if err := s.collaborations.Create(ctx, collaboration); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"collaboration_id":   collaboration.ID,
		"seller_id":          collaboration.SellerID,
		"partner_seller_id":  collaboration.PartnerSellerID,
		"collaboration_type": collaboration.CollaborationType,
	}).Info("Collaboration created")

	return collaboration, nil
}

func (s *CollaborationService) GetCollaboration(ctx context.Context, id int64) (*models.Collaboration, error) {
	return s.collaborations.GetByID(ctx, id)
}

// ListCollaborationsBySeller returns every collaboration the seller is a
// party to. An empty typeFilter means all types.
func (s *CollaborationService) ListCollaborationsBySeller(ctx context.Context, sellerID int64, typeFilter string) ([]models.Collaboration, error) {
	if typeFilter == "" {
		return s.collaborations.ListBySeller(ctx, sellerID)
	}

	collaborationType := models.CollaborationType(typeFilter)
	if !collaborationType.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidCollaborationType, typeFilter)
	}
	return s.collaborations.ListBySellerAndType(ctx, sellerID, collaborationType)
}

// UpdateCollaboration applies patch and returns the stored result.
func (s *CollaborationService) UpdateCollaboration(ctx context.Context, id int64, patch models.CollaborationPatch) (*models.Collaboration, error) {
	if err := s.collaborations.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	logrus.WithField("collaboration_id", id).Info("Collaboration updated")
	return s.collaborations.GetByID(ctx, id)
}

// DeleteCollaboration removes the row and returns what it held.
func (s *CollaborationService) DeleteCollaboration(ctx context.Context, id int64) (*models.Collaboration, error) {
	collaboration, err := s.collaborations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.collaborations.Delete(ctx, id); err != nil {
		return nil, err
	}

	logrus.WithField("collaboration_id", id).Info("Collaboration deleted")
	return collaboration, nil
}

// CreateSharedInventoryAgreement replaces the collaboration's agreement
// details with a shared inventory description. The latest agreement wins.
// Product ids are recorded as given; they are not looked up.
func (s *CollaborationService) CreateSharedInventoryAgreement(ctx context.Context, id int64, agreement *models.SharedInventoryAgreement) (*models.Collaboration, error) {
	if _, err := s.collaborations.GetByID(ctx, id); err != nil {
		return nil, err
	}

	patch := models.CollaborationPatch{
		AgreementDetails: models.Some(FormatSharedInventory(agreement)),
	}
	if err := s.collaborations.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"collaboration_id": id,
		"products":         agreement.Products,
	}).Info("Shared inventory agreement recorded")

	return s.collaborations.GetByID(ctx, id)
}

// FormatSharedInventory renders an agreement as
// "Shared Inventory: [1, 2], Logistics: <logistics>, Terms: <terms>".
func FormatSharedInventory(agreement *models.SharedInventoryAgreement) string {
	ids := make([]string, len(agreement.Products))
	for i, id := range agreement.Products {
		ids[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("Shared Inventory: [%s], Logistics: %s, Terms: %s",
		strings.Join(ids, ", "), agreement.Logistics, agreement.Terms)
}

func (s *CollaborationService) ensureSellers(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := s.sellers.GetByID(ctx, id); err != nil {
			if errors.Is(err, apperror.ErrSellerNotFound) {
				return fmt.Errorf("%w: %d", apperror.ErrSellerNotFound, id)
			}
			return err
		}
	}
	return nil
}
