// internal/services/contract_service.go
package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/collaboration-service/internal/apperror"
	"github.com/javajoker/collaboration-service/internal/models"
	"github.com/javajoker/collaboration-service/internal/repository"
	"github.com/javajoker/collaboration-service/internal/utils"
)

type ContractService struct {
	contracts repository.B2BContractRepository
	sellers   repository.SellerRepository
	products  repository.ProductRepository
}

type CreateContractRequest struct {
	SellerID                 int64      `json:"seller_id" validate:"required,gt=0"`
	PartnerSellerID          int64      `json:"partner_seller_id" validate:"required,gt=0"`
	ProductID                *int64     `json:"product_id,omitempty" validate:"omitempty,gt=0"`
	ContractTerms            string     `json:"contract_terms" validate:"required"`
	RevenueSharingPercentage *float64   `json:"revenue_sharing_percentage,omitempty"`
	BulkOrderThreshold       *int       `json:"bulk_order_threshold,omitempty"`
	ContractStartDate        *time.Time `json:"contract_start_date,omitempty"`
	ContractEndDate          *time.Time `json:"contract_end_date,omitempty"`
}

func NewContractService(contracts repository.B2BContractRepository, sellers repository.SellerRepository, products repository.ProductRepository) *ContractService {
	return &ContractService{
		contracts: contracts,
		sellers:   sellers,
		products:  products,
	}
}

func (s *ContractService) CreateContract(ctx context.Context, req *CreateContractRequest) (*models.B2BContract, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	for _, id := range []int64{req.SellerID, req.PartnerSellerID} {
		if _, err := s.sellers.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	if req.ProductID != nil {
		if _, err := s.products.GetByID(ctx, *req.ProductID); err != nil {
			return nil, err
		}
	}

	startDate := time.Now().UTC()
	if req.ContractStartDate != nil {
		startDate = *req.ContractStartDate
	}

	contract := &models.B2BContract{
		SellerID:                 req.SellerID,
		PartnerSellerID:          req.PartnerSellerID,
		ProductID:                req.ProductID,
		ContractTerms:            req.ContractTerms,
		RevenueSharingPercentage: req.RevenueSharingPercentage,
		BulkOrderThreshold:       req.BulkOrderThreshold,
		ContractStartDate:        startDate,
		ContractEndDate:          req.ContractEndDate,
	}
	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"contract_id":       contract.ID,
		"seller_id":         contract.SellerID,
		"partner_seller_id": contract.PartnerSellerID,
	}).Info("B2B contract created")

	return contract, nil
}

func (s *ContractService) GetContract(ctx context.Context, id int64) (*models.B2BContract, error) {
	return s.contracts.GetByID(ctx, id)
}

func (s *ContractService) ListContractsBySeller(ctx context.Context, sellerID int64) ([]models.B2BContract, error) {
	return s.contracts.ListBySeller(ctx, sellerID)
}

// UpdateContract applies patch. A new product_id must reference an
// existing product.
func (s *ContractService) UpdateContract(ctx context.Context, id int64, patch models.B2BContractPatch) (*models.B2BContract, error) {
	if _, err := s.contracts.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if patch.ProductID.Set && patch.ProductID.Value != nil {
		if *patch.ProductID.Value <= 0 {
			return nil, apperror.Validation("product_id must be positive")
		}
		if _, err := s.products.GetByID(ctx, *patch.ProductID.Value); err != nil {
			return nil, err
		}
	}

	if err := s.contracts.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	logrus.WithField("contract_id", id).Info("B2B contract updated")
	return s.contracts.GetByID(ctx, id)
}

func (s *ContractService) DeleteContract(ctx context.Context, id int64) (*models.B2BContract, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.contracts.Delete(ctx, id); err != nil {
		return nil, err
	}

	logrus.WithField("contract_id", id).Info("B2B contract deleted")
	return contract, nil
}
