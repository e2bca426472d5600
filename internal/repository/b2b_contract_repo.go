// internal/repository/b2b_contract_repo.go
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/javajoker/collaboration-service/internal/apperror"
	"github.com/javajoker/collaboration-service/internal/models"
)

// B2BContractPatchPolicy lets an update touch every column except identity
// and the two parties.
var B2BContractPatchPolicy = NewPatchPolicy("b2b contract",
	[]string{"product_id", "contract_terms", "revenue_sharing_percentage", "bulk_order_threshold", "contract_start_date", "contract_end_date"},
	"contract_terms", "contract_start_date",
)

type B2BContractRepository interface {
	Create(ctx context.Context, contract *models.B2BContract) error
	GetByID(ctx context.Context, id int64) (*models.B2BContract, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]models.B2BContract, error)
	Update(ctx context.Context, id int64, patch Patch) error
	Delete(ctx context.Context, id int64) error
}

type b2bContractRepo struct {
	db *gorm.DB
}

func NewB2BContractRepository(db *gorm.DB) B2BContractRepository {
	return &b2bContractRepo{db: db}
}

func (r *b2bContractRepo) Create(ctx context.Context, contract *models.B2BContract) error {
	if err := r.db.WithContext(ctx).Create(contract).Error; err != nil {
		return apperror.Storage("create b2b contract", err)
	}
	return nil
}

func (r *b2bContractRepo) GetByID(ctx context.Context, id int64) (*models.B2BContract, error) {
	var contract models.B2BContract
	if err := r.db.WithContext(ctx).First(&contract, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, apperror.Storage("get b2b contract", err)
	}
	return &contract, nil
}

func (r *b2bContractRepo) ListBySeller(ctx context.Context, sellerID int64) ([]models.B2BContract, error) {
	var contracts []models.B2BContract
	err := r.db.WithContext(ctx).
		Where("seller_id = ? OR partner_seller_id = ?", sellerID, sellerID).
		Order("id asc").
		Find(&contracts).Error
	if err != nil {
		return nil, apperror.Storage("list b2b contracts by seller", err)
	}
	return contracts, nil
}

func (r *b2bContractRepo) Update(ctx context.Context, id int64, patch Patch) error {
	return applyPatch(ctx, r.db, &models.B2BContract{}, id, B2BContractPatchPolicy, patch)
}

func (r *b2bContractRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.B2BContract{}, id)
	if result.Error != nil {
		return apperror.Storage("delete b2b contract", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
