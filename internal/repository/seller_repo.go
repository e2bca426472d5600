// internal/repository/seller_repo.go
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/javajoker/collaboration-service/internal/apperror"
	"github.com/javajoker/collaboration-service/internal/models"
	"github.com/javajoker/collaboration-service/internal/utils"
)

// SellerRepository is the seller directory. The collaboration core only
// needs GetByID and ListAll; the rest backs seller management.
type SellerRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Seller, error)
	ListAll(ctx context.Context) ([]models.Seller, error)
	List(ctx context.Context, params utils.PaginationParams) ([]models.Seller, int64, error)
	Create(ctx context.Context, seller *models.Seller) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
}

type sellerRepo struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepo{db: db}
}

func (r *sellerRepo) GetByID(ctx context.Context, id int64) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.WithContext(ctx).First(&seller, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrSellerNotFound
		}
		return nil, apperror.Storage("get seller", err)
	}
	return &seller, nil
}

// ListAll returns every seller ordered by id, which is the directory order
// proximity scans iterate in.
func (r *sellerRepo) ListAll(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	if err := r.db.WithContext(ctx).Order("id asc").Find(&sellers).Error; err != nil {
		return nil, apperror.Storage("list sellers", err)
	}
	return sellers, nil
}

func (r *sellerRepo) List(ctx context.Context, params utils.PaginationParams) ([]models.Seller, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Seller{})
	if params.Search != "" {
		like := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperror.Storage("count sellers", err)
	}

	var sellers []models.Seller
	query = utils.ApplySort(query, params, []string{"id", "name", "seller_rating", "created_at"})
	if err := utils.ApplyPagination(query, params).Find(&sellers).Error; err != nil {
		return nil, 0, apperror.Storage("list sellers", err)
	}
	return sellers, total, nil
}

func (r *sellerRepo) Create(ctx context.Context, seller *models.Seller) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Seller{}).Where("email = ?", seller.Email).Count(&count).Error; err != nil {
		return apperror.Storage("check seller email", err)
	}
	if count > 0 {
		return apperror.ErrConflict
	}

	if err := r.db.WithContext(ctx).Create(seller).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.ErrConflict
		}
		return apperror.Storage("create seller", err)
	}
	return nil
}

func (r *sellerRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Seller{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperror.ErrConflict
		}
		return apperror.Storage("update seller", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.ErrSellerNotFound
	}
	return nil
}
