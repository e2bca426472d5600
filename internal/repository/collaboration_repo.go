// internal/repository/collaboration_repo.go
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/javajoker/collaboration-service/internal/apperror"
	"github.com/javajoker/collaboration-service/internal/models"
)

// CollaborationPatchPolicy is the collaboration update allow-list. Every
// other column is fixed at creation.
var CollaborationPatchPolicy = NewPatchPolicy("collaboration",
	[]string{"agreement_details", "bulk_order_threshold", "revenue_sharing_percentage", "collaboration_end_date"},
	"agreement_details",
)

type CollaborationRepository interface {
	Create(ctx context.Context, collaboration *models.Collaboration) error
	GetByID(ctx context.Context, id int64) (*models.Collaboration, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]models.Collaboration, error)
	ListBySellerAndType(ctx context.Context, sellerID int64, collaborationType models.CollaborationType) ([]models.Collaboration, error)
	Update(ctx context.Context, id int64, patch Patch) error
	Delete(ctx context.Context, id int64) error
}

type collaborationRepo struct {
	db *gorm.DB
}

func NewCollaborationRepository(db *gorm.DB) CollaborationRepository {
	return &collaborationRepo{db: db}
}

func (r *collaborationRepo) Create(ctx context.Context, collaboration *models.Collaboration) error {
	if err := r.db.WithContext(ctx).Create(collaboration).Error; err != nil {
		return apperror.Storage("create collaboration", err)
	}
	return nil
}

func (r *collaborationRepo) GetByID(ctx context.Context, id int64) (*models.Collaboration, error) {
	var collaboration models.Collaboration
	if err := r.db.WithContext(ctx).First(&collaboration, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, apperror.Storage("get collaboration", err)
	}
	return &collaboration, nil
}

// ListBySeller matches the seller on either side of the relationship.
func (r *collaborationRepo) ListBySeller(ctx context.Context, sellerID int64) ([]models.Collaboration, error) {
	var collaborations []models.Collaboration
	err := r.db.WithContext(ctx).
		Where("seller_id = ? OR partner_seller_id = ?", sellerID, sellerID).
		Order("id asc").
		Find(&collaborations).Error
	if err != nil {
		return nil, apperror.Storage("list collaborations by seller", err)
	}
	return collaborations, nil
}

func (r *collaborationRepo) ListBySellerAndType(ctx context.Context, sellerID int64, collaborationType models.CollaborationType) ([]models.Collaboration, error) {
	var collaborations []models.Collaboration
	err := r.db.WithContext(ctx).
		Where("(seller_id = ? OR partner_seller_id = ?) AND collaboration_type = ?", sellerID, sellerID, collaborationType).
		Order("id asc").
		Find(&collaborations).Error
	if err != nil {
		return nil, apperror.Storage("list collaborations by seller and type", err)
	}
	return collaborations, nil
}

func (r *collaborationRepo) Update(ctx context.Context, id int64, patch Patch) error {
	return applyPatch(ctx, r.db, &models.Collaboration{}, id, CollaborationPatchPolicy, patch)
}

func (r *collaborationRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Collaboration{}, id)
	if result.Error != nil {
		return apperror.Storage("delete collaboration", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
