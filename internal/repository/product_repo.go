// internal/repository/product_repo.go
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/javajoker/collaboration-service/internal/apperror"
	"github.com/javajoker/collaboration-service/internal/models"
)

// ProductRepository resolves product ids referenced by collaborations and
// contracts.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrProductNotFound
		}
		return nil, apperror.Storage("get product", err)
	}
	return &product, nil
}
